// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"sort"

	"github.com/staranto/tripcache/internal/query"
)

// Cache maps a query.Key to the query.Result fetched for it. It is not safe
// for concurrent use; a run touches it from a single goroutine.
type Cache struct {
	entries map[query.Key]query.Result
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{entries: make(map[query.Key]query.Result)}
}

// Get returns the result stored for k.
func (c *Cache) Get(k query.Key) (query.Result, bool) {
	r, ok := c.entries[k]
	return r, ok
}

// Contains reports whether k has a stored result.
func (c *Cache) Contains(k query.Key) bool {
	_, ok := c.entries[k]
	return ok
}

// Insert stores v for k, replacing any previous result entirely.
func (c *Cache) Insert(k query.Key, v query.Result) {
	c.entries[k] = v
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Keys returns the keys sorted by origin, then destination.
func (c *Cache) Keys() []query.Key {
	keys := make([]query.Key, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Origin == keys[j].Origin {
			return keys[i].Destination < keys[j].Destination
		}
		return keys[i].Origin < keys[j].Origin
	})
	return keys
}

// Equal reports whether both caches hold the same keys with equal results.
func (c *Cache) Equal(o *Cache) bool {
	if c.Len() != o.Len() {
		return false
	}
	for k, v := range c.entries {
		ov, ok := o.entries[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}
