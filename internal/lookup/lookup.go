// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package lookup runs a single cached distance lookup end to end.
package lookup

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/apex/log"

	"github.com/staranto/tripcache/internal/cache"
	"github.com/staranto/tripcache/internal/query"
)

// Fetcher performs the network round trip for one key.
type Fetcher interface {
	Fetch(ctx context.Context, k query.Key) (query.Result, error)
}

// Lookup wires a cache Store to a Fetcher.
type Lookup struct {
	Store   cache.Store
	Fetcher Fetcher
	// Timeout bounds the fetch. Zero means no limit.
	Timeout time.Duration
	Out     io.Writer
}

// Run loads the cache, fetches k only when it is missing, writes the two
// result lines to Out, and flushes the cache back to the store. The flush
// happens on hits too so the stored format stays current. A failed fetch
// aborts before anything is written or flushed.
func (l *Lookup) Run(ctx context.Context, k query.Key) error {
	c, err := l.Store.Load(ctx)
	if err != nil {
		return err
	}

	if !c.Contains(k) {
		log.Infof("query not in cache, fetching %s", k)
		r, err := l.fetch(ctx, k)
		if err != nil {
			return err
		}
		c.Insert(k, r)
	} else {
		log.Debugf("cache hit: %s", k)
	}

	r, ok := c.Get(k)
	if !ok {
		panic(fmt.Sprintf("lookup: %s missing from cache after insert", k))
	}

	var out bytes.Buffer
	if err := query.Render(&out, r); err != nil {
		return err
	}
	if _, err := l.Out.Write(out.Bytes()); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	return l.Store.Flush(ctx, c)
}

func (l *Lookup) fetch(ctx context.Context, k query.Key) (query.Result, error) {
	if l.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.Timeout)
		defer cancel()
	}
	return l.Fetcher.Fetch(ctx, k)
}
