// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/staranto/tripcache/internal/query"
)

var (
	errNotMapping       = errors.New("cache document is not a mapping")
	errTrailingDocument = errors.New("unexpected content after the cache document")
)

// document is the on-disk layout. A YAML mapping cannot carry a struct key, so
// each entry repeats its key fields next to the result.
type document struct {
	Entries []entry `yaml:"entries"`
}

type entry struct {
	Origin       string `yaml:"origin"`
	Destination  string `yaml:"destination"`
	query.Result `yaml:",inline"`
}

// Encode serializes c. Entries are sorted so the output is stable.
func Encode(c *Cache) ([]byte, error) {
	doc := document{Entries: make([]entry, 0, c.Len())}
	for _, k := range c.Keys() {
		r, _ := c.Get(k)
		doc.Entries = append(doc.Entries, entry{
			Origin:      k.Origin,
			Destination: k.Destination,
			Result:      r,
		})
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2) //nolint:mnd
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode cache: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode cache: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses data produced by Encode. The content must be a single YAML
// mapping; unknown fields, a null document and trailing documents are
// rejected. When a key repeats, the later entry wins.
func Decode(data []byte) (*Cache, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return nil, errNotMapping
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errTrailingDocument
		}
		return nil, err
	}

	c := New()
	for _, e := range doc.Entries {
		c.Insert(query.Key{Origin: e.Origin, Destination: e.Destination}, e.Result)
	}
	return c, nil
}

// parse applies the load rules shared by every store: empty content is an
// empty cache, anything else must decode.
func parse(location string, data []byte) (*Cache, error) {
	if len(data) == 0 {
		return New(), nil
	}
	c, err := Decode(data)
	if err != nil {
		return nil, &CorruptError{Location: location, Err: err}
	}
	return c, nil
}
