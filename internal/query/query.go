// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package query

import (
	"fmt"
	"io"
)

// NotAvailable is rendered in place of a missing distance or duration.
const NotAvailable = "N/A"

// Key identifies a single distance lookup. It is comparable and is used
// directly as a map key, so two keys are equal only when both addresses match
// exactly. No normalization is applied.
type Key struct {
	Origin      string
	Destination string
}

func (k Key) String() string {
	return fmt.Sprintf("%q -> %q", k.Origin, k.Destination)
}

// Result is the outcome of a lookup. The upstream service may omit distance
// or duration even on a successful response, so every field is optional.
type Result struct {
	DistanceMeters  *uint32 `yaml:"distance_meters,omitempty"`
	DistanceText    *string `yaml:"distance_text,omitempty"`
	DurationSeconds *int64  `yaml:"duration_seconds,omitempty"`
	DurationText    *string `yaml:"duration_text,omitempty"`
}

// Distance returns the display distance or NotAvailable.
func (r Result) Distance() string {
	return orNotAvailable(r.DistanceText)
}

// Duration returns the display travel time or NotAvailable.
func (r Result) Duration() string {
	return orNotAvailable(r.DurationText)
}

// Equal reports whether both results carry the same fields, comparing
// presence as well as value.
func (r Result) Equal(o Result) bool {
	return eqPtr(r.DistanceMeters, o.DistanceMeters) &&
		eqPtr(r.DistanceText, o.DistanceText) &&
		eqPtr(r.DurationSeconds, o.DurationSeconds) &&
		eqPtr(r.DurationText, o.DurationText)
}

// Render writes the two output lines for r.
func Render(w io.Writer, r Result) error {
	if _, err := fmt.Fprintf(w, "Distance:    %s\n", r.Distance()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Travel time: %s\n", r.Duration())
	return err
}

// Ptr returns a pointer to v. Handy when building a Result by hand.
func Ptr[T any](v T) *T {
	return &v
}

func orNotAvailable(s *string) string {
	if s == nil {
		return NotAvailable
	}
	return *s
}

func eqPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
