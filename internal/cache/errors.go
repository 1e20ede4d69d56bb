// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import "fmt"

// CorruptError is returned when a non-empty cache cannot be parsed. The
// content is left in place for the user to inspect.
type CorruptError struct {
	Location string
	Err      error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("cache at '%s' is corrupted: %v", e.Location, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// Flush steps reported in FlushError.
const (
	StepSerialize = "serialize"
	StepOpen      = "open"
	StepWrite     = "write"
	StepSync      = "sync"
	StepClose     = "close"
	StepRename    = "rename"
)

// FlushError identifies which step of a flush failed and where.
type FlushError struct {
	Step     string
	Location string
	Err      error
}

func (e *FlushError) Error() string {
	return fmt.Sprintf("failed to flush cache at '%s' (%s): %v", e.Location, e.Step, e.Err)
}

func (e *FlushError) Unwrap() error { return e.Err }
