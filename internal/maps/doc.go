// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package maps calls the Google Distance Matrix API for a single origin and
// destination pair.
package maps
