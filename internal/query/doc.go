// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package query holds the values exchanged between the cache and the fetch
// layer: the origin/destination key and the travel result stored against it.
package query
