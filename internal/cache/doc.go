// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package cache keeps lookup results keyed by origin and destination, and
// persists them as a single YAML document on local disk or in S3. Entries
// never expire.
package cache
