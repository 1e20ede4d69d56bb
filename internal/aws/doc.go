// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package aws loads AWS configuration and builds the S3 client used when the
// cache lives in a bucket.
package aws
