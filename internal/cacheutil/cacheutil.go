// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// AppName names the per-user cache and config directories.
	AppName = "tripcache"
	// FileName is the cache file within the cache directory.
	FileName = "cache.yaml"
)

// Dir resolves the base cache directory.
// Precedence:
//  1. TRIPCACHE_CACHE_DIR, if set and non-empty
//  2. os.UserCacheDir()/tripcache
//
// os.UserCacheDir derives the location from the invoking user's environment
// (XDG_CACHE_HOME or HOME on Unix), so an empty environment is an error.
func Dir() (string, error) {
	if c, ok := os.LookupEnv("TRIPCACHE_CACHE_DIR"); ok && c != "" {
		return c, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine user cache directory: %w", err)
	}
	return filepath.Join(dir, AppName), nil
}

// DefaultPath returns the per-user cache file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// EnsureFile creates every missing parent directory of path and then an empty
// file at path. An existing file is never truncated; finding one is reported
// as an error so the caller can decide whether that matters.
func EnsureFile(path string) error {
	if path == "" {
		return errors.New("empty cache path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600) //nolint:mnd
	if err != nil {
		return fmt.Errorf("failed to create cache file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close cache file: %w", err)
	}
	return nil
}
