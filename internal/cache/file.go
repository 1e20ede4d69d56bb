// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"

	"github.com/staranto/tripcache/internal/cacheutil"
)

// Load reads the cache file at path.
//
// A missing file, or one whose parent is not a directory, is bootstrapped:
// its parent directories and an empty file are created on a best-effort basis
// and an empty Cache is returned. Failures while creating them are logged, not
// returned. A file that exists but cannot be read is an error, so its entries
// are never flushed over. A zero byte file is an empty Cache. Any other
// content must parse, otherwise a *CorruptError is returned.
func Load(path string) (*Cache, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, syscall.ENOTDIR) {
			return nil, fmt.Errorf("failed to read cache at '%s': %w", path, err)
		}
		log.Infof("creating cache file at '%s'", path)
		if err := cacheutil.EnsureFile(path); err != nil {
			log.WithError(err).Warnf("failed to create cache at '%s'", path)
		}
		return New(), nil
	}

	c, err := parse(path, data)
	if err != nil {
		return nil, err
	}
	log.Debugf("loaded %d entries from %s (%s)", c.Len(), path, humanize.Bytes(uint64(len(data))))
	return c, nil
}

// Flush replaces the file at path with the serialized cache. The content is
// written to a temporary file in the same directory, synced, and renamed over
// path so a failed flush never leaves a half-written cache behind.
func Flush(path string, c *Cache) error {
	data, err := Encode(c)
	if err != nil {
		return &FlushError{Step: StepSerialize, Location: path, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return &FlushError{Step: StepOpen, Location: path, Err: err}
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return &FlushError{Step: StepWrite, Location: path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return &FlushError{Step: StepSync, Location: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &FlushError{Step: StepClose, Location: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		return &FlushError{Step: StepRename, Location: path, Err: err}
	}
	committed = true

	log.Debugf("flushed %d entries to %s (%s)", c.Len(), path, humanize.Bytes(uint64(len(data))))
	return nil
}

// FileStore is a Store backed by a local file.
type FileStore struct {
	Path string
}

func (s FileStore) Load(_ context.Context) (*Cache, error) {
	return Load(s.Path)
}

func (s FileStore) Flush(_ context.Context, c *Cache) error {
	return Flush(s.Path, c)
}

func (s FileStore) String() string {
	return s.Path
}
