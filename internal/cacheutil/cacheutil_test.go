// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cacheutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDir_EnvOverride(t *testing.T) {
	t.Setenv("TRIPCACHE_CACHE_DIR", "/tmp/somewhere")

	dir, err := Dir()
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/somewhere", dir)

	p, err := DefaultPath()
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/somewhere", FileName), p)
}

func TestDir_UserCacheDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CACHE_HOME only drives os.UserCacheDir on linux")
	}
	t.Setenv("TRIPCACHE_CACHE_DIR", "")
	t.Setenv("XDG_CACHE_HOME", "/xdg/cache")

	p, err := DefaultPath()
	assert.NoError(t, err)
	assert.Equal(t, "/xdg/cache/tripcache/cache.yaml", p)
}

func TestDir_NoUserEnvironment(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("environment lookup differs on this platform")
	}
	t.Setenv("TRIPCACHE_CACHE_DIR", "")
	t.Setenv("XDG_CACHE_HOME", "")
	t.Setenv("HOME", "")

	_, err := DefaultPath()
	assert.Error(t, err)
}

func TestEnsureFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "cache.yaml")

	require.NoError(t, EnsureFile(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, int64(0), info.Size())
}

func TestEnsureFile_ExistingFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entries: []\n"), 0o600))

	assert.Error(t, EnsureFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "entries: []\n", string(data))
}

func TestEnsureFile_ParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	err := EnsureFile(filepath.Join(blocker, "cache.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create cache directory")
}
