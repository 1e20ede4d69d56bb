// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/apex/log"

	"github.com/staranto/tripcache/internal/cacheutil"
)

// FileName is the config file within the per-user config directory.
const FileName = "configs.toml"

var (
	// ErrNotFound is returned when the config file does not exist.
	ErrNotFound = errors.New("config file not found")
	// ErrNoAPIKeyPath is returned when no api_key_path is configured.
	ErrNoAPIKeyPath = errors.New("no api key path configured")
)

// Type is a loaded config file. Data holds the decoded TOML document; tables
// are nested maps.
type Type struct {
	Source string
	Data   map[string]interface{}
}

// Path resolves the config file location.
// Precedence:
//  1. TRIPCACHE_CFG, if set and non-empty
//  2. os.UserConfigDir()/tripcache/configs.toml
func Path() (string, error) {
	if p, ok := os.LookupEnv("TRIPCACHE_CFG"); ok && p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine user config directory: %w", err)
	}
	return filepath.Join(dir, cacheutil.AppName, FileName), nil
}

// Load reads and parses the TOML file at path.
func Load(path string) (Type, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Type{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Type{}, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.IsDir() {
		return Type{}, fmt.Errorf("config path %s points to a directory", path)
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Type{}, fmt.Errorf("failed to read config file: %w", err)
	}

	data := map[string]interface{}{}
	if err := toml.Unmarshal(bytes, &data); err != nil {
		return Type{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	log.Debugf("using config file: %s", path)

	return Type{Source: path, Data: data}, nil
}

// get traverses the map using a dotted key path.
func (cfg Type) get(kspec string) (any, error) {
	var current interface{} = cfg.Data
	for _, key := range strings.Split(kspec, ".") {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("no value at '%s'", kspec)
		}
		current, ok = m[key]
		if !ok {
			return nil, fmt.Errorf("no value at '%s'", kspec)
		}
	}
	return current, nil
}

// GetString returns the string at key, or defaultValue when the key is absent.
func (cfg Type) GetString(key string, defaultValue ...string) (string, error) {
	val, err := cfg.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("value at '%s' is not a string", key)
	}
	return s, nil
}

// APIKeyPath returns the configured api_key_path.
func (cfg Type) APIKeyPath() (string, error) {
	p, err := cfg.GetString("api_key_path", "")
	if err != nil {
		return "", err
	}
	if p == "" {
		return "", fmt.Errorf("%w in %s", ErrNoAPIKeyPath, cfg.Source)
	}
	return p, nil
}

// ReadAPIKey returns the trimmed content of the key file at path.
func ReadAPIKey(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read api key: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}
