// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/tripcache/internal/cache"
	"github.com/staranto/tripcache/internal/cacheutil"
	"github.com/staranto/tripcache/internal/config"
	"github.com/staranto/tripcache/internal/lookup"
	"github.com/staranto/tripcache/internal/maps"
	"github.com/staranto/tripcache/internal/meta"
	"github.com/staranto/tripcache/internal/query"
)

// LookupCommandAction resolves the API key and cache location, then runs a
// single cached lookup for --from and --destination.
func LookupCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", cmd.Args().Slice())

	keyPath, err := apiKeyPath(cmd, m)
	if err != nil {
		return err
	}
	apiKey, err := config.ReadAPIKey(keyPath)
	if err != nil {
		return err
	}

	var opts []maps.Option
	if endpoint := cmd.String("endpoint"); endpoint != "" {
		opts = append(opts, maps.WithBaseURL(endpoint))
	}
	client, err := maps.NewClient(apiKey, opts...)
	if err != nil {
		return err
	}

	location := cmd.String("cache")
	if location == "" {
		if location, err = cacheutil.DefaultPath(); err != nil {
			return err
		}
	}
	log.Debugf("cache: %s", location)

	store, err := cache.Open(ctx, location,
		cache.WithRegion(cmd.String("region")),
		cache.WithProfile(cmd.String("profile")))
	if err != nil {
		return err
	}

	l := &lookup.Lookup{
		Store:   store,
		Fetcher: client,
		Timeout: cmd.Duration("timeout"),
		Out:     cmd.Writer,
	}
	return l.Run(ctx, query.Key{
		Origin:      cmd.String("from"),
		Destination: cmd.String("destination"),
	})
}

// apiKeyPath returns --api-key when it resolved to a value. Otherwise the
// config file is loaded explicitly so a missing or broken config is reported
// rather than silently skipped.
func apiKeyPath(cmd *cli.Command, m meta.Meta) (string, error) {
	if p := cmd.String("api-key"); p != "" {
		return p, nil
	}
	if m.ConfigErr != nil {
		return "", fmt.Errorf("failed to build configs: %w", m.ConfigErr)
	}
	cfg, err := config.Load(m.ConfigPath)
	if err != nil {
		return "", fmt.Errorf("failed to build configs: %w", err)
	}
	return cfg.APIKeyPath()
}
