// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"sort"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/tripcache/internal/config"
	"github.com/staranto/tripcache/internal/meta"
	"github.com/staranto/tripcache/internal/version"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	cfgPath, cfgErr := config.Path()
	if cfgErr != nil {
		log.WithError(cfgErr).Debug("config path unresolved")
	}

	meta := meta.Meta{
		Args:       args,
		Context:    ctx,
		ConfigPath: cfgPath,
		ConfigErr:  cfgErr,
	}

	app := &cli.Command{
		Name:      "tripcache",
		Usage:     "cached travel distance and time between two addresses",
		UsageText: `tripcache --from ADDRESS --destination ADDRESS [options]`,
		Version:   version.Version,
		Metadata: map[string]any{
			"meta": meta,
		},
		EnableShellCompletion: true,
		Flags:                 NewLookupFlags(cfgPath),
		Action:                LookupCommandAction,
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}
