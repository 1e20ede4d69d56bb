// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"time"

	altsrc "github.com/urfave/cli-altsrc/v3"
	toml "github.com/urfave/cli-altsrc/v3/toml"
	"github.com/urfave/cli/v3"
)

// DefaultTimeout bounds the distance matrix request unless overridden.
const DefaultTimeout = 30 * time.Second

// NewLookupFlags builds the flags for the lookup. cfgPath is the TOML config
// consulted after the command line and environment; it may not exist.
func NewLookupFlags(cfgPath string) []cli.Flag {
	src := altsrc.StringSourcer(cfgPath)

	return []cli.Flag{
		&cli.StringFlag{
			Name:     "from",
			Aliases:  []string{"f"},
			Usage:    "address to start the estimation from",
			Required: true,
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.StringFlag{
			Name:     "destination",
			Aliases:  []string{"d"},
			Usage:    "address of destination",
			Required: true,
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.StringFlag{
			Name:    "api-key",
			Aliases: []string{"k"},
			Usage:   "path to api key file",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("TRIPCACHE_API_KEY_FILE"),
				toml.TOML("api_key_path", src),
			),
		},
		&cli.StringFlag{
			Name:    "cache",
			Aliases: []string{"c"},
			Usage:   "cache file path or s3://bucket/key (default: user cache dir)",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("TRIPCACHE_CACHE"),
				toml.TOML("caching.path", src),
			),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator, CacheLocationValidator)
			},
		},
		&cli.StringFlag{
			Name:  "region",
			Usage: "AWS region for an s3:// cache",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AWS_REGION"),
				toml.TOML("caching.region", src),
			),
		},
		&cli.StringFlag{
			Name:  "profile",
			Usage: "AWS shared config profile for an s3:// cache",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AWS_PROFILE"),
				toml.TOML("caching.profile", src),
			),
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "give up on the distance lookup after this long (0 waits forever)",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("TRIPCACHE_TIMEOUT"),
				toml.TOML("timeout", src),
			),
			Value: DefaultTimeout,
		},
		&cli.StringFlag{
			Name:   "endpoint",
			Hidden: true,
			Usage:  "distance matrix API base URL",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("TRIPCACHE_ENDPOINT"),
			),
		},
	}
}
