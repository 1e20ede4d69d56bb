// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/staranto/tripcache/internal/command"
	mylog "github.com/staranto/tripcache/internal/log"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain(os.Args))
}

func realMain(args []string) int {
	mylog.InitLogger()

	// Bare invocation shows help but is still a usage error.
	bare := len(args) < 2
	if bare {
		fmt.Fprintln(os.Stderr, "No addresses specified.")
		args = append(args, "--help")
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if bare {
		return 2
	}

	return 0
}
