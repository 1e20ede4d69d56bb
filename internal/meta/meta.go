// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package meta

import (
	"context"
)

// Meta are the per-invocation values resolved before flags are parsed.
type Meta struct {
	Args    []string
	Context context.Context
	// ConfigPath is where the TOML config is expected. ConfigErr is set when
	// the location could not be resolved, for example with no HOME; it only
	// matters if the config is actually needed.
	ConfigPath string
	ConfigErr  error
}
