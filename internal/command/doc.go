// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command defines the tripcache command line. It wires flags and
// their config-file sources, validators, and the lookup action.
package command
