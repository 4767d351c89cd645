// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command wires the fmdiff subcommands: diff (single record), batch
// (bulk processing), stats (export statistics) and cmp (export comparison).
package command
