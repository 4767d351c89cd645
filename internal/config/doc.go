// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config loads the fmdiff YAML configuration file and exposes typed
// getters over dotted key paths. Commands may set a Namespace so that
// namespaced keys (e.g. "batch.column") are preferred over global ones.
package config
