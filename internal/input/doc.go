// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package input reads batch records from CSV or JSON sources into the ordered
// row form consumed by the changelog batch pipeline. The differ itself stays
// source-agnostic; this package is the CLI-side collaborator that feeds it.
package input
