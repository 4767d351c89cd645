// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters provides row filtering for batch results.
//
// The package parses filter expressions to select subsets of records based on
// column values. Filters are specified as key-operator-target expressions and
// can be combined using a configurable delimiter (default: comma).
//
// Operators include:
//
//   - = : exact match (supports negation with !=)
//   - ^ : prefix match (supports negation with !^)
//   - ~ : case-insensitive match (supports negation with !~)
//   - < : less than (numeric comparison)
//   - > : greater than (numeric comparison)
//   - @ : contains substring (supports negation with !@)
//   - / : regex match (supports negation with !/)
//
// Examples:
//
//   - "changes=" : matches records whose change summary is empty
//   - "changes!=" : matches records with a non-empty change summary
//   - "owner^fw-" : matches records where owner starts with "fw-"
//   - "removed@srv-db" : matches records whose removed list mentions srv-db
//
// Filter keys are matched against the OutputKey of attributes (see attrs
// package). Invalid specifications are logged as warnings and skipped,
// allowing partial filter sets to be processed.
package filters
