// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package changelog parses FireMon membership change-log records and computes
// the three-way set difference (removed, added, unchanged) between the old and
// new member lists of a record's "Members changed from [...] to [...]" clause.
package changelog
