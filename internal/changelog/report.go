// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package changelog

import (
	"fmt"
	"strings"
)

// The rendering contract below is fixed: removed members are comma-space
// joined on one line, added members are comma-newline joined (one per line,
// no trailing comma), and both lists are sorted lexicographically so repeated
// runs over the same input produce identical output.

// RenderRemoved returns the removed members as a single "X, Y, Z" line. An
// empty set renders as the empty string.
func (r Result) RenderRemoved() string {
	return strings.Join(r.Removed.Sorted(), ", ")
}

// RenderAdded returns the added members as an "X,\nY,\nZ" block. An empty set
// renders as the empty string.
func (r Result) RenderAdded() string {
	return strings.Join(r.Added.Sorted(), ",\n")
}

// Summary returns the one-line change summary, e.g.
// "removed:1 items, added:2 items".
func (r Result) Summary() string {
	return fmt.Sprintf("removed:%d items, added:%d items", len(r.Removed), len(r.Added))
}

// Report returns the full human-readable rendering of the result: the summary
// line followed by the removed and added sections. Sections with no members
// are omitted.
func (r Result) Report() string {
	var b strings.Builder

	b.WriteString(r.Summary())

	if len(r.Removed) > 0 {
		b.WriteString("\nremoved: ")
		b.WriteString(r.RenderRemoved())
	}

	if len(r.Added) > 0 {
		b.WriteString("\nadded:\n")
		b.WriteString(r.RenderAdded())
	}

	return b.String()
}
