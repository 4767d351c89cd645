// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package changelog

import (
	"github.com/fmdiff/fmdiff/internal/log"
)

// Derived field names attached to each record by DiffBatch. These match the
// column names of the exports consumed downstream.
const (
	FieldChanges = "changes"
	FieldRemoved = "removed"
	FieldAdded   = "added"
)

// Record is one row of a batch input, keyed by column name.
type Record map[string]interface{}

// Stats summarizes a batch run. Processed == WithChanges + WithoutChanges
// always holds; records with no recognizable clause, or whose clause removed
// and added nothing, count as WithoutChanges.
type Stats struct {
	Processed      int
	WithChanges    int
	WithoutChanges int
}

// DiffBatch runs the single-record pipeline over records in input order and
// attaches the three derived fields to each record. Records without a clause
// are not errors: their derived fields are set to the empty string and the
// record is still counted. The i-th output record always corresponds to the
// i-th input record.
//
// When inplace is true the input records are mutated and returned; otherwise
// each record is copied and the input is left untouched. Both modes are used
// by callers: in-place for CSV rewrite, copy when the caller keeps the
// original rows around.
func DiffBatch(records []Record, column string, inplace bool) ([]Record, Stats) {
	target := records
	if !inplace {
		target = make([]Record, len(records))
		for i, rec := range records {
			clone := make(Record, len(rec)+3)
			for k, v := range rec {
				clone[k] = v
			}
			target[i] = clone
		}
	}

	var stats Stats
	for _, rec := range target {
		rec[FieldChanges] = ""
		rec[FieldRemoved] = ""
		rec[FieldAdded] = ""

		raw, _ := rec[column].(string)

		oldText, newText, found := ExtractChangeClause(raw)
		if found {
			result := Diff(oldText, newText)
			if result.HasChanges() {
				rec[FieldChanges] = result.Summary()
				rec[FieldRemoved] = result.RenderRemoved()
				rec[FieldAdded] = result.RenderAdded()
				stats.WithChanges++
			}
		}

		stats.Processed++
		if stats.Processed%100 == 0 {
			log.Debugf("batch progress: processed=%d total=%d", stats.Processed, len(target))
		}
	}

	stats.WithoutChanges = stats.Processed - stats.WithChanges

	log.Infof("batch done: processed=%d with=%d without=%d",
		stats.Processed, stats.WithChanges, stats.WithoutChanges)

	return target, stats
}
