// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fmdiff/fmdiff/internal/changelog"
)

func TestComputeStats(t *testing.T) {
	records := []changelog.Record{
		{
			"id":      "1",
			"changes": "removed:2 items, added:1 items",
			"removed": "GroupA, GroupB",
			"added":   "GroupC",
		},
		{
			"id":      "2",
			"changes": "removed:0 items, added:2 items",
			"removed": "",
			"added":   "GroupD,\nGroupE",
		},
		{
			"id":      "3",
			"changes": "",
			"removed": "",
			"added":   "",
		},
	}

	stats := computeStats(records)

	assert.Equal(t, 3, stats.TotalRecords)
	assert.Equal(t, 2, stats.RecordsWithChanges)
	assert.Equal(t, 2, stats.TotalRemovedItems)
	assert.Equal(t, 3, stats.TotalAddedItems)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := computeStats(nil)
	assert.Equal(t, 0, stats.TotalRecords)
	assert.Equal(t, 0, stats.RecordsWithChanges)
}

func TestCountItems(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		count int
	}{
		{"empty string", "", 0},
		{"nil", nil, 0},
		{"single item", "GroupA", 1},
		{"comma-space list", "GroupA, GroupB, GroupC", 3},
		{"comma-newline list", "GroupA,\nGroupB", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.count, countItems(tt.value))
		})
	}
}

func TestBatchDefaults(t *testing.T) {
	t.Run("derived columns appended", func(t *testing.T) {
		got := batchDefaults([]string{"id", "name", "changeLog"})
		assert.Equal(t,
			[]string{"id", "name", "changeLog", "changes", "removed", "added"},
			got)
	})

	t.Run("existing derived columns not duplicated", func(t *testing.T) {
		got := batchDefaults([]string{"id", "changes"})
		assert.Equal(t, []string{"id", "changes", "removed", "added"}, got)
	})
}

func TestBatchFooter(t *testing.T) {
	footer := batchFooter(changelog.Stats{Processed: 10, WithChanges: 4, WithoutChanges: 6})
	assert.Contains(t, footer, "processed:10")
	assert.Contains(t, footer, "with changes:4")
	assert.Contains(t, footer, "without changes:6")
}
