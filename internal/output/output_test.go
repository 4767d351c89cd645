// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/fmdiff/fmdiff/internal/attrs"
	"github.com/fmdiff/fmdiff/internal/changelog"
)

func TestSortDataset(t *testing.T) {
	testData := []map[string]interface{}{
		{"owner": "zebra", "count": 3.0, "changes": "removed:1 items, added:0 items"},
		{"owner": "alpha", "count": 1.0, "changes": "removed:0 items, added:2 items"},
		{"owner": "beta", "count": 2.0, "changes": ""},
	}

	tests := []struct {
		name      string
		spec      string
		wantOrder []string
	}{
		{
			name:      "ascending by owner",
			spec:      "owner",
			wantOrder: []string{"alpha", "beta", "zebra"},
		},
		{
			name:      "descending by owner",
			spec:      "-owner",
			wantOrder: []string{"zebra", "beta", "alpha"},
		},
		{
			name:      "ascending by count",
			spec:      "count",
			wantOrder: []string{"alpha", "beta", "zebra"},
		},
		{
			name:      "descending by count",
			spec:      "-count",
			wantOrder: []string{"zebra", "beta", "alpha"},
		},
		{
			name:      "case sensitive",
			spec:      "!owner",
			wantOrder: []string{"alpha", "beta", "zebra"},
		},
		{
			name:      "multiple fields",
			spec:      "changes,owner",
			wantOrder: []string{"beta", "alpha", "zebra"},
		},
		{
			name:      "empty spec keeps order",
			spec:      "",
			wantOrder: []string{"zebra", "alpha", "beta"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]map[string]interface{}, len(testData))
			copy(data, testData)
			SortDataset(data, tt.spec)
			for i, expectedOwner := range tt.wantOrder {
				assert.Equal(t, expectedOwner, data[i]["owner"], "at index %d", i)
			}
		})
	}
}

func TestInterfaceToString(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		emptyVal string
		want     string
	}{
		{
			name:  "string",
			value: "hello",
			want:  "hello",
		},
		{
			name:  "int",
			value: 42,
			want:  "42",
		},
		{
			name:  "float rendered as integer",
			value: 1001.0,
			want:  "1001",
		},
		{
			name:  "bool",
			value: true,
			want:  "true",
		},
		{
			name:     "nil uses empty value",
			value:    nil,
			emptyVal: "-",
			want:     "-",
		},
		{
			name:     "empty string uses empty value",
			value:    "",
			emptyVal: "-",
			want:     "-",
		},
		{
			name:  "slice marshals to json",
			value: []string{"a", "b"},
			want:  `["a","b"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.emptyVal != "" {
				assert.Equal(t, tt.want, InterfaceToString(tt.value, tt.emptyVal))
				return
			}
			assert.Equal(t, tt.want, InterfaceToString(tt.value))
		})
	}
}

func emitRecords() []changelog.Record {
	return []changelog.Record{
		{"id": "2", "owner": "bob", "changes": ""},
		{"id": "1", "owner": "alice", "changes": "removed:1 items, added:2 items"},
	}
}

func emitAttrs() attrs.AttrList {
	return attrs.AttrList{
		{Key: "id", OutputKey: "id", Include: true},
		{Key: "owner", OutputKey: "owner", Include: true},
		{Key: "changes", OutputKey: "changes", Include: true},
	}
}

// runEmit drives EmitDataset through a real cli.Command so flag handling is
// exercised the same way the commands exercise it.
func runEmit(t *testing.T, records []changelog.Record, al attrs.AttrList, args ...string) string {
	t.Helper()

	var buf bytes.Buffer
	cmd := &cli.Command{
		Name:     "test",
		Metadata: map[string]any{},
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Value: "text"},
			&cli.StringFlag{Name: "filter"},
			&cli.StringFlag{Name: "sort"},
			&cli.BoolFlag{Name: "color"},
			&cli.BoolFlag{Name: "titles"},
			&cli.IntFlag{Name: "padding", Value: 2},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			EmitDataset(records, al, cmd, &buf, nil)
			return nil
		},
	}

	require.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
	return buf.String()
}

func TestEmitDataset_JSON(t *testing.T) {
	got := runEmit(t, emitRecords(), emitAttrs(), "--output", "json", "--sort", "id")

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(got), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "alice", rows[0]["owner"])
	assert.Equal(t, "bob", rows[1]["owner"])
}

func TestEmitDataset_YAML(t *testing.T) {
	got := runEmit(t, emitRecords(), emitAttrs(), "--output", "yaml", "--sort", "id")
	assert.Contains(t, got, "owner: alice")
	assert.Contains(t, got, "owner: bob")
}

func TestEmitDataset_Raw(t *testing.T) {
	got := runEmit(t, emitRecords(), emitAttrs(), "--output", "raw")

	// Raw dumps the unshaped, unsorted records.
	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(got), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "bob", rows[0]["owner"])
}

func TestEmitDataset_Filtered(t *testing.T) {
	got := runEmit(t, emitRecords(), emitAttrs(), "--output", "json", "--filter", "changes!=")

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(got), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "alice", rows[0]["owner"])
}

func TestEmitDataset_Text(t *testing.T) {
	got := runEmit(t, emitRecords(), emitAttrs(), "--titles")

	assert.Contains(t, got, "alice")
	assert.Contains(t, got, "bob")
	assert.Contains(t, got, "owner")
}

func TestEmitDataset_PostProcess(t *testing.T) {
	called := false
	var buf bytes.Buffer

	cmd := &cli.Command{
		Name:     "test",
		Metadata: map[string]any{},
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Value: "text"},
			&cli.StringFlag{Name: "filter"},
			&cli.StringFlag{Name: "sort"},
			&cli.BoolFlag{Name: "color"},
			&cli.BoolFlag{Name: "titles"},
			&cli.IntFlag{Name: "padding"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			EmitDataset(emitRecords(), emitAttrs(), cmd, &buf, func(dataset []map[string]interface{}) error {
				called = true
				return nil
			})
			return nil
		},
	}

	require.NoError(t, cmd.Run(context.Background(), []string{"test"}))
	assert.True(t, called)
}

func TestTableWriter_Empty(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cli.Command{Metadata: map[string]any{}}
	TableWriter(nil, emitAttrs(), cmd, &buf)
	assert.Empty(t, buf.String())
}
