// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package input

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmdiff/fmdiff/internal/changelog"
)

func TestRead_CSV(t *testing.T) {
	src, err := Read(filepath.Join("testdata", "tickets.csv"), FormatAuto)
	require.NoError(t, err)

	assert.Equal(t, FormatCSV, src.Format)
	assert.Equal(t, []string{"id", "owner", "changeLog"}, src.Headers)
	require.Len(t, src.Records, 3)
	assert.Equal(t, "1001", src.Records[0]["id"])
	assert.Equal(t, "alice", src.Records[0]["owner"])

	// The quoted multi-line cell survives as a single record value.
	assert.Contains(t, src.Records[2]["changeLog"], "net-2")
}

func TestRead_JSON(t *testing.T) {
	src, err := Read(filepath.Join("testdata", "tickets.json"), FormatAuto)
	require.NoError(t, err)

	assert.Equal(t, FormatJSON, src.Format)
	require.Len(t, src.Records, 2)
	assert.Equal(t, "alice", src.Records[0]["owner"])
	assert.Equal(t, float64(1001), src.Records[0]["id"])
	assert.Equal(t, []string{"changeLog", "id", "owner"}, src.Headers)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join("testdata", "nope.csv"), FormatAuto)
	assert.Error(t, err)
}

func TestSniffFormat(t *testing.T) {
	tests := []struct {
		name string
		path string
		data string
		want Format
	}{
		{
			name: "csv extension",
			path: "rows.csv",
			want: FormatCSV,
		},
		{
			name: "json extension",
			path: "rows.json",
			want: FormatJSON,
		},
		{
			name: "stdin json array",
			path: "-",
			data: "  [{\"a\": 1}]",
			want: FormatJSON,
		},
		{
			name: "stdin json object",
			path: "-",
			data: "{\"data\": []}",
			want: FormatJSON,
		},
		{
			name: "stdin csv fallback",
			path: "-",
			data: "id,changeLog\n1,x",
			want: FormatCSV,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sniffFormat(tt.path, []byte(tt.data)))
		})
	}
}

func TestParseCSV_Ragged(t *testing.T) {
	data := "id,owner,changeLog\n1,alice\n2,bob,log,extra\n"
	headers, records, err := parseCSV([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "owner", "changeLog"}, headers)
	require.Len(t, records, 2)
	assert.Equal(t, "", records[0]["changeLog"])
	assert.Equal(t, "log", records[1]["changeLog"])
}

func TestParseJSON_TopLevelArray(t *testing.T) {
	data := `[{"id": 1, "changeLog": "x"}, {"id": 2, "changeLog": "y"}]`
	_, records, err := parseJSON([]byte(data))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "y", records[1]["changeLog"])
}

func TestParseJSON_NotAnArray(t *testing.T) {
	_, _, err := parseJSON([]byte(`{"id": 1}`))
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	src := &Source{
		Format:  FormatCSV,
		Headers: []string{"id", "changeLog"},
		Records: []changelog.Record{
			{"id": "1", "changeLog": "Members changed from [A] to [B]", "changes": "removed:1 items, added:1 items"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, src.WriteCSV(&buf, "changes"))

	want := "id,changeLog,changes\n" +
		"1,Members changed from [A] to [B],\"removed:1 items, added:1 items\"\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_ExtraAlreadyPresent(t *testing.T) {
	src := &Source{
		Headers: []string{"id", "changes"},
		Records: []changelog.Record{{"id": "1", "changes": ""}},
	}

	var buf bytes.Buffer
	require.NoError(t, src.WriteCSV(&buf, "changes"))
	assert.Equal(t, "id,changes\n1,\n", buf.String())
}
