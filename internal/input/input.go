// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package input

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"

	"github.com/fmdiff/fmdiff/internal/changelog"
	"github.com/fmdiff/fmdiff/internal/log"
)

// Format identifies the serialization of a record source.
type Format string

const (
	FormatAuto Format = "auto"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Source is a fully-read record source. Headers preserves the CSV column
// order so a rewrite keeps the file shape; for JSON sources it is the sorted
// key set of the first record.
type Source struct {
	Path    string
	Format  Format
	Headers []string
	Records []changelog.Record
}

// Read loads all records from path. "-" reads stdin. When format is
// FormatAuto the format is derived from the file extension, falling back to
// content sniffing (JSON documents start with '[' or '{').
func Read(path string, format Format) (*Source, error) {
	var data []byte
	var err error

	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	if format == "" || format == FormatAuto {
		format = sniffFormat(path, data)
	}

	src := &Source{Path: path, Format: format}
	switch format {
	case FormatCSV:
		src.Headers, src.Records, err = parseCSV(data)
	case FormatJSON:
		src.Headers, src.Records, err = parseJSON(data)
	default:
		err = fmt.Errorf("unsupported input format: %s", format)
	}
	if err != nil {
		return nil, err
	}

	log.Infof("input read: path=%s format=%s records=%d size=%s",
		path, format, len(src.Records), humanize.Bytes(uint64(len(data))))

	return src, nil
}

// WriteCSV writes the source's records to w in CSV form, preserving the
// original column order and appending any extra columns not already present.
func (s *Source) WriteCSV(w io.Writer, extra ...string) error {
	headers := append([]string{}, s.Headers...)
	for _, col := range extra {
		found := false
		for _, h := range headers {
			if h == col {
				found = true
				break
			}
		}
		if !found {
			headers = append(headers, col)
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	row := make([]string, len(headers))
	for _, rec := range s.Records {
		for i, h := range headers {
			row[i] = toString(rec[h])
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// sniffFormat picks a format from the file extension, then from the leading
// byte of the content.
func sniffFormat(path string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".json":
		return FormatJSON
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{') {
		return FormatJSON
	}
	return FormatCSV
}

// parseCSV reads a header row and turns every following row into a record
// keyed by column name. Ragged rows are tolerated; missing cells become empty
// strings.
func parseCSV(data []byte) ([]string, []changelog.Record, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	headers := rows[0]
	records := make([]changelog.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(changelog.Record, len(headers))
		for i, h := range headers {
			if i < len(row) {
				rec[h] = row[i]
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}

	return headers, records, nil
}

// parseJSON accepts either a top-level array of objects or an object whose
// "data" key holds the array, mirroring the API export shapes seen in the
// wild.
func parseJSON(data []byte) ([]string, []changelog.Record, error) {
	doc := gjson.ParseBytes(data)

	rows := doc
	if doc.IsObject() {
		if inner := doc.Get("data"); inner.Exists() {
			rows = inner
		}
	}
	if !rows.IsArray() {
		return nil, nil, fmt.Errorf("json input is not an array of records")
	}

	var records []changelog.Record
	for _, row := range rows.Array() {
		rec := make(changelog.Record)
		for key, value := range row.Map() {
			rec[key] = value.Value()
		}
		records = append(records, rec)
	}

	var headers []string
	if len(records) > 0 {
		for key := range records[0] {
			headers = append(headers, key)
		}
		sort.Strings(headers)
	}

	return headers, records, nil
}

// toString renders a record value for CSV output.
func toString(value interface{}) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}
