// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/fmdiff/fmdiff/internal/changelog"
)

// Compare diffs two JSON documents. Both documents must be top-level objects;
// callers comparing exports wrap the record array first (see WrapRecords).
func Compare(ctx context.Context, cmd *cli.Command, docs [][]byte) error {
	log.Debugf(">> differ()")

	if len(docs[0]) == 0 || len(docs[1]) == 0 {
		return nil
	}

	log.Debugf("len(docs): %d %d", len(docs[0]), len(docs[1]))

	differ := gojsondiff.New()

	delta, err := differ.Compare(docs[0], docs[1])
	if err != nil {
		return fmt.Errorf("failed to compare documents: %w", err)
	}

	if delta.Modified() {
		var jdoc map[string]interface{}
		if err := json.Unmarshal(docs[0], &jdoc); err != nil {
			return fmt.Errorf("failed to unmarshal document: %w", err)
		}

		filter := cmd.String("diff-filter")

		for _, key := range strings.Split(filter, ",") {
			if key != "" {
				delete(jdoc, key)
			}
		}

		config := formatter.AsciiFormatterConfig{
			ShowArrayIndex: false,
			Coloring:       cmd.Bool("color"),
		}

		formatter := formatter.NewAsciiFormatter(jdoc, config)
		diffString, err := formatter.Format(delta)
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, diffString)
		return nil
	}

	fmt.Fprintln(os.Stdout, "The documents are identical.")
	return nil
}

// WrapRecords marshals a record slice into the top-level object form Compare
// expects.
func WrapRecords(records []changelog.Record) ([]byte, error) {
	doc, err := json.Marshal(map[string]interface{}{"records": records})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal records: %w", err)
	}
	return doc, nil
}
