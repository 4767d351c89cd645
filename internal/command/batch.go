// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/fmdiff/fmdiff/internal/changelog"
	"github.com/fmdiff/fmdiff/internal/config"
	"github.com/fmdiff/fmdiff/internal/input"
	"github.com/fmdiff/fmdiff/internal/meta"
	"github.com/fmdiff/fmdiff/internal/output"
)

// batchCommandAction is the action handler for the "batch" subcommand. It
// reads a record export (CSV or JSON), diffs the change-log column of every
// record and emits the dataset with the derived changes/removed/added columns.
func batchCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "batch") {
		return nil
	}

	config.Config.Namespace = "batch"

	path := cmd.Args().First()
	if path == "" {
		path = "-"
	}

	src, err := input.Read(path, input.Format(cmd.String("format")))
	if err != nil {
		return err
	}

	inplace := cmd.Bool("in-place")
	records, stats := changelog.DiffBatch(src.Records, cmd.String("column"), inplace)

	// In-place against a CSV file rewrites the file itself, derived columns
	// appended. Anything else goes through the output framework.
	if inplace && src.Format == input.FormatCSV && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to rewrite input file: %w", err)
		}
		defer f.Close()
		if err := src.WriteCSV(f,
			changelog.FieldChanges, changelog.FieldRemoved, changelog.FieldAdded); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, batchFooter(stats))
		return nil
	}

	cmd.Metadata["footer"] = batchFooter(stats)

	al := BuildAttrs(cmd, batchDefaults(src.Headers)...)
	output.EmitDataset(records, al, cmd, os.Stdout, nil)

	return nil
}

// batchDefaults appends the derived columns to the source's own columns.
func batchDefaults(headers []string) []string {
	defaults := append([]string{}, headers...)
	for _, col := range []string{
		changelog.FieldChanges, changelog.FieldRemoved, changelog.FieldAdded,
	} {
		found := false
		for _, h := range defaults {
			if h == col {
				found = true
				break
			}
		}
		if !found {
			defaults = append(defaults, col)
		}
	}
	return defaults
}

// batchFooter renders the processing statistics line shown under the table.
func batchFooter(stats changelog.Stats) string {
	return fmt.Sprintf("\nprocessed:%d  with changes:%d  without changes:%d",
		stats.Processed, stats.WithChanges, stats.WithoutChanges)
}

// batchCommandBuilder constructs the "batch" subcommand.
func batchCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "batch",
		Usage:     "diff the change-log column of every record in an export",
		UsageText: "fmdiff batch [export-file]",
		Metadata:  map[string]any{"meta": m},
		Flags: append(NewGlobalFlags("batch"), []cli.Flag{
			NewColumnFlag("batch", m.Config.Source),
			NewFormatFlag(),
			&cli.BoolFlag{
				Name:    "in-place",
				Aliases: []string{"i"},
				Usage:   "rewrite a CSV input file with the derived columns",
				Value:   false,
			},
			tldrFlag,
		}...),
		Action: batchCommandAction,
	}
}
