// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	yaml "gopkg.in/yaml.v2"

	"github.com/fmdiff/fmdiff/internal/changelog"
	"github.com/fmdiff/fmdiff/internal/config"
	"github.com/fmdiff/fmdiff/internal/input"
	"github.com/fmdiff/fmdiff/internal/meta"
	"github.com/fmdiff/fmdiff/internal/output"
)

// exportStats aggregates change statistics over a processed export.
type exportStats struct {
	TotalRecords       int `json:"totalRecords" yaml:"totalRecords"`
	RecordsWithChanges int `json:"recordsWithChanges" yaml:"recordsWithChanges"`
	TotalRemovedItems  int `json:"totalRemovedItems" yaml:"totalRemovedItems"`
	TotalAddedItems    int `json:"totalAddedItems" yaml:"totalAddedItems"`
}

// statsCommandAction is the action handler for the "stats" subcommand. It
// reads an export, diffs the change-log column and reports aggregate change
// statistics instead of the per-record dataset.
func statsCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "stats") {
		return nil
	}

	config.Config.Namespace = "stats"

	path := cmd.Args().First()
	if path == "" {
		path = "-"
	}

	src, err := input.Read(path, input.Format(cmd.String("format")))
	if err != nil {
		return err
	}

	records, _ := changelog.DiffBatch(src.Records, cmd.String("column"), true)
	stats := computeStats(records)

	switch cmd.String("output") {
	case "json", "raw":
		doc, err := json.Marshal(stats)
		if err != nil {
			return fmt.Errorf("failed to marshal stats: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(doc))
	case "yaml":
		doc, err := yaml.Marshal(stats)
		if err != nil {
			return fmt.Errorf("failed to marshal stats: %w", err)
		}
		fmt.Fprint(os.Stdout, string(doc))
	default:
		fmt.Fprintf(os.Stdout, "total records:        %s\n",
			humanize.Comma(int64(stats.TotalRecords)))
		fmt.Fprintf(os.Stdout, "records with changes: %s\n",
			humanize.Comma(int64(stats.RecordsWithChanges)))
		fmt.Fprintf(os.Stdout, "removed items:        %s\n",
			humanize.Comma(int64(stats.TotalRemovedItems)))
		fmt.Fprintf(os.Stdout, "added items:          %s\n",
			humanize.Comma(int64(stats.TotalAddedItems)))
	}

	return nil
}

// computeStats tallies the derived columns of a processed record set. Item
// counts come from splitting the rendered member lists, which never contain
// embedded commas.
func computeStats(records []changelog.Record) (stats exportStats) {
	stats.TotalRecords = len(records)
	for _, rec := range records {
		if output.InterfaceToString(rec[changelog.FieldChanges]) == "" {
			continue
		}
		stats.RecordsWithChanges++
		stats.TotalRemovedItems += countItems(rec[changelog.FieldRemoved])
		stats.TotalAddedItems += countItems(rec[changelog.FieldAdded])
	}
	return
}

func countItems(value interface{}) int {
	s := output.InterfaceToString(value)
	if s == "" {
		return 0
	}
	return len(strings.Split(s, ","))
}

// statsCommandBuilder constructs the "stats" subcommand.
func statsCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "stats",
		Usage:     "change statistics over an export",
		UsageText: "fmdiff stats [export-file]",
		Metadata:  map[string]any{"meta": m},
		Flags: []cli.Flag{
			NewColumnFlag("stats", m.Config.Source),
			NewFormatFlag(),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output format",
				Value:   "text",
				Validator: func(value string) error {
					return FlagValidators(value, OutputValidator)
				},
			},
			tldrFlag,
		},
		Action: statsCommandAction,
	}
}
