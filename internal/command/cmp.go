// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/fmdiff/fmdiff/internal/config"
	"github.com/fmdiff/fmdiff/internal/differ"
	"github.com/fmdiff/fmdiff/internal/input"
	"github.com/fmdiff/fmdiff/internal/meta"
)

// cmpCommandAction is the action handler for the "cmp" subcommand. With two
// export files it compares them whole. With one it opens a picker so the user
// can select two records of the same export to compare.
func cmpCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "cmp") {
		return nil
	}

	config.Config.Namespace = "cmp"

	args := cmd.Args().Slice()

	switch len(args) {
	case 1:
		return cmpRecords(ctx, cmd, args[0])
	case 2:
		return cmpExports(ctx, cmd, args[0], args[1])
	default:
		return fmt.Errorf("cmp takes one or two export files, got %d", len(args))
	}
}

// cmpExports compares two export files document-for-document.
func cmpExports(ctx context.Context, cmd *cli.Command, pathA, pathB string) error {
	format := input.Format(cmd.String("format"))

	srcA, err := input.Read(pathA, format)
	if err != nil {
		return err
	}
	srcB, err := input.Read(pathB, format)
	if err != nil {
		return err
	}

	docA, err := differ.WrapRecords(srcA.Records)
	if err != nil {
		return err
	}
	docB, err := differ.WrapRecords(srcB.Records)
	if err != nil {
		return err
	}

	return differ.Compare(ctx, cmd, [][]byte{docA, docB})
}

// cmpRecords lets the user pick two records of a single export and compares
// them.
func cmpRecords(ctx context.Context, cmd *cli.Command, path string) error {
	src, err := input.Read(path, input.Format(cmd.String("format")))
	if err != nil {
		return err
	}

	picked := differ.SelectRecords(src.Records, cmd.String("column"))
	if len(picked) != 2 {
		log.Infof("cmp needs exactly two records selected, got %d", len(picked))
		return nil
	}

	docA, err := json.Marshal(picked[0])
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	docB, err := json.Marshal(picked[1])
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	return differ.Compare(ctx, cmd, [][]byte{docA, docB})
}

// cmpCommandBuilder constructs the "cmp" subcommand.
func cmpCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "cmp",
		Usage:     "compare two exports, or two records of one export",
		UsageText: "fmdiff cmp <export-file> [export-file]",
		Metadata:  map[string]any{"meta": m},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "color",
				Aliases: []string{"c"},
				Usage:   "enable colored diff output",
				Value:   false,
			},
			NewColumnFlag("cmp", m.Config.Source),
			&cli.StringFlag{
				Name:   "diff-filter",
				Usage:  "comma-separated list of keys to drop from the diff",
				Hidden: true,
			},
			NewFormatFlag(),
			tldrFlag,
		},
		Action: cmpCommandAction,
	}
}
