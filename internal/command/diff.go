// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
	yaml "gopkg.in/yaml.v2"

	"github.com/fmdiff/fmdiff/internal/changelog"
	"github.com/fmdiff/fmdiff/internal/config"
	"github.com/fmdiff/fmdiff/internal/meta"
)

// diffCommandAction is the action handler for the "diff" subcommand. It reads
// a single change-log text from the positional args, a file or stdin, extracts
// the membership change clause and reports the removed and added members.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "diff") {
		return nil
	}

	config.Config.Namespace = "diff"

	raw, err := diffInput(cmd)
	if err != nil {
		return err
	}

	oldText, newText, found := changelog.ExtractChangeClause(raw)
	if !found {
		fmt.Fprintln(os.Stdout, "No membership change clause found.")
		return nil
	}

	result := changelog.Diff(oldText, newText)

	switch cmd.String("output") {
	case "json", "raw":
		doc, err := json.Marshal(diffDoc(result))
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(doc))
	case "yaml":
		doc, err := yaml.Marshal(diffDoc(result))
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Fprint(os.Stdout, string(doc))
	default:
		fmt.Fprintln(os.Stdout, result.Report())
	}

	return nil
}

// diffInput resolves the change-log text: --file wins, then positional args
// joined with spaces, then stdin.
func diffInput(cmd *cli.Command) (string, error) {
	if path := cmd.String("file"); path != "" && path != "-" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}

	if args := cmd.Args().Slice(); len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// diffDoc shapes a diff result for structured output.
func diffDoc(result changelog.Result) map[string]interface{} {
	return map[string]interface{}{
		"removed":   result.Removed.Sorted(),
		"added":     result.Added.Sorted(),
		"unchanged": result.Unchanged.Sorted(),
		"summary":   result.Summary(),
	}
}

// diffCommandBuilder constructs the "diff" subcommand.
func diffCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "diff a single change-log text",
		UsageText: "fmdiff diff [change-log text]",
		Metadata:  map[string]any{"meta": m},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "file",
				Usage: "read the change-log text from a file ('-' for stdin)",
			},
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
		Action: diffCommandAction,
	}
}
