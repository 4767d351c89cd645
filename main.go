// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fmdiff/fmdiff/internal/command"
	"github.com/fmdiff/fmdiff/internal/config"
	"github.com/fmdiff/fmdiff/internal/log"
	"github.com/fmdiff/fmdiff/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip argument processing and let the CLI
	// handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processSetOnly(args)
		log.Debugf("args after set processing: args=%v", args)

		args = deduplicateFlags(args)
		log.Debugf("args after dedup: args=%v", args)
	}

	return initAndRunApp(args)
}

// processSetOnly handles the @set logic for all commands, expanding set
// arguments at the @set position.
func processSetOnly(args []string) []string {
	// Look for an explicit @set argument starting from index 2.
	idx := 2
	set := "defaults"
	removeIdx := -1
	for i, a := range args[idx:] {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			removeIdx = idx + i
			break
		}
	}
	if removeIdx != -1 {
		// Remove the @set argument.
		args = append(args[:removeIdx], args[removeIdx+1:]...)
		// Expand the set arguments at the removeIdx position.
		setArgs, _ := config.GetStringSlice(args[1] + "." + set)
		for _, arg := range setArgs {
			parts := strings.Fields(arg)
			args = append(args[:removeIdx], append(parts, args[removeIdx:]...)...)
			removeIdx += len(parts)
		}
	}
	return args
}

// deduplicateFlags removes repeated occurrences of the same flag, keeping the
// last one. @set expansion can inject a flag the user also passed explicitly,
// and the explicit (later) occurrence wins.
func deduplicateFlags(args []string) []string {
	type occurrence struct {
		start int
		count int
	}

	flagName := func(a string) string {
		name := strings.TrimLeft(a, "-")
		if eq := strings.Index(name, "="); eq != -1 {
			name = name[:eq]
		}
		return name
	}

	// A flag consumes the following arg as its value unless it uses the
	// --flag=value form or the next arg is itself a flag.
	span := func(i int) int {
		if !strings.Contains(args[i], "=") && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			return 2
		}
		return 1
	}

	// Map flag name to its last occurrence.
	last := make(map[string]occurrence)
	for i := 2; i < len(args); i++ {
		if !strings.HasPrefix(args[i], "-") {
			continue
		}
		n := span(i)
		last[flagName(args[i])] = occurrence{start: i, count: n}
		i += n - 1
	}

	result := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		if i < 2 || !strings.HasPrefix(a, "-") {
			result = append(result, a)
			continue
		}

		n := span(i)
		if last[flagName(a)].start == i {
			result = append(result, args[i:i+n]...)
		}
		i += n - 1
	}

	return result
}
