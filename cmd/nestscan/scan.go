// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"fillmore-labs.com/loopnest/internal/batch"
	"fillmore-labs.com/loopnest/internal/config"
	"fillmore-labs.com/loopnest/internal/level"
	"fillmore-labs.com/loopnest/internal/nesting"
	"fillmore-labs.com/loopnest/internal/report"
	"fillmore-labs.com/loopnest/internal/workspace"
)

type scanFlags struct {
	config    string
	threshold int
	jobs      int
	format    level.Format
	color     level.Color
	loops     []string
	tests     bool
	verbose   bool
	watch     bool
}

func newScanCmd() *cobra.Command {
	var f scanFlags

	cmd := &cobra.Command{
		Use:   "scan <solution|project|directory>",
		Short: "Report loops nested deeper than the threshold",
		Long: `Scan opens a Visual Studio solution (.sln), a C# project (.csproj), a Go module
or a directory and prints every loop nested deeper than the threshold.

The exit status is 1 when nested loops were found and 2 on errors.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(f.config)
			if err != nil {
				return err
			}

			f.merge(cmd, s)

			return scan(cmd.Context(), args[0], f, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.config, "config", "", "configuration file (default "+defaultConfig+" if present)")
	flags.IntVar(&f.threshold, "threshold", config.DefaultThreshold, "maximum tolerated loop nesting depth")
	flags.IntVarP(&f.jobs, "jobs", "j", 0, "files analyzed in parallel (default GOMAXPROCS)")
	flags.Var(&f.format, "format", "report format: text or json")
	flags.Var(&f.color, "color", "colorize output: auto, on or off")
	flags.StringSliceVar(&f.loops, "loops", []string{"for", "while", "foreach"}, "loop kinds counted towards the depth")
	flags.BoolVar(&f.tests, "tests", false, "include Go test files")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")
	flags.BoolVarP(&f.watch, "watch", "w", false, "re-scan changed files until interrupted")

	return cmd
}

// merge applies configuration file settings for flags not given on the command line.
func (f *scanFlags) merge(cmd *cobra.Command, s settings) {
	changed := cmd.Flags().Changed

	if !changed("threshold") && s.Threshold != nil {
		f.threshold = *s.Threshold
	}

	if !changed("jobs") && s.Jobs != 0 {
		f.jobs = s.Jobs
	}

	if !changed("format") {
		f.format = s.Format
	}

	if !changed("color") {
		f.color = s.Color
	}

	if !changed("loops") && len(s.Loops) > 0 {
		f.loops = s.Loops
	}

	if !changed("tests") {
		f.tests = s.Tests
	}
}

func scan(ctx context.Context, path string, f scanFlags, stdout, stderr io.Writer) error {
	kinds, err := parseLoops(f.loops)
	if err != nil {
		return err
	}

	logLevel := slog.LevelWarn
	if f.verbose {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	opts := nesting.Options{Threshold: f.threshold, Kinds: kinds}

	logger.LogAttrs(ctx, slog.LevelDebug, "Scanning", slog.String("path", path), slog.Any("options", opts))

	ws, err := workspace.Open(ctx, path, workspace.Options{Tests: f.tests, Logger: logger})
	if err != nil {
		return err
	}
	defer ws.Close()

	color := f.color.Enabled(isTerminal(stdout))

	sink, err := report.New(f.format, report.Options{Out: stdout, Err: stderr, Color: color, Threshold: f.threshold})
	if err != nil {
		return err
	}

	driver := batch.Driver{Jobs: f.jobs, Options: opts, Logger: logger}

	stats, err := driver.Run(ctx, ws, sink)
	if err != nil {
		return err
	}

	if err := sink.Close(); err != nil {
		return err
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Scan complete", slog.Any("stats", stats))

	if f.watch {
		return watch(ctx, ws, opts, report.NewText(report.Options{Out: stdout, Err: stderr, Color: color}), logger)
	}

	if stats.Findings > 0 {
		return fmt.Errorf("%d in %d files: %w", stats.Findings, stats.Reported, errFindings)
	}

	return nil
}

// watch reports the findings of each changed file until ctx is done.
func watch(ctx context.Context, ws *workspace.Workspace, opts nesting.Options, sink report.Sink, logger *slog.Logger) error {
	logger.LogAttrs(ctx, slog.LevelInfo, "Watching for changes", slog.String("path", ws.Path()))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var sinkErr error

	check := func(file string) error {
		unit, err := ws.Parse(ctx, file)
		if err != nil {
			return sink.ParseError(file, err)
		}

		if findings := nesting.Walk(unit, opts); len(findings) > 0 {
			return sink.Findings(file, findings)
		}

		logger.LogAttrs(ctx, slog.LevelDebug, "No nested loops", slog.String("file", file))

		return nil
	}

	err := ws.Watch(ctx, func(file string) {
		if sinkErr == nil {
			if sinkErr = check(file); sinkErr != nil {
				cancel()
			}
		}
	})
	if err != nil {
		return err
	}

	return sinkErr
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}
