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

// Package batch runs the loop nesting walker over every file of a project.
package batch

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/trace"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/loopnest/internal/nesting"
	"fillmore-labs.com/loopnest/internal/syntax"
)

// Source enumerates and parses the files of a project.
type Source interface {
	Files() []string
	Parse(ctx context.Context, file string) (syntax.Unit, error)
}

// Sink receives the results of a run, in file order.
type Sink interface {
	// Findings is called for each file with at least one finding.
	Findings(file string, findings []nesting.Finding) error

	// ParseError is called for each file that could not be parsed.
	ParseError(file string, err error) error
}

// Driver analyzes the files of a [Source].
type Driver struct {
	// Jobs limits the number of files analyzed concurrently, GOMAXPROCS when not positive.
	Jobs int

	// Options configure the walker.
	Options nesting.Options

	// Logger receives progress and parse failures, nil discards them.
	Logger *slog.Logger
}

// Stats summarize a run.
type Stats struct {
	Files    int // files enumerated
	Parsed   int // files parsed and walked
	Failed   int // files that failed to parse
	Reported int // files with findings
	Findings int // total findings
}

// LogValue implements [slog.LogValuer].
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("files", s.Files),
		slog.Int("parsed", s.Parsed),
		slog.Int("failed", s.Failed),
		slog.Int("reported", s.Reported),
		slog.Int("findings", s.Findings),
	)
}

type result struct {
	findings []nesting.Finding
	err      error
}

// Run walks every file of src and forwards results to sink in file order.
//
// Files are parsed and walked concurrently; each walk is independent.
// A sink error or a canceled context stops the run, results already
// delivered to the sink stay valid.
func (d Driver) Run(ctx context.Context, src Source, sink Sink) (Stats, error) {
	ctx, task := trace.NewTask(ctx, "LoopNest")
	defer task.End()

	logger := d.logger()
	files := src.Files()

	stats := Stats{Files: len(files)}
	if len(files) == 0 {
		return stats, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]result, len(files))
	ready := make([]chan struct{}, len(files))

	for i := range ready {
		ready[i] = make(chan struct{})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(d.jobs(), len(files)))

	launched := make(chan struct{})

	go func() {
		defer close(launched)

		for i, file := range files {
			g.Go(func() error {
				defer close(ready[i])

				if err := gctx.Err(); err != nil {
					return err
				}

				results[i] = d.analyze(gctx, src, file)

				return nil
			})
		}
	}()

	err := d.emit(ctx, files, results, ready, sink, &stats)

	cancel()
	<-launched
	_ = g.Wait() // only context errors, already reported by emit

	logger.LogAttrs(ctx, slog.LevelDebug, "Run complete", slog.Any("stats", stats))

	return stats, err
}

func (d Driver) emit(ctx context.Context, files []string, results []result, ready []chan struct{}, sink Sink, stats *Stats) error {
	logger := d.logger()

	for i, file := range files {
		select {
		case <-ready[i]:
		case <-ctx.Done():
		}

		// Workers skip files once the context is canceled.
		if err := ctx.Err(); err != nil {
			return err
		}

		r := results[i]

		switch {
		case r.err != nil:
			stats.Failed++

			logger.LogAttrs(ctx, slog.LevelWarn, "Parse failed", slog.String("file", file), slog.Any("error", r.err))

			if err := sink.ParseError(file, r.err); err != nil {
				return err
			}

		case len(r.findings) > 0:
			stats.Parsed++
			stats.Reported++
			stats.Findings += len(r.findings)

			if err := sink.Findings(file, r.findings); err != nil {
				return err
			}

		default:
			stats.Parsed++
		}
	}

	return nil
}

func (d Driver) analyze(ctx context.Context, src Source, file string) result {
	defer trace.StartRegion(ctx, "Analyze").End()

	unit, err := src.Parse(ctx, file)
	if err != nil {
		return result{err: err}
	}

	findings := nesting.Walk(unit, d.Options)

	if logger := d.logger(); logger.Enabled(ctx, slog.LevelDebug) {
		logger.LogAttrs(ctx, slog.LevelDebug, "File analyzed",
			slog.String("file", file),
			slog.Int("findings", len(findings)),
			slog.Int("maxDepth", nesting.MaxDepth(unit.Root, d.Options)))
	}

	return result{findings: findings}
}

func (d Driver) jobs() int {
	if d.Jobs > 0 {
		return d.Jobs
	}

	return runtime.GOMAXPROCS(0)
}

func (d Driver) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return d.Logger
}
