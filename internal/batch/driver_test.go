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

package batch_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	. "fillmore-labs.com/loopnest/internal/batch"
	"fillmore-labs.com/loopnest/internal/nesting"
	"fillmore-labs.com/loopnest/internal/syntax"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var errBroken = errors.New("broken source")

// fakeSource serves prebuilt trees; files without a tree fail to parse.
type fakeSource struct {
	files []string
	trees map[string]syntax.Node
	delay func(file string) time.Duration
}

func (s fakeSource) Files() []string { return s.files }

func (s fakeSource) Parse(ctx context.Context, file string) (syntax.Unit, error) {
	if s.delay != nil {
		select {
		case <-time.After(s.delay(file)):
		case <-ctx.Done():
			return syntax.Unit{}, ctx.Err()
		}
	}

	root, ok := s.trees[file]
	if !ok {
		return syntax.Unit{}, fmt.Errorf("%s: %w", file, errBroken)
	}

	return syntax.Unit{File: file, Root: root}, nil
}

type entry struct {
	File     string
	Findings []nesting.Finding
	Failed   bool
}

type recordingSink struct {
	mu      sync.Mutex
	entries []entry
	failOn  string
}

func (r *recordingSink) Findings(file string, findings []nesting.Finding) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if file == r.failOn {
		return errSink
	}

	r.entries = append(r.entries, entry{File: file, Findings: findings})

	return nil
}

func (r *recordingSink) ParseError(file string, _ error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry{File: file, Failed: true})

	return nil
}

var errSink = errors.New("sink failed")

func nest(depth int) syntax.Node {
	var inner []syntax.Node
	for d := depth; d >= 1; d-- {
		inner = []syntax.Node{syntax.NewLoop(syntax.ForLoop, syntax.Span{Line: d}, inner...)}
	}

	return syntax.NewOther("file", syntax.Span{Line: 1}, inner...)
}

func source(depths ...int) fakeSource {
	src := fakeSource{trees: make(map[string]syntax.Node)}

	for i, depth := range depths {
		file := fmt.Sprintf("f%02d.cs", i)
		src.files = append(src.files, file)

		if depth >= 0 {
			src.trees[file] = nest(depth)
		}
	}

	return src
}

func TestRun(t *testing.T) {
	t.Parallel()

	// -1 is a file that fails to parse
	src := source(0, 3, 2, -1, 5, 1, 4)
	src.delay = func(file string) time.Duration {
		// later files finish first
		return time.Duration(len(src.files)-int(file[2]-'0')) * time.Millisecond
	}

	for _, jobs := range []int{1, 3, 0} {
		t.Run(fmt.Sprintf("Jobs%d", jobs), func(t *testing.T) {
			t.Parallel()

			var sink recordingSink

			d := Driver{Jobs: jobs, Options: nesting.DefaultOptions()}

			stats, err := d.Run(t.Context(), src, &sink)
			if err != nil {
				t.Fatalf("Run() failed: %v", err)
			}

			var want []entry
			for _, file := range src.files {
				root, ok := src.trees[file]
				if !ok {
					want = append(want, entry{File: file, Failed: true})

					continue
				}

				if findings := nesting.Walk(syntax.Unit{File: file, Root: root}, d.Options); len(findings) > 0 {
					want = append(want, entry{File: file, Findings: findings})
				}
			}

			if diff := cmp.Diff(want, sink.entries); diff != "" {
				t.Errorf("Sink mismatch (-want +got):\n%s", diff)
			}

			wantStats := Stats{Files: 7, Parsed: 6, Failed: 1, Reported: 3, Findings: 1 + 3 + 2}
			if stats != wantStats {
				t.Errorf("Stats = %+v, want %+v", stats, wantStats)
			}
		})
	}
}

func TestRunEmpty(t *testing.T) {
	t.Parallel()

	var sink recordingSink

	stats, err := Driver{}.Run(t.Context(), source(), &sink)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if stats != (Stats{}) || len(sink.entries) != 0 {
		t.Errorf("Got stats %+v and %d entries for empty source", stats, len(sink.entries))
	}
}

func TestRunSinkError(t *testing.T) {
	t.Parallel()

	src := source(3, 4, 5, 6)
	sink := recordingSink{failOn: "f01.cs"}

	_, err := Driver{Jobs: 2, Options: nesting.DefaultOptions()}.Run(t.Context(), src, &sink)
	if !errors.Is(err, errSink) {
		t.Fatalf("Run() error = %v, want %v", err, errSink)
	}

	if len(sink.entries) != 1 || sink.entries[0].File != "f00.cs" {
		t.Errorf("Got entries %+v, want only f00.cs", sink.entries)
	}
}

func TestRunCanceled(t *testing.T) {
	t.Parallel()

	src := source(3, 3, 3, 3, 3, 3)
	src.delay = func(string) time.Duration { return time.Hour }

	ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
	defer cancel()

	var sink recordingSink

	_, err := Driver{Jobs: 2}.Run(ctx, src, &sink)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run() error = %v, want %v", err, context.DeadlineExceeded)
	}

	if len(sink.entries) != 0 {
		t.Errorf("Got %d entries from canceled run", len(sink.entries))
	}
}
