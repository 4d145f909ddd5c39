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

package report

import (
	"io"

	"github.com/fatih/color"

	"fillmore-labs.com/loopnest/internal/nesting"
)

// Text writes the console layout:
//
//	File: path/to/File.cs
//	  Nested Loop Depth: 3, Line: 42
type Text struct {
	out, err io.Writer

	file, depth, failure *color.Color
}

// NewText creates a text [Sink].
func NewText(opts Options) *Text {
	t := &Text{
		out:     opts.Out,
		err:     opts.Err,
		file:    color.New(color.Bold),
		depth:   color.New(color.FgYellow),
		failure: color.New(color.FgRed),
	}

	if t.err == nil {
		t.err = io.Discard
	}

	for _, c := range [...]*color.Color{t.file, t.depth, t.failure} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return t
}

// Findings implements [Sink].
func (t *Text) Findings(file string, findings []nesting.Finding) error {
	if _, err := t.file.Fprintf(t.out, "File: %s\n", file); err != nil {
		return err
	}

	for _, f := range findings {
		if _, err := t.depth.Fprintf(t.out, "  Nested Loop Depth: %d, Line: %d\n", f.Depth, f.Line); err != nil {
			return err
		}
	}

	return nil
}

// ParseError implements [Sink].
func (t *Text) ParseError(file string, err error) error {
	_, werr := t.failure.Fprintf(t.err, "Parse failed: %s: %v\n", file, err)

	return werr
}

// Close implements [Sink].
func (*Text) Close() error { return nil }
