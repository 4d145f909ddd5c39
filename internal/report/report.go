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

// Package report presents loop nesting findings.
package report

import (
	"fmt"
	"io"

	"fillmore-labs.com/loopnest/internal/level"
	"fillmore-labs.com/loopnest/internal/nesting"
)

// Sink receives findings per file and writes them in a report format.
type Sink interface {
	Findings(file string, findings []nesting.Finding) error
	ParseError(file string, err error) error

	// Close flushes the report.
	Close() error
}

// Options configure a [Sink].
type Options struct {
	// Out receives the report.
	Out io.Writer

	// Err receives parse failures in text reports.
	Err io.Writer

	// Color enables colorized text output.
	Color bool

	// Threshold is recorded in structured reports.
	Threshold int
}

// New creates a [Sink] for the given format.
func New(format level.Format, opts Options) (Sink, error) {
	switch format {
	case level.FormatText:
		return NewText(opts), nil

	case level.FormatJSON:
		return NewJSON(opts), nil

	default:
		return nil, fmt.Errorf("unknown report format %d", format)
	}
}
