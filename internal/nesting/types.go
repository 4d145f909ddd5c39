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

package nesting

import (
	"log/slog"

	"fillmore-labs.com/loopnest/internal/config"
	"fillmore-labs.com/loopnest/internal/syntax"
)

// Finding is a loop entered at a nesting depth above the threshold.
type Finding struct {
	// Depth is the number of enclosing loops including this one.
	Depth int
	// Line is the 1-based start line of the loop.
	Line int
	// File identifies the analyzed file.
	File string

	// Column is the 1-based start column of the loop, in bytes.
	Column int
	// Kind is the loop kind.
	Kind syntax.Kind
	// Offset and End are the byte range of the loop.
	Offset, End int
}

// LogValue implements [slog.LogValuer].
func (f Finding) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("depth", f.Depth),
		slog.Int("line", f.Line),
		slog.String("kind", f.Kind.String()),
	)
}

// Options configure the walker.
type Options struct {
	// Threshold is the deepest tolerated nesting; loops entered deeper are reported.
	Threshold int

	// Kinds are the loop kinds that count towards the nesting depth.
	Kinds config.LoopKinds
}

// DefaultOptions reports every for, while and for-each loop nested more than two deep.
func DefaultOptions() Options {
	return Options{
		Threshold: config.DefaultThreshold,
		Kinds:     config.DefaultLoopKinds(),
	}
}

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("threshold", o.Threshold),
		slog.Bool("for", o.Kinds.Enabled(config.ForLoops)),
		slog.Bool("while", o.Kinds.Enabled(config.WhileLoops)),
		slog.Bool("foreach", o.Kinds.Enabled(config.ForEachLoops)),
	)
}
