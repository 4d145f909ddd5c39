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

import "fillmore-labs.com/loopnest/internal/syntax"

// Walk returns the findings of a single unit in document order.
//
// The depth is passed down the recursion, so Walk keeps no state between
// calls and may run concurrently on different units. A nil root is a
// programming error and panics.
func Walk(unit syntax.Unit, opts Options) []Finding {
	if unit.Root == nil {
		panic("nesting: nil syntax tree for " + unit.File)
	}

	w := walker{file: unit.File, opts: opts}
	w.visit(unit.Root, 0)

	return w.findings
}

type walker struct {
	file     string
	opts     Options
	findings []Finding
}

func (w *walker) visit(n syntax.Node, depth int) {
	if k := n.Kind(); k.IsLoop() && w.opts.Kinds.Enabled(k.Flag()) {
		depth++
		if depth > w.opts.Threshold {
			w.report(n, depth)
		}
	}

	for _, c := range n.Children() {
		w.visit(c, depth)
	}
}

func (w *walker) report(n syntax.Node, depth int) {
	span := n.Span()
	w.findings = append(w.findings, Finding{
		Depth:  depth,
		Line:   span.Line,
		File:   w.file,
		Column: span.Column,
		Kind:   n.Kind(),
		Offset: span.Offset,
		End:    span.End,
	})
}

// MaxDepth returns the deepest loop nesting in the tree rooted at n.
func MaxDepth(n syntax.Node, opts Options) int {
	if n == nil {
		return 0
	}

	self := 0
	if k := n.Kind(); k.IsLoop() && opts.Kinds.Enabled(k.Flag()) {
		self = 1
	}

	deepest := 0
	for _, c := range n.Children() {
		deepest = max(deepest, MaxDepth(c, opts))
	}

	return self + deepest
}
