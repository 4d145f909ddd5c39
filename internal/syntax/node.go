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

package syntax

// Span is the source range of a [Node].
type Span struct {
	// Line and Column are 1-based and point at the first character of the node.
	Line, Column int

	// Offset and End are byte offsets into the file, End is exclusive.
	Offset, End int
}

// Node is a syntax tree node. The set of implementations is closed: [*Loop] and [*Block].
type Node interface {
	Kind() Kind
	Span() Span
	Children() []Node

	sealed()
}

// Loop is a loop construct.
type Loop struct {
	kind     Kind
	span     Span
	children []Node
}

// NewLoop creates a loop node. It panics when kind is not a loop kind.
func NewLoop(kind Kind, span Span, children ...Node) *Loop {
	if !kind.IsLoop() {
		panic("syntax: " + kind.String() + " is not a loop kind")
	}

	return &Loop{kind: kind, span: span, children: children}
}

func (l *Loop) Kind() Kind       { return l.kind }
func (l *Loop) Span() Span       { return l.span }
func (l *Loop) Children() []Node { return l.children }
func (*Loop) sealed()            {}

// Block is any construct that is not a loop: declarations, conditionals, function literals.
type Block struct {
	// Label names the construct in the source language, for debugging only.
	Label string

	span     Span
	children []Node
}

// NewOther creates a non-loop node.
func NewOther(label string, span Span, children ...Node) *Block {
	return &Block{Label: label, span: span, children: children}
}

func (*Block) Kind() Kind         { return Other }
func (b *Block) Span() Span       { return b.span }
func (b *Block) Children() []Node { return b.children }
func (*Block) sealed()            {}

// Unit is one source file's tree with its file identifier.
type Unit struct {
	File string
	Root Node
}

// Size returns the number of nodes in the tree rooted at n.
func Size(n Node) int {
	if n == nil {
		return 0
	}

	size := 1
	for _, c := range n.Children() {
		size += Size(c)
	}

	return size
}
