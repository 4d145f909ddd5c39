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

// Package goast lowers Go syntax trees into [syntax.Node] trees.
//
// Go has a single loop keyword; its forms map to the loop kinds as follows:
//
//	for i := 0; i < n; i++ { }  // syntax.ForLoop
//	for cond { }                 // syntax.WhileLoop
//	for { }                      // syntax.WhileLoop
//	for k, v := range m { }      // syntax.ForEachLoop
package goast

import (
	"fmt"
	"go/ast"
	"go/token"

	"fillmore-labs.com/loopnest/internal/syntax"
)

// KindOf classifies a Go AST node.
func KindOf(n ast.Node) syntax.Kind {
	switch n := n.(type) {
	case *ast.ForStmt:
		if n.Init == nil && n.Post == nil {
			return syntax.WhileLoop
		}

		return syntax.ForLoop

	case *ast.RangeStmt:
		return syntax.ForEachLoop

	default:
		return syntax.Other
	}
}

// Lower converts the subtree rooted at root. All positions must lie in handle.
func Lower(handle *token.File, root ast.Node) syntax.Node {
	if root == nil {
		return nil
	}

	type frame struct {
		node     ast.Node
		children []syntax.Node
	}

	var (
		stack  []*frame
		result syntax.Node
	)

	ast.Inspect(root, func(n ast.Node) bool {
		if n != nil {
			stack = append(stack, &frame{node: n})

			return true
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		lowered := build(handle, top.node, top.children)
		if len(stack) == 0 {
			result = lowered
		} else {
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, lowered)
		}

		return true
	})

	return result
}

func build(handle *token.File, n ast.Node, children []syntax.Node) syntax.Node {
	span := SpanOf(handle, n)

	if kind := KindOf(n); kind.IsLoop() {
		return syntax.NewLoop(kind, span, children...)
	}

	return syntax.NewOther(fmt.Sprintf("%T", n), span, children...)
}

// SpanOf returns the source span of n, ignoring line directives.
func SpanOf(handle *token.File, n ast.Node) syntax.Span {
	pos, end := n.Pos(), n.End()
	if !pos.IsValid() {
		return syntax.Span{}
	}

	start := handle.PositionFor(pos, false)

	span := syntax.Span{
		Line:   start.Line,
		Column: start.Column,
		Offset: start.Offset,
		End:    start.Offset,
	}

	if end.IsValid() {
		span.End = handle.Offset(end)
	}

	return span
}
