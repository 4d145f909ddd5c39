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

package treesitter

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/loopnest/internal/syntax"
)

// ErrSyntax is returned for sources that do not parse cleanly.
var ErrSyntax = errors.New("syntax error")

// Parser parses sources of all supported languages.
// A Parser is not safe for concurrent use.
type Parser struct {
	parsers map[*Language]*sitter.Parser
}

// NewParser creates a [Parser]. Call [Parser.Close] to release the native parsers.
func NewParser() *Parser {
	return &Parser{parsers: make(map[*Language]*sitter.Parser)}
}

// Close releases all native parsers.
func (p *Parser) Close() {
	for lang, parser := range p.parsers {
		parser.Close()
		delete(p.parsers, lang)
	}
}

// Parse parses src and lowers it into a [syntax.Unit] for file.
func (p *Parser) Parse(ctx context.Context, lang *Language, file string, src []byte) (syntax.Unit, error) {
	parser, ok := p.parsers[lang]
	if !ok {
		parser = sitter.NewParser()
		parser.SetLanguage(lang.load())
		p.parsers[lang] = parser
	}

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return syntax.Unit{}, fmt.Errorf("%s: %w", file, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		pos := firstError(root).StartPoint()

		return syntax.Unit{}, fmt.Errorf("%s:%d:%d: %w", file, pos.Row+1, pos.Column+1, ErrSyntax)
	}

	return syntax.Unit{File: file, Root: lower(lang, root)}, nil
}

// lower converts the named nodes of a tree-sitter tree. Anonymous nodes are tokens and can't contain loops.
func lower(lang *Language, n *sitter.Node) syntax.Node {
	count := int(n.NamedChildCount())

	children := make([]syntax.Node, 0, count)
	for i := range count {
		if c := n.NamedChild(i); c != nil {
			children = append(children, lower(lang, c))
		}
	}

	start := n.StartPoint()
	span := syntax.Span{
		Line:   int(start.Row) + 1,
		Column: int(start.Column) + 1,
		Offset: int(n.StartByte()),
		End:    int(n.EndByte()),
	}

	nodeType := n.Type()
	if kind := lang.LoopKind(nodeType); kind.IsLoop() {
		return syntax.NewLoop(kind, span, children...)
	}

	return syntax.NewOther(nodeType, span, children...)
}

// firstError returns the first erroneous or missing node in document order.
func firstError(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}

	for i := range int(n.ChildCount()) {
		if c := n.Child(i); c != nil && c.HasError() {
			return firstError(c)
		}
	}

	return n
}
