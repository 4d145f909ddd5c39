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

// Package treesitter lowers tree-sitter parse trees of non-Go sources into [syntax.Node] trees.
//
// Each supported [Language] carries a table of the tree-sitter node types
// that are loops. do-while forms are not loop kinds and stay transparent.
package treesitter

import (
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"fillmore-labs.com/loopnest/internal/syntax"
)

// Language is a tree-sitter grammar together with its loop node types.
type Language struct {
	Name  string
	loops map[string]syntax.Kind
	load  func() *sitter.Language
}

// LoopKind returns the loop kind of a tree-sitter node type, [syntax.Other] if it is no loop.
func (l *Language) LoopKind(nodeType string) syntax.Kind {
	return l.loops[nodeType] // zero value is syntax.Other
}

var (
	// CSharp is the C# grammar.
	CSharp = &Language{
		Name: "csharp",
		loops: map[string]syntax.Kind{
			"for_statement":     syntax.ForLoop,
			"while_statement":   syntax.WhileLoop,
			"foreach_statement": syntax.ForEachLoop,
		},
		load: csharp.GetLanguage,
	}

	// Java is the Java grammar.
	Java = &Language{
		Name: "java",
		loops: map[string]syntax.Kind{
			"for_statement":          syntax.ForLoop,
			"while_statement":        syntax.WhileLoop,
			"enhanced_for_statement": syntax.ForEachLoop,
		},
		load: java.GetLanguage,
	}

	// JavaScript is the JavaScript grammar.
	JavaScript = &Language{
		Name:  "javascript",
		loops: ecmaLoops,
		load:  javascript.GetLanguage,
	}

	// TypeScript is the TypeScript grammar.
	TypeScript = &Language{
		Name:  "typescript",
		loops: ecmaLoops,
		load:  typescript.GetLanguage,
	}

	// Python is the Python grammar. Python's for statement always iterates.
	Python = &Language{
		Name: "python",
		loops: map[string]syntax.Kind{
			"for_statement":   syntax.ForEachLoop,
			"while_statement": syntax.WhileLoop,
		},
		load: python.GetLanguage,
	}
)

// for_in_statement covers for-in and for-of.
var ecmaLoops = map[string]syntax.Kind{
	"for_statement":    syntax.ForLoop,
	"while_statement":  syntax.WhileLoop,
	"for_in_statement": syntax.ForEachLoop,
}

var extensions = map[string]*Language{
	".cs":   CSharp,
	".java": Java,
	".js":   JavaScript,
	".jsx":  JavaScript,
	".mjs":  JavaScript,
	".cjs":  JavaScript,
	".ts":   TypeScript,
	".mts":  TypeScript,
	".cts":  TypeScript,
	".py":   Python,
}

// ForFile returns the language of a source file by its extension.
func ForFile(path string) (*Language, bool) {
	lang, ok := extensions[strings.ToLower(filepath.Ext(path))]

	return lang, ok
}
