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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/loopnest/internal/astutil"
	"fillmore-labs.com/loopnest/internal/config"
	"fillmore-labs.com/loopnest/internal/goast"
	"fillmore-labs.com/loopnest/internal/nesting"
	"fillmore-labs.com/loopnest/internal/syntax"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the loopnest analyzer on all files of a package.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("loopnest: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "LoopNest")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	walker := r.Walker()

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if file.Doc != nil && astutil.CommentHasNoLint(file.Doc.List[len(file.Doc.List)-1]) {
			continue
		}

		checkFile(ctx, p, currentFile, walker)
	}

	return nil, nil
}

func checkFile(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, walker nesting.Options) {
	defer trace.StartRegion(ctx, "CheckFile").End()

	file, handle := currentFile.File(), currentFile.Handle()

	unit := syntax.Unit{File: currentFile.Name(), Root: goast.Lower(handle, file)}
	skipped := noLintFuncs(file)

	for _, finding := range nesting.Walk(unit, walker) {
		pos, end := handle.Pos(finding.Offset), handle.Pos(finding.End)

		if skipped.contains(pos) || currentFile.NoLintComment(pos) {
			continue
		}

		p.Report(analysis.Diagnostic{
			Pos:     pos,
			End:     end,
			Message: fmt.Sprintf("Loop nesting depth %d exceeds maximum %d (ln:%s)", finding.Depth, walker.Threshold, finding.Kind),
		})
	}
}

// ranges are source ranges excluded from reporting.
type ranges []ast.Node

func (r ranges) contains(pos token.Pos) bool {
	for _, n := range r {
		if n.Pos() <= pos && pos < n.End() {
			return true
		}
	}

	return false
}

// noLintFuncs returns the function declarations documented with a nolint comment.
func noLintFuncs(file *ast.File) ranges {
	var skipped ranges

	for _, decl := range file.Decls {
		fun, ok := decl.(*ast.FuncDecl)
		if !ok || fun.Doc == nil {
			continue
		}

		if astutil.CommentHasNoLint(fun.Doc.List[len(fun.Doc.List)-1]) {
			skipped = append(skipped, fun)
		}
	}

	return skipped
}
