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

// Package workspace discovers the source files of a project and parses them.
//
// [Open] accepts a Visual Studio solution, a C# project, a Go module or a
// plain directory. The returned [Workspace] owns native parser resources and
// must be closed after all files are processed.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"fillmore-labs.com/loopnest/internal/goast"
	"fillmore-labs.com/loopnest/internal/syntax"
	"fillmore-labs.com/loopnest/internal/treesitter"
)

var (
	// ErrUnsupported is returned for project paths and files of unknown type.
	ErrUnsupported = errors.New("unsupported project type")

	// ErrClosed is returned when parsing with a closed [Workspace].
	ErrClosed = errors.New("workspace closed")
)

// Options configure project discovery.
type Options struct {
	// Tests includes Go test files.
	Tests bool

	// Logger receives discovery diagnostics, nil discards them.
	Logger *slog.Logger
}

// Workspace is an opened project.
type Workspace struct {
	path  string
	files []string
	tests bool
	pool  parserPool
}

// Open discovers the source files of the project at path.
// Errors identify the project path and are fatal for the whole run.
func Open(ctx context.Context, path string, opts Options) (*Workspace, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	files, err := discover(ctx, path, opts, logger)
	if err != nil {
		return nil, fmt.Errorf("open project %q: %w", path, err)
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "Project opened", slog.String("path", path), slog.Int("files", len(files)))

	return &Workspace{path: path, files: files, tests: opts.Tests}, nil
}

func discover(ctx context.Context, path string, opts Options, logger *slog.Logger) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if info.IsDir() {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return goFiles(ctx, path, opts.Tests, logger)
		}

		return walkDir(ctx, path, opts.Tests)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); {
	case ext == ".sln":
		return solutionFiles(ctx, path, logger)

	case ext == ".csproj":
		return projectFiles(ctx, path)

	case filepath.Base(path) == "go.mod":
		return goFiles(ctx, filepath.Dir(path), opts.Tests, logger)

	case Supported(path):
		return []string{path}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, ext)
	}
}

// Supported reports whether a source file can be parsed.
func Supported(path string) bool {
	if filepath.Ext(path) == ".go" {
		return true
	}

	_, ok := treesitter.ForFile(path)

	return ok
}

// Path returns the project path given to [Open].
func (w *Workspace) Path() string {
	return w.path
}

// Files returns the discovered source files in project order.
func (w *Workspace) Files() []string {
	return slices.Clone(w.files)
}

// Parse reads and parses a source file. Parse is safe for concurrent use.
func (w *Workspace) Parse(ctx context.Context, file string) (syntax.Unit, error) {
	if w.pool.isClosed() {
		return syntax.Unit{}, ErrClosed
	}

	src, err := os.ReadFile(file)
	if err != nil {
		return syntax.Unit{}, err
	}

	if filepath.Ext(file) == ".go" {
		return parseGo(file, src)
	}

	lang, ok := treesitter.ForFile(file)
	if !ok {
		return syntax.Unit{}, fmt.Errorf("%s: %w", file, ErrUnsupported)
	}

	p, err := w.pool.get()
	if err != nil {
		return syntax.Unit{}, err
	}
	defer w.pool.put(p)

	return p.Parse(ctx, lang, file, src)
}

// Close releases the native parsers. Close is idempotent and must not be
// called while a [Workspace.Parse] is in progress.
func (w *Workspace) Close() error {
	w.pool.close()

	return nil
}

func parseGo(file string, src []byte) (syntax.Unit, error) {
	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, file, src, parser.SkipObjectResolution)
	if err != nil {
		return syntax.Unit{}, err
	}

	handle := fset.File(f.FileStart)

	return syntax.Unit{File: file, Root: goast.Lower(handle, f)}, nil
}
