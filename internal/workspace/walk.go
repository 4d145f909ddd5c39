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

package workspace

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
)

// skipDirs are never descended into.
var skipDirs = map[string]bool{
	".git":         true,
	"bin":          true,
	"obj":          true,
	"node_modules": true,
	"vendor":       true,
	"testdata":     true,
}

// walkDir lists every supported source file below root in lexical order.
func walkDir(ctx context.Context, root string, tests bool) ([]string, error) {
	return walkFiltered(ctx, root, func(path string) bool { return sourceFile(path, tests) })
}

// sourceFile reports whether path is a supported source, Go test files only when tests is set.
func sourceFile(path string, tests bool) bool {
	if !tests && strings.HasSuffix(path, "_test.go") {
		return false
	}

	return Supported(path)
}

func walkFiltered(ctx context.Context, root string, keep func(path string) bool) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && (skipDirs[d.Name()] || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}

			return nil
		}

		if d.Type().IsRegular() && keep(path) {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

// dedupe removes repeated entries, keeping the first occurrence.
func dedupe(files []string) []string {
	seen := make(map[string]struct{}, len(files))
	result := files[:0]

	for _, file := range files {
		if _, ok := seen[file]; ok {
			continue
		}

		seen[file] = struct{}{}
		result = append(result, file)
	}

	return result
}
