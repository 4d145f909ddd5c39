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
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"
)

// goFiles lists the Go sources of all packages in the module rooted at dir.
func goFiles(ctx context.Context, dir string, tests bool, logger *slog.Logger) ([]string, error) {
	cfg := &packages.Config{
		Context: ctx,
		Dir:     dir,
		Mode:    packages.NeedName | packages.NeedFiles,
		Tests:   tests,
	}

	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(pkgs, func(a, b *packages.Package) int { return strings.Compare(a.ID, b.ID) })

	var files []string

	for _, pkg := range pkgs {
		// The synthesized test main lives in the build cache.
		if strings.HasSuffix(pkg.ID, ".test") {
			continue
		}

		for _, e := range pkg.Errors {
			logger.LogAttrs(ctx, slog.LevelWarn, "Package error", slog.String("package", pkg.ID), slog.String("error", e.Error()))
		}

		files = append(files, pkg.GoFiles...)
	}

	return dedupe(files), nil
}
