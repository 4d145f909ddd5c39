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
	"bufio"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrMalformed is returned for solution or project files that can't be read.
var ErrMalformed = errors.New("malformed project descriptor")

// Project("{type-guid}") = "Name", "relative\path.csproj", "{project-guid}".
var projectLine = regexp.MustCompile(`^Project\("\{[^}]*\}"\)\s*=\s*"([^"]*)"\s*,\s*"([^"]*)"`)

// solutionFiles lists the sources of all C# projects in a solution, in solution order.
func solutionFiles(ctx context.Context, sln string, logger *slog.Logger) ([]string, error) {
	projects, err := solutionProjects(sln)
	if err != nil {
		return nil, err
	}

	var files []string

	for _, project := range projects {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		projectSources, err := projectFiles(ctx, project)
		if err != nil {
			return nil, err
		}

		logger.LogAttrs(ctx, slog.LevelDebug, "Project loaded", slog.String("project", project), slog.Int("files", len(projectSources)))

		files = append(files, projectSources...)
	}

	return dedupe(files), nil
}

func solutionProjects(sln string) ([]string, error) {
	f, err := os.Open(sln)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parseSolution(f, filepath.Dir(sln))
}

// parseSolution returns the paths of the C# projects referenced by a solution.
// Solution folders and projects of other languages are skipped.
func parseSolution(r io.Reader, dir string) ([]string, error) {
	var (
		projects []string
		header   bool
	)

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(strings.TrimPrefix(s.Text(), "\ufeff"))
		if strings.HasPrefix(line, "Microsoft Visual Studio Solution File") {
			header = true

			continue
		}

		m := projectLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		rel := strings.ReplaceAll(m[2], `\`, "/")
		if !strings.EqualFold(filepath.Ext(rel), ".csproj") {
			continue
		}

		projects = append(projects, filepath.Join(dir, filepath.FromSlash(rel)))
	}

	if err := s.Err(); err != nil {
		return nil, err
	}

	if !header {
		return nil, fmt.Errorf("%w: missing solution file header", ErrMalformed)
	}

	return projects, nil
}

// msbuildProject is the subset of an MSBuild project file needed to enumerate sources.
type msbuildProject struct {
	Sdk        string `xml:"Sdk,attr"`
	ItemGroups []struct {
		Compile []struct {
			Include string `xml:"Include,attr"`
			Remove  string `xml:"Remove,attr"`
		} `xml:"Compile"`
	} `xml:"ItemGroup"`
}

// projectFiles lists the C# sources of a project.
//
// SDK-style projects compile every .cs file below the project directory
// except bin and obj; legacy projects list their sources explicitly.
func projectFiles(ctx context.Context, csproj string) ([]string, error) {
	data, err := os.ReadFile(csproj)
	if err != nil {
		return nil, err
	}

	var project msbuildProject
	if err := xml.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, csproj, err)
	}

	dir := filepath.Dir(csproj)

	var includes, removes []string
	for _, group := range project.ItemGroups {
		for _, item := range group.Compile {
			if item.Include != "" {
				includes = append(includes, item.Include)
			}

			if item.Remove != "" {
				removes = append(removes, item.Remove)
			}
		}
	}

	var files []string

	if project.Sdk != "" || len(includes) == 0 {
		files, err = walkFiltered(ctx, dir, func(path string) bool {
			return strings.EqualFold(filepath.Ext(path), ".cs")
		})
		if err != nil {
			return nil, err
		}
	}

	for _, include := range includes {
		matches, err := filepath.Glob(filepath.Join(dir, msbuildPath(include)))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, csproj, err)
		}

		files = append(files, matches...)
	}

	files = removeMatching(files, dir, removes)

	return dedupe(files), nil
}

func msbuildPath(p string) string {
	return filepath.FromSlash(strings.ReplaceAll(p, `\`, "/"))
}

func removeMatching(files []string, dir string, patterns []string) []string {
	if len(patterns) == 0 {
		return files
	}

	kept := files[:0]

	for _, file := range files {
		removed := false

		for _, pattern := range patterns {
			if ok, _ := filepath.Match(filepath.Join(dir, msbuildPath(pattern)), file); ok {
				removed = true

				break
			}
		}

		if !removed {
			kept = append(kept, file)
		}
	}

	return kept
}
