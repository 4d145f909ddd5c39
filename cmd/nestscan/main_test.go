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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const program = `class Program
{
    static void Main(string[] args)
    {
        for (int i = 0; i < 10; i++)
        {
            while (args.Length > i)
            {
                foreach (var a in args)
                {
                    for (int j = 0; j < 2; j++)
                    {
                    }
                }
            }
        }
    }
}
`

const sln = `Microsoft Visual Studio Solution File, Format Version 12.00
Project("{9A19103F-16F7-4668-BE54-9A1E7A4F7556}") = "App", "App\App.csproj", "{11111111-1111-1111-1111-111111111111}"
EndProject
`

func project(t *testing.T) string {
	t.Helper()

	root := t.TempDir()

	files := map[string]string{
		"App.sln":         sln,
		"App/App.csproj":  `<Project Sdk="Microsoft.NET.Sdk" />`,
		"App/Program.cs":  program,
		"App/Flat.cs":     "class Flat { void M() { for (;;) { } } }\n",
		"App/Broken.cs":   "class {",
		"App/obj/Gen.cs":  program,
		"App/Readme.md":   "",
		"Other/Other.cs":  program,
		"strict.yaml":     "threshold: 1\nloops: [for]\n",
		"bad-config.yaml": "thresh: 1\n",
	}

	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	return root
}

func TestScanText(t *testing.T) {
	t.Parallel()

	root := project(t)

	var stdout, stderr strings.Builder

	code := run(t.Context(), []string{"scan", "--color=off", filepath.Join(root, "App.sln")}, &stdout, &stderr)

	assert.Equal(t, exitFindings, code)
	assert.Equal(t, "File: "+filepath.Join(root, "App", "Program.cs")+"\n"+
		"  Nested Loop Depth: 3, Line: 9\n"+
		"  Nested Loop Depth: 4, Line: 11\n", stdout.String())
	assert.Contains(t, stderr.String(), "Broken.cs")
	assert.NotContains(t, stderr.String(), "Gen.cs")
}

func TestScanJSON(t *testing.T) {
	t.Parallel()

	root := project(t)

	var stdout, stderr strings.Builder

	code := run(t.Context(), []string{"scan", "--format", "json", "--jobs", "2", filepath.Join(root, "App", "App.csproj")}, &stdout, &stderr)
	require.Equal(t, exitFindings, code, stderr.String())

	var doc struct {
		Files []struct {
			File     string `json:"file"`
			Findings []struct {
				Depth int    `json:"depth"`
				Kind  string `json:"kind"`
			} `json:"findings"`
		} `json:"files"`
		Errors []struct {
			File string `json:"file"`
		} `json:"errors"`
	}

	require.NoError(t, json.Unmarshal([]byte(stdout.String()), &doc))
	require.Len(t, doc.Files, 1)
	require.Len(t, doc.Files[0].Findings, 2)
	assert.Equal(t, "foreach", doc.Files[0].Findings[0].Kind)
	assert.Equal(t, "for", doc.Files[0].Findings[1].Kind)
	require.Len(t, doc.Errors, 1)
	assert.True(t, strings.HasSuffix(doc.Errors[0].File, "Broken.cs"))
}

func TestScanConfig(t *testing.T) {
	t.Parallel()

	root := project(t)
	target := filepath.Join(root, "App", "Program.cs")

	tests := []struct {
		name string
		args []string
		code int
		out  string
	}{
		{
			name: "Threshold",
			args: []string{"--threshold", "4", target},
			code: exitOK,
		},
		{
			name: "ConfigFile",
			args: []string{"--config", filepath.Join(root, "strict.yaml"), target},
			code: exitFindings,
			out:  "  Nested Loop Depth: 2, Line: 11\n",
		},
		{
			name: "FlagOverridesConfig",
			args: []string{"--config", filepath.Join(root, "strict.yaml"), "--loops", "while,foreach", target},
			code: exitFindings,
			out:  "  Nested Loop Depth: 2, Line: 9\n",
		},
		{
			name: "UnknownConfigKey",
			args: []string{"--config", filepath.Join(root, "bad-config.yaml"), target},
			code: exitError,
		},
		{
			name: "UnknownLoopKind",
			args: []string{"--loops", "do", target},
			code: exitError,
		},
		{
			name: "MissingProject",
			args: []string{filepath.Join(root, "Missing.sln")},
			code: exitError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr strings.Builder

			code := run(t.Context(), append([]string{"scan", "--color=off"}, tt.args...), &stdout, &stderr)
			assert.Equal(t, tt.code, code, stderr.String())

			if tt.out != "" {
				assert.Contains(t, stdout.String(), tt.out)
			}

			if tt.code == exitError {
				assert.Contains(t, stderr.String(), "nestscan:")
			}
		})
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()

	var stdout, stderr strings.Builder

	code := run(t.Context(), []string{"version"}, &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "nestscan devel\n", stdout.String())
}
