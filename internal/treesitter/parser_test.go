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

package treesitter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/loopnest/internal/nesting"
	"fillmore-labs.com/loopnest/internal/syntax"
	. "fillmore-labs.com/loopnest/internal/treesitter"
)

const csharpSource = `class Matrix
{
    void Multiply(int[][] a, int[][] b, int[][] c, List<int> rows)
    {
        for (int i = 0; i < a.Length; i++)
        {
            while (rows.Count > 0)
            {
                foreach (var r in rows)
                {
                    for (int k = 0; k < r; k++)
                    {
                        c[i][k] += a[i][k] * b[k][i];
                    }
                }
            }
        }
    }
}
`

type finding struct {
	Depth, Line int
	Kind        syntax.Kind
}

func walk(t *testing.T, lang *Language, src string) []finding {
	t.Helper()

	p := NewParser()
	defer p.Close()

	unit, err := p.Parse(t.Context(), lang, "src", []byte(src))
	require.NoError(t, err)
	require.Equal(t, "src", unit.File)

	var got []finding
	for _, f := range nesting.Walk(unit, nesting.DefaultOptions()) {
		got = append(got, finding{f.Depth, f.Line, f.Kind})
	}

	return got
}

func TestCSharp(t *testing.T) {
	t.Parallel()

	got := walk(t, CSharp, csharpSource)

	assert.Equal(t, []finding{
		{Depth: 3, Line: 9, Kind: syntax.ForEachLoop},
		{Depth: 4, Line: 11, Kind: syntax.ForLoop},
	}, got)
}

func TestCSharpDoWhileIsTransparent(t *testing.T) {
	t.Parallel()

	const src = `class C {
    void M() {
        for (;;) {
            do {
                while (true) {
                    break;
                }
            } while (false);
        }
    }
}
`

	assert.Empty(t, walk(t, CSharp, src))
}

func TestLanguages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		lang *Language
		src  string
		want []finding
	}{
		{
			name: "Java",
			lang: Java,
			src: `class C {
  void m(java.util.List<Integer> xs) {
    for (int i = 0; i < 3; i++) {
      for (int x : xs) {
        while (x > 0) { x--; }
      }
    }
  }
}
`,
			want: []finding{{Depth: 3, Line: 5, Kind: syntax.WhileLoop}},
		},
		{
			name: "JavaScript",
			lang: JavaScript,
			src: `for (const a of xs) {
  for (const k in a) {
    if (k) {
      for (let i = 0; i < 3; i++) {}
    }
  }
}
`,
			want: []finding{{Depth: 3, Line: 4, Kind: syntax.ForLoop}},
		},
		{
			name: "TypeScript",
			lang: TypeScript,
			src: `function f(xs: number[][]): void {
  while (xs.length > 0) {
    for (const row of xs) {
      for (const x of row) {
        console.log(x);
      }
    }
  }
}
`,
			want: []finding{{Depth: 3, Line: 4, Kind: syntax.ForEachLoop}},
		},
		{
			name: "Python",
			lang: Python,
			src: `def f(xs):
    for row in xs:
        while row:
            for x in row:
                print(x)
            row = None
`,
			want: []finding{{Depth: 3, Line: 4, Kind: syntax.ForEachLoop}},
		},
		{
			name: "NoLoops",
			lang: Python,
			src:  "print('hello')\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, walk(t, tt.lang, tt.src))
		})
	}
}

func TestSyntaxError(t *testing.T) {
	t.Parallel()

	p := NewParser()
	defer p.Close()

	_, err := p.Parse(t.Context(), CSharp, "broken.cs", []byte("class C { void M() { for (;; { } }"))
	require.ErrorIs(t, err, ErrSyntax)
	assert.Contains(t, err.Error(), "broken.cs:1:")
}

func TestForFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want *Language
	}{
		{"src/Program.cs", CSharp},
		{"Main.JAVA", Java},
		{"app.mjs", JavaScript},
		{"index.ts", TypeScript},
		{"tool.py", Python},
		{"main.go", nil},
		{"README", nil},
	}

	for _, tt := range tests {
		lang, ok := ForFile(tt.path)
		if tt.want == nil {
			assert.False(t, ok, tt.path)

			continue
		}

		require.True(t, ok, tt.path)
		assert.Same(t, tt.want, lang, tt.path)
	}
}
