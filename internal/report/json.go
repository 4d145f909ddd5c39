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

package report

import (
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"fillmore-labs.com/loopnest/internal/nesting"
)

// JSON collects all results and writes one document on [JSON.Close].
type JSON struct {
	out io.Writer
	doc jsonDocument
}

type jsonDocument struct {
	Threshold int         `json:"threshold"`
	Files     []jsonFile  `json:"files"`
	Errors    []jsonError `json:"errors,omitempty"`
}

type jsonFile struct {
	File     string        `json:"file"`
	Findings []jsonFinding `json:"findings"`
}

type jsonFinding struct {
	Depth  int    `json:"depth"`
	Line   int    `json:"line"`
	Column int    `json:"column,omitzero"`
	Kind   string `json:"kind"`
}

type jsonError struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// NewJSON creates a JSON [Sink].
func NewJSON(opts Options) *JSON {
	return &JSON{
		out: opts.Out,
		doc: jsonDocument{Threshold: opts.Threshold, Files: []jsonFile{}},
	}
}

// Findings implements [Sink].
func (j *JSON) Findings(file string, findings []nesting.Finding) error {
	entry := jsonFile{File: file, Findings: make([]jsonFinding, 0, len(findings))}
	for _, f := range findings {
		entry.Findings = append(entry.Findings, jsonFinding{
			Depth:  f.Depth,
			Line:   f.Line,
			Column: f.Column,
			Kind:   f.Kind.String(),
		})
	}

	j.doc.Files = append(j.doc.Files, entry)

	return nil
}

// ParseError implements [Sink].
func (j *JSON) ParseError(file string, err error) error {
	j.doc.Errors = append(j.doc.Errors, jsonError{File: file, Error: err.Error()})

	return nil
}

// Close implements [Sink].
func (j *JSON) Close() error {
	if err := json.MarshalWrite(j.out, &j.doc, jsontext.WithIndent("  ")); err != nil {
		return err
	}

	_, err := io.WriteString(j.out, "\n")

	return err
}
