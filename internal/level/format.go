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

// Package level defines the textual settings of the nestscan command line.
package level

import (
	"fmt"
	"strings"
)

// Format specifies the report format.
type Format uint8

const (
	// FormatText prints findings in the classic console layout.
	FormatText Format = iota

	// FormatJSON writes a single JSON document.
	FormatJSON
)

// MarshalText implements [encoding.TextMarshaler].
func (o Format) MarshalText() ([]byte, error) {
	switch o {
	case FormatText:
		return []byte("text"), nil

	case FormatJSON:
		return []byte("json"), nil

	default:
		return nil, fmt.Errorf("unknown report format %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Format) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "text", "console":
		*o = FormatText

	case "json":
		*o = FormatJSON

	default:
		return fmt.Errorf("unknown report format %q", string(text))
	}

	return nil
}

// String implements [fmt.Stringer] and [pflag.Value].
func (o Format) String() string {
	text, err := o.MarshalText()
	if err != nil {
		return fmt.Sprintf("Format(%d)", uint8(o))
	}

	return string(text)
}

// Set implements [pflag.Value].
func (o *Format) Set(s string) error { return o.UnmarshalText([]byte(s)) }

// Type implements [pflag.Value].
func (*Format) Type() string { return "format" }
