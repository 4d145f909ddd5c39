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

package syntax

import "fillmore-labs.com/loopnest/internal/config"

//go:generate go tool stringer -type Kind -linecomment

// Kind classifies a [Node].
type Kind uint8

const (
	Other       Kind = iota // other
	ForLoop                 // for
	WhileLoop               // while
	ForEachLoop             // foreach
)

// IsLoop reports whether k is one of the loop kinds.
func (k Kind) IsLoop() bool {
	return k.Flag() != 0
}

// Flag maps a loop kind to its configuration flag, zero for [Other].
func (k Kind) Flag() config.LoopFlags {
	switch k {
	case ForLoop:
		return config.ForLoops

	case WhileLoop:
		return config.WhileLoops

	case ForEachLoop:
		return config.ForEachLoops

	default:
		return 0
	}
}
