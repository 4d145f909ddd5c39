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

package config

// LoopKinds represents the set of statement kinds counted as loops.
type LoopKinds = BitMask[LoopFlags]

// LoopFlags represents specific loop kinds.
type LoopFlags uint8

const (
	// ForLoops counts three-clause for statements.
	ForLoops LoopFlags = 1 << iota

	// WhileLoops counts condition-only and infinite loops.
	WhileLoops

	// ForEachLoops counts iteration over collections (range, foreach).
	ForEachLoops

	// AllLoops is the union of all loop kinds.
	AllLoops = ForLoops | WhileLoops | ForEachLoops
)

// DefaultLoopKinds returns the loop kinds counted when nothing is configured.
func DefaultLoopKinds() LoopKinds {
	return NewBitMask(AllLoops)
}

// Behavior represents behavioral options.
type Behavior = BitMask[BehaviorFlags]

// BehaviorFlags represents configuration options for the analyzers.
type BehaviorFlags uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated BehaviorFlags = 1 << iota
)

// DefaultBehavior returns the default behavior, skipping generated files.
func DefaultBehavior() Behavior {
	return Behavior{}
}

// DefaultThreshold is the loop nesting depth tolerated without a finding.
const DefaultThreshold = 2
