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

// Package analyzer implements the loopnest static analysis pass.
//
// # Overview
//
// LoopNest reports loops nested more than two levels deep. Every loop
// entered beyond the threshold is reported, so a nest of four loops yields
// diagnostics for the third and the fourth loop.
//
// # Example
//
//	for _, order := range orders {
//	    for _, line := range order.Lines {
//	        for i := 0; i < line.Quantity; i++ { // Loop nesting depth 3 exceeds maximum 2
//	            ship(line.Item)
//	        }
//	    }
//	}
//
// # Loop Kinds
//
//   - for: three-clause loops, for init; cond; post { }
//   - while: condition-only and infinite loops, for cond { } and for { }
//   - range: for ... range x { }
//
// Conditionals, switches and function literals between loops don't
// change the depth.
//
// # Suppression
//
// A //nolint:loopnest comment on the loop's line, in the doc comment of the
// enclosing function or in the file's doc comment suppresses diagnostics.
package analyzer
