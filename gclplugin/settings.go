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

package gclplugin

import loopnest "fillmore-labs.com/loopnest/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Threshold is the deepest tolerated loop nesting.
	Threshold *int `json:"threshold,omitzero"`
	// For counts three-clause for loops.
	For *bool `json:"for,omitzero"`
	// While counts condition-only and infinite loops.
	While *bool `json:"while,omitzero"`
	// Range counts range loops.
	Range *bool `json:"range,omitzero"`
}

// Options converts [Settings] into a list of [loopnest.Option] for the loopnest analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []loopnest.Option {
	var opts []loopnest.Option

	opts = appendOption(opts, s.Threshold, loopnest.WithThreshold)
	opts = appendOption(opts, s.For, loopnest.WithForLoops)
	opts = appendOption(opts, s.While, loopnest.WithWhileLoops)
	opts = appendOption(opts, s.Range, loopnest.WithRangeLoops)

	return opts
}

// appendOption appends a non-nil setting to a [loopnest.Option] list.
func appendOption[T any](opts []loopnest.Option, value *T, constructor func(T) loopnest.Option) []loopnest.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
