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

package run

import (
	"log/slog"

	"fillmore-labs.com/loopnest/internal/config"
	"fillmore-labs.com/loopnest/internal/nesting"
)

// Options represent configuration options for the loopnest analyzer.
type Options struct {
	// Kinds are the loop kinds counted towards the nesting depth.
	Kinds config.LoopKinds

	// Behavior holds behavioral options.
	Behavior config.Behavior

	// Threshold is the deepest tolerated loop nesting.
	Threshold int
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Kinds:     config.DefaultLoopKinds(),
		Behavior:  config.DefaultBehavior(),
		Threshold: config.DefaultThreshold,
	}
}

// Walker returns the walker configuration.
func (r *Options) Walker() nesting.Options {
	return nesting.Options{Threshold: r.Threshold, Kinds: r.Kinds}
}

// LogValue implements [slog.LogValuer].
func (r *Options) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("walker", r.Walker()),
		slog.Bool("generated", r.Behavior.Enabled(config.IncludeGenerated)),
	)
}
