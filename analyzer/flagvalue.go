// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package analyzer

import (
	"fmt"
	"strings"

	"fillmore-labs.com/loopnest/internal/config"
)

// bitFlag is a boolean [flag.Getter] that toggles a single bit of a [config.BitMask].
type bitFlag[F ~uint8] struct {
	mask *config.BitMask[F]
	bit  F
}

// newKindValue creates a boolean flag toggling one loop kind.
func newKindValue(kinds *config.LoopKinds, kind config.LoopFlags) bitFlag[config.LoopFlags] {
	return bitFlag[config.LoopFlags]{mask: kinds, bit: kind}
}

// newBehaviorValue creates a boolean flag toggling one behavior.
func newBehaviorValue(behavior *config.Behavior, flag config.BehaviorFlags) bitFlag[config.BehaviorFlags] {
	return bitFlag[config.BehaviorFlags]{mask: behavior, bit: flag}
}

// Set implements [flag.Value].
func (f bitFlag[F]) Set(s string) error {
	on, err := parseSwitch(s)
	if err != nil {
		return err
	}

	f.mask.Set(f.bit, on)

	return nil
}

// String implements [flag.Value]. The zero value, used by the flag package
// to detect defaults, reads as false.
func (f bitFlag[F]) String() string {
	if f.Get().(bool) {
		return "true"
	}

	return "false"
}

// Get implements [flag.Getter].
func (f bitFlag[F]) Get() any {
	return f.mask != nil && f.mask.Enabled(f.bit)
}

// IsBoolFlag marks the flag as boolean, so -for is short for -for=true.
func (bitFlag[F]) IsBoolFlag() bool { return true }

// parseSwitch accepts the spellings of [strconv.ParseBool] plus on and off.
func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "t", "true", "on", "yes":
		return true, nil

	case "0", "f", "false", "off", "no":
		return false, nil

	default:
		return false, fmt.Errorf("invalid boolean value %q", s)
	}
}
