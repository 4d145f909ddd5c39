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

// flagBits are the unsigned integer types usable as a [BitMask] element.
type flagBits interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BitMask is a set of flags of type T. The zero value is the empty set.
type BitMask[T flagBits] struct {
	bits T
}

// NewBitMask returns a [BitMask] with the given flags set.
func NewBitMask[T flagBits](flags ...T) BitMask[T] {
	var all T
	for _, f := range flags {
		all |= f
	}

	return BitMask[T]{bits: all}
}

// Set turns flag on or off.
func (b *BitMask[T]) Set(flag T, on bool) {
	if on {
		b.bits |= flag
	} else {
		b.bits &^= flag
	}
}

// Enable turns flag on.
func (b *BitMask[T]) Enable(flag T) { b.Set(flag, true) }

// Disable turns flag off.
func (b *BitMask[T]) Disable(flag T) { b.Set(flag, false) }

// Enabled reports whether any bit of flag is set.
func (b BitMask[T]) Enabled(flag T) bool {
	return b.bits&flag != 0
}

// Empty reports whether no flag is set.
func (b BitMask[T]) Empty() bool {
	return b.bits == 0
}
