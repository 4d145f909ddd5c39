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

// Package nesting finds loops nested deeper than a threshold.
//
// [Walk] visits a [syntax.Node] tree in pre-order. Only loop nodes of the
// configured kinds increase the nesting depth; every other node is
// transparent. A [Finding] is recorded each time a loop is entered at a depth
// above the threshold, so a four-level nest yields findings at depth 3 and 4.
package nesting
