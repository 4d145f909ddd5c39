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

package a

import "fmt"

func twoLevels(m [][]int) {
	for i := range m {
		for j := range m[i] {
			fmt.Println(m[i][j])
		}
	}
}

func threeLevels(n int) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ { // want "Loop nesting depth 3 exceeds maximum 2 \\(ln:for\\)"
				fmt.Println(i, j, k)
			}
		}
	}
}

func mixedKinds(cube [][][]int, ok func() bool) {
	for x := 0; x < len(cube); x++ {
		for ok() {
			for _, row := range cube[x] { // want "Loop nesting depth 3 exceeds maximum 2 \\(ln:foreach\\)"
				for i := 0; i < len(row); i++ { // want "Loop nesting depth 4 exceeds maximum 2 \\(ln:for\\)"
					fmt.Println(row[i])
				}
			}
		}
	}
}

func conditionalsAreTransparent(n int) {
	for i := range n {
		if i%2 == 0 {
			switch {
			case i > 2:
				for j := range i {
					for { // want "Loop nesting depth 3 exceeds maximum 2 \\(ln:while\\)"
						fmt.Println(j)
						break
					}
				}
			}
		}
	}
}

func closuresAreTransparent(xs []int) {
	for range xs {
		func() {
			for range xs {
				go func() {
					for range xs { // want "Loop nesting depth 3 exceeds maximum 2"
					}
				}()
			}
		}()
	}
}

func siblings(xs []int) {
	for range xs {
		for range xs {
			for range xs { // want "Loop nesting depth 3"
			}
		}
		for range xs {
			for range xs { // want "Loop nesting depth 3"
			}
		}
	}
}

var packageLevel = func(xs []int) {
	for range xs {
		for range xs {
			for range xs { // want "Loop nesting depth 3"
			}
		}
	}
}

func suppressedLine(xs []int) {
	for range xs {
		for range xs {
			for range xs { //nolint:loopnest
			}
		}
	}
}

//nolint:loopnest
func suppressedFunc(xs []int) {
	for range xs {
		for range xs {
			for range xs {
			}
		}
	}
}

func noLoops() {
	fmt.Println("no loops")
}
