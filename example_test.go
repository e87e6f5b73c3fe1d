// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package lcsdiff_test

import (
	"fmt"
	"strings"

	"znkr.io/lcsdiff"
)

// Compare two strings line by line and output the difference as a pseudo-unified diff output
// (i.e. it's similar to what diff -u would produce). The format is not a correct unified diff
// though, in particular line endings (esp. at the end of the input) are handled differently.
func ExampleHunks_psudoUnified() {
	x := `this paragraph
is not
changed and
barely long
enough to
create a
new hunk

this paragraph
is going to be
removed`

	y := `this is a new paragraph
that is inserted at the top

this paragraph
is not
changed and
barely long
enough to
create a
new hunk`

	xlines := strings.Split(x, "\n")
	ylines := strings.Split(y, "\n")
	hunks := lcsdiff.Hunks(xlines, ylines)
	for _, h := range hunks {
		fmt.Printf("@@ -%d,%d +%d,%d @@\n", h.PosL+1, h.EndL-h.PosL, h.PosR+1, h.EndR-h.PosR)
		for _, e := range h.Entries {
			switch e.Kind {
			case lcsdiff.Both:
				fmt.Printf(" %s\n", e.L)
			case lcsdiff.Left:
				fmt.Printf("-%s\n", e.L)
			case lcsdiff.Right:
				fmt.Printf("+%s\n", e.R)
			default:
				panic("never reached")
			}
		}
	}
	// Output:
	// @@ -1,3 +1,6 @@
	// +this is a new paragraph
	// +that is inserted at the top
	// +
	//  this paragraph
	//  is not
	//  changed and
	// @@ -5,7 +8,3 @@
	//  enough to
	//  create a
	//  new hunk
	// -
	// -this paragraph
	// -is going to be
	// -removed
}

// Compare two strings rune by rune.
func ExampleSlice() {
	x := []rune("Hello, World")
	y := []rune("Hello, 世界")
	for _, e := range lcsdiff.Slice(x, y) {
		switch e.Kind {
		case lcsdiff.Both:
			fmt.Printf("%s", string(e.L))
		case lcsdiff.Left:
			fmt.Printf("-%s", string(e.L))
		case lcsdiff.Right:
			fmt.Printf("+%s", string(e.R))
		default:
			panic("never reached")
		}
	}
	// Output:
	// Hello, -W-o-r-l-d+世+界
}

// Reconstruct both inputs from an edit script.
func ExampleSides() {
	script := lcsdiff.Slice([]int{1, 2, 3, 4, 1, 3}, []int{1, 4, 1, 1})
	for _, e := range script {
		fmt.Printf("%v %v %v\n", e.Kind, e.L, e.R)
	}
	left, right := lcsdiff.Sides(script)
	fmt.Println(left, right)
	// Output:
	// Both 1 1
	// Left 2 0
	// Left 3 0
	// Both 4 4
	// Both 1 1
	// Left 3 0
	// Right 0 1
	// [1 2 3 4 1 3] [1 4 1 1]
}
