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

// Package edits contains the internal edit script representation that's used by the LCS
// algorithms and is then translated to a user facing API.
//
// An edit script is a []Op. Every Op consumes one element of x (Left), one element of y (Right),
// or one element of both (Both). The internal representation is separate from the exported one,
// because it doesn't depend on the element type.
package edits

import (
	"fmt"
	"iter"
)

// Op is a single edit operation.
type Op uint8

const (
	Both  Op = iota // Consumes one element of x and one of y, the elements match.
	Left            // Consumes one element of x that has no match in y.
	Right           // Consumes one element of y that has no match in x.
)

func (op Op) String() string {
	switch op {
	case Both:
		return "both"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprint(uint8(op))
	}
}

// Hunk describes a sequence of consecutive edits.
type Hunk struct {
	S0, S1 int // Start and end of the hunk in x.
	T0, T1 int // Start and end of the hunk in y.
	P0, P1 int // Start and end of the hunk in the edit script.
}

// Hunks finds all hunks in ops. Every hunk includes up to context Both ops before the first and
// after the last change. Hunks whose context windows would overlap are merged.
func Hunks(ops []Op, context int) iter.Seq[Hunk] {
	return func(yield func(Hunk) bool) {
		n := len(ops)
		pos, s, t := 0, 0, 0 // cursor into ops and corresponding positions in x and y
		advance := func(to int) {
			for ; pos < to; pos++ {
				switch ops[pos] {
				case Both:
					s++
					t++
				case Left:
					s++
				case Right:
					t++
				}
			}
		}

		i := 0
		for {
			// Find the next change.
			for i < n && ops[i] == Both {
				i++
			}
			if i == n {
				return
			}
			start := max(pos, i-context)

			// Extend the hunk as long as the run of matches between two changes is short enough
			// to be covered by context.
			end := i
			for {
				for end < n && ops[end] != Both {
					end++
				}
				run := end
				for run < n && ops[run] == Both {
					run++
				}
				if run == n || run-end > 2*context {
					end = min(run, end+context)
					break
				}
				end = run
			}

			var h Hunk
			advance(start)
			h.S0, h.T0, h.P0 = s, t, pos
			advance(end)
			h.S1, h.T1, h.P1 = s, t, pos
			if !yield(h) {
				return
			}
			i = end
		}
	}
}
