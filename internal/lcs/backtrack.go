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

package lcs

import (
	"slices"

	"znkr.io/lcsdiff/internal/edits"
)

// Backtrack walks tbl from (len(x), len(y)) back to (0, 0) and appends the resulting edit script
// to ops. tbl must have been computed for x and y with the same eq.
func Backtrack[T any](tbl *Table, x, y []T, eq func(a, b T) bool, ops []edits.Op) []edits.Op {
	start := len(ops)
	i, j := len(x), len(y)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && eq(x[i-1], y[j-1]):
			ops = append(ops, edits.Both)
			i--
			j--
		case i > 0 && j > 0 && tbl.At(i, j-1) >= tbl.At(i-1, j):
			ops = append(ops, edits.Right)
			j--
		case i > 0 && j > 0:
			ops = append(ops, edits.Left)
			i--
		case j > 0:
			ops = append(ops, edits.Right)
			j--
		default:
			ops = append(ops, edits.Left)
			i--
		}
	}
	// The walk produced the script back to front.
	slices.Reverse(ops[start:])
	return ops
}
