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

// Table holds the LCS lengths of all prefix pairs of two inputs x and y.
//
// At(i, j) is the length of the longest common subsequence of x[:i] and y[:j].
type Table struct {
	n, m  int
	cells []int32 // row-major, (n+1)*(m+1) entries
}

// NewTable computes the LCS table for x and y using the standard recurrence:
//
//	table[i][0] = table[0][j] = 0
//	table[i][j] = table[i-1][j-1] + 1              if x[i-1] == y[j-1]
//	table[i][j] = max(table[i-1][j], table[i][j-1]) otherwise
func NewTable[T any](x, y []T, eq func(a, b T) bool) *Table {
	n, m := len(x), len(y)
	w := m + 1
	cells := make([]int32, (n+1)*w)
	for i := 1; i <= n; i++ {
		prev, cur := cells[(i-1)*w:i*w], cells[i*w:(i+1)*w]
		for j := 1; j <= m; j++ {
			if eq(x[i-1], y[j-1]) {
				cur[j] = prev[j-1] + 1
			} else {
				cur[j] = max(prev[j], cur[j-1])
			}
		}
	}
	return &Table{n: n, m: m, cells: cells}
}

// At returns the LCS length of x[:i] and y[:j].
func (t *Table) At(i, j int) int {
	return int(t.cells[i*(t.m+1)+j])
}

// Len returns the LCS length of x and y.
func (t *Table) Len() int {
	return t.At(t.n, t.m)
}
