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

import "znkr.io/lcsdiff/internal/edits"

// hirschberg implements the linear space LCS algorithm from D. S. Hirschberg, "A linear space
// algorithm for computing maximal common subsequences", Communications of the ACM 18(6), 1975.
type hirschberg[T any] struct {
	x, y     []T
	eq       func(a, b T) bool
	fwd, bwd []int // scratch rows, len(y)+1 entries each
	ops      []edits.Op
}

func newHirschberg[T any](x, y []T, eq func(a, b T) bool, ops []edits.Op) *hirschberg[T] {
	buf := make([]int, 2*(len(y)+1))
	return &hirschberg[T]{
		x:   x,
		y:   y,
		eq:  eq,
		fwd: buf[:len(y)+1],
		bwd: buf[len(y)+1:],
		ops: ops,
	}
}

// compare appends the edit script for x[smin:smax] and y[tmin:tmax].
func (h *hirschberg[T]) compare(smin, smax, tmin, tmax int) {
	// Strip common prefix.
	for smin < smax && tmin < tmax && h.eq(h.x[smin], h.y[tmin]) {
		h.push(edits.Both, 1)
		smin++
		tmin++
	}

	// Strip common suffix, the matches are appended after the rest.
	suffix := 0
	for smax > smin && tmax > tmin && h.eq(h.x[smax-1], h.y[tmax-1]) {
		smax--
		tmax--
		suffix++
	}

	switch {
	case smin == smax:
		h.push(edits.Right, tmax-tmin)
	case tmin == tmax:
		h.push(edits.Left, smax-smin)
	case smax-smin == 1:
		h.single(smin, tmin, tmax)
	default:
		smid := smin + (smax-smin)/2
		tmid := h.split(smin, smid, smax, tmin, tmax)
		h.compare(smin, smid, tmin, tmid)
		h.compare(smid, smax, tmid, tmax)
	}

	h.push(edits.Both, suffix)
}

// single handles the case of a single element x[s] that is compared against y[tmin:tmax].
func (h *hirschberg[T]) single(s, tmin, tmax int) {
	for t := tmin; t < tmax; t++ {
		if h.eq(h.x[s], h.y[t]) {
			h.push(edits.Right, t-tmin)
			h.push(edits.Both, 1)
			h.push(edits.Right, tmax-t-1)
			return
		}
	}
	h.push(edits.Left, 1)
	h.push(edits.Right, tmax-tmin)
}

// split returns the position in y[tmin:tmax] that x[smin:smax] is split at in a longest common
// subsequence when x is split at smid.
func (h *hirschberg[T]) split(smin, smid, smax, tmin, tmax int) int {
	m := tmax - tmin
	fwd, bwd := h.fwd[:m+1], h.bwd[:m+1]
	forward(fwd, h.x[smin:smid], h.y[tmin:tmax], h.eq)
	backward(bwd, h.x[smid:smax], h.y[tmin:tmax], h.eq)
	best, tmid := -1, tmin
	for j := 0; j <= m; j++ {
		if l := fwd[j] + bwd[m-j]; l > best {
			best, tmid = l, tmin+j
		}
	}
	return tmid
}

func (h *hirschberg[T]) push(op edits.Op, n int) {
	for range n {
		h.ops = append(h.ops, op)
	}
}

// forward sets row[j] to the LCS length of x and y[:j].
func forward[T any](row []int, x, y []T, eq func(a, b T) bool) {
	clear(row)
	for i := range x {
		diag := 0 // previous row at j
		for j := range y {
			up := row[j+1]
			if eq(x[i], y[j]) {
				row[j+1] = diag + 1
			} else {
				row[j+1] = max(up, row[j])
			}
			diag = up
		}
	}
}

// backward sets row[k] to the LCS length of x and y[len(y)-k:].
func backward[T any](row []int, x, y []T, eq func(a, b T) bool) {
	clear(row)
	m := len(y)
	for i := len(x) - 1; i >= 0; i-- {
		diag := 0 // previous row at k-1
		for j := m - 1; j >= 0; j-- {
			k := m - j
			up := row[k]
			if eq(x[i], y[j]) {
				row[k] = diag + 1
			} else {
				row[k] = max(up, row[k-1])
			}
			diag = up
		}
	}
}
