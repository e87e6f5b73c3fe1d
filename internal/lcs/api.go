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
	"znkr.io/lcsdiff/internal/config"
	"znkr.io/lcsdiff/internal/edits"
)

// Diff compares the contents of x and y and returns the edit script that transforms x into y.
func Diff[T comparable](x, y []T, cfg config.Config) []edits.Op {
	// Comparing integer IDs is cheaper than comparing Ts for most types (esp. strings). This is
	// only possible for comparable types, because mapping from T to an ID requires a map.
	x0, y0 := intern(x, y)
	return DiffFunc(x0, y0, func(a, b int) bool { return a == b }, cfg)
}

// DiffFunc compares the contents of x and y using eq and returns the edit script that
// transforms x into y.
func DiffFunc[T any](x, y []T, eq func(a, b T) bool, cfg config.Config) []edits.Op {
	if len(x) == 0 && len(y) == 0 {
		return nil
	}
	ops := make([]edits.Op, 0, len(x)+len(y))

	if cfg.LinearSpace {
		h := newHirschberg(x, y, eq, ops)
		h.compare(0, len(x), 0, len(y))
		return h.ops
	}

	// Strip common suffix. The backtrack always takes the diagonal while the trailing elements
	// are equal, so this doesn't change the result. The same is not true for a common prefix.
	smax, tmax := len(x), len(y)
	for smax > 0 && tmax > 0 && eq(x[smax-1], y[tmax-1]) {
		smax--
		tmax--
	}
	suffix := len(x) - smax
	x, y = x[:smax], y[:tmax]

	tbl := NewTable(x, y, eq)
	ops = Backtrack(tbl, x, y, eq, ops)
	for range suffix {
		ops = append(ops, edits.Both)
	}
	return ops
}

// intern assigns a unique ID to every distinct element in x and y and returns x and y as IDs.
func intern[T comparable](x, y []T) (x0, y0 []int) {
	idx := make(map[T]int, len(x))
	buf := make([]int, len(x)+len(y))
	x0, y0 = buf[:len(x):len(x)], buf[len(x):]
	for i, e := range x {
		id, ok := idx[e]
		if !ok {
			id = len(idx)
			idx[e] = id
		}
		x0[i] = id
	}
	for i, e := range y {
		id, ok := idx[e]
		if !ok {
			id = len(idx)
			idx[e] = id
		}
		y0[i] = id
	}
	return x0, y0
}
