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

package lcsdiff

import (
	"slices"

	"znkr.io/lcsdiff/internal/config"
	"znkr.io/lcsdiff/internal/edits"
	"znkr.io/lcsdiff/internal/lcs"
)

// Kind describes the kind of an [Entry].
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	Both  Kind = iota // An element of the left slice matched with an element of the right slice
	Left              // An element that only exists in the left slice
	Right             // An element that only exists in the right slice
)

// Entry is a single entry of an edit script.
//
//   - For Both, L contains the element from the left slice and R contains the matching element
//     from the right slice. L and R are equal according to the comparison used, but they are not
//     necessarily identical.
//   - For Left, L contains the element from the left slice and R is unset (zero value).
//   - For Right, R contains the element from the right slice and L is unset (zero value).
type Entry[T any] struct {
	Kind Kind
	L, R T
}

// Hunk describes a sequence of consecutive entries.
type Hunk[T any] struct {
	PosL, EndL int        // Start and end position in left.
	PosR, EndR int        // Start and end position in right.
	Entries    []Entry[T] // Entries to transform left[PosL:EndL] to right[PosR:EndR]
}

// Slice compares the contents of left and right and returns the edit script that transforms one
// into the other.
//
// Slice returns one entry for every element in left that has no match in right, one entry for
// every element in right that has no match in left, and one entry for every pair of matching
// elements. If left and right are identical, the output consists of a [Both] entry for every
// element. If both are empty, the output has length zero.
//
// The script has len(left)+len(right)-L entries, where L is the length of a longest common
// subsequence of left and right. Of these, len(left)+len(right)-2L are [Left] or [Right] entries.
//
// The following option is supported: [LinearSpace]
func Slice[T comparable](left, right []T, opts ...Option) []Entry[T] {
	cfg := config.FromOptions(opts, config.LinearSpace)
	ops := lcs.Diff(left, right, cfg)
	return entries(left, right, ops)
}

// SliceFunc compares the contents of left and right using the provided equality comparison and
// returns the edit script that transforms one into the other.
//
// See [Slice] for a description of the output.
//
// The following option is supported: [LinearSpace]
//
// Note that this function has generally worse performance than [Slice], because [Slice] can
// replace elements with integer IDs before comparing them.
func SliceFunc[T any](left, right []T, eq func(a, b T) bool, opts ...Option) []Entry[T] {
	cfg := config.FromOptions(opts, config.LinearSpace)
	ops := lcs.DiffFunc(left, right, eq, cfg)
	return entries(left, right, ops)
}

func entries[T any](x, y []T, ops []edits.Op) []Entry[T] {
	if len(ops) == 0 {
		return nil
	}
	out := make([]Entry[T], len(ops))
	s, t := 0, 0
	for i, op := range ops {
		switch op {
		case edits.Both:
			out[i] = Entry[T]{Kind: Both, L: x[s], R: y[t]}
			s++
			t++
		case edits.Left:
			out[i] = Entry[T]{Kind: Left, L: x[s]}
			s++
		case edits.Right:
			out[i] = Entry[T]{Kind: Right, R: y[t]}
			t++
		default:
			panic("never reached")
		}
	}
	return out
}

// Hunks compares the contents of left and right and returns the changes necessary to convert from
// one to the other.
//
// The output is a sequence of hunks. A hunk represents a contiguous block of changes (insertions
// and deletions) along with some surrounding context. The amount of context can be configured
// using [Context].
//
// If left and right are identical, the output has length zero.
//
// The following options are supported: [Context], [LinearSpace]
func Hunks[T comparable](left, right []T, opts ...Option) []Hunk[T] {
	cfg := config.FromOptions(opts, config.Context|config.LinearSpace)
	ops := lcs.Diff(left, right, cfg)
	return hunks(left, right, ops, cfg)
}

// HunksFunc compares the contents of left and right using the provided equality comparison and
// returns the changes necessary to convert from one to the other.
//
// See [Hunks] for a description of the output.
//
// The following options are supported: [Context], [LinearSpace]
func HunksFunc[T any](left, right []T, eq func(a, b T) bool, opts ...Option) []Hunk[T] {
	cfg := config.FromOptions(opts, config.Context|config.LinearSpace)
	ops := lcs.DiffFunc(left, right, eq, cfg)
	return hunks(left, right, ops, cfg)
}

func hunks[T any](x, y []T, ops []edits.Op, cfg config.Config) []Hunk[T] {
	var hout []Hunk[T]
	var all []Entry[T] // lazily allocated, only needed if there's at least one hunk
	for h := range edits.Hunks(ops, cfg.Context) {
		if all == nil {
			all = entries(x, y, ops)
		}
		hout = append(hout, Hunk[T]{
			PosL:    h.S0,
			EndL:    h.S1,
			PosR:    h.T0,
			EndR:    h.T1,
			Entries: slices.Clip(all[h.P0:h.P1]),
		})
	}
	return hout
}

// Sides reconstructs the inputs of a comparison from its edit script.
//
// For every script returned by [Slice] or [SliceFunc] for left and right, Sides returns left and
// right again.
func Sides[T any](script []Entry[T]) (left, right []T) {
	for _, e := range script {
		switch e.Kind {
		case Both:
			left = append(left, e.L)
			right = append(right, e.R)
		case Left:
			left = append(left, e.L)
		case Right:
			right = append(right, e.R)
		default:
			panic("never reached")
		}
	}
	return left, right
}
