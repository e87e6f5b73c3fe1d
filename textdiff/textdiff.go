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

// Package textdiff provides functions to compare text line by line.
package textdiff

import (
	"fmt"

	"znkr.io/lcsdiff"
	"znkr.io/lcsdiff/internal/byteview"
	"znkr.io/lcsdiff/internal/config"
	"znkr.io/lcsdiff/internal/edits"
	"znkr.io/lcsdiff/internal/lcs"
)

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"
)

const (
	missingNewline = "\\ No newline at end of file\n"
	colorReset     = "\033[0m"
)

// Lines splits left and right into lines and returns the edit script that transforms the lines
// of left into the lines of right. Lines are compared byte by byte.
//
// Lines are separated by '\n' and don't include the newline character. An empty text has no
// lines, any other text is split like [strings.Split] does. In particular, a text that ends with a
// newline has an empty last line. With that, joining the left lines of the script with "\n"
// always restores left and the same is true for right (see [lcsdiff.Sides]).
//
// The lines in the result reference the inputs, no text is copied.
//
// The following option is supported: [lcsdiff.LinearSpace]
func Lines[T string | []byte](left, right T, opts ...lcsdiff.Option) []lcsdiff.Entry[T] {
	cfg := config.FromOptions(opts, config.LinearSpace)
	x := byteview.Split(byteview.From(left))
	y := byteview.Split(byteview.From(right))
	ops := lcs.Diff(x, y, cfg)
	if len(ops) == 0 {
		return nil
	}

	out := make([]lcsdiff.Entry[T], len(ops))
	s, t := 0, 0
	for i, op := range ops {
		switch op {
		case edits.Both:
			out[i] = lcsdiff.Entry[T]{Kind: lcsdiff.Both, L: byteview.To[T](x[s]), R: byteview.To[T](y[t])}
			s++
			t++
		case edits.Left:
			out[i] = lcsdiff.Entry[T]{Kind: lcsdiff.Left, L: byteview.To[T](x[s])}
			s++
		case edits.Right:
			out[i] = lcsdiff.Entry[T]{Kind: lcsdiff.Right, R: byteview.To[T](y[t])}
			t++
		default:
			panic("never reached")
		}
	}
	return out
}

// Unified compares the lines in left and right and returns the changes necessary to convert from
// one to the other in unified format.
//
// If left and right are identical, the output is empty.
//
// The following options are supported: [lcsdiff.Context], [lcsdiff.LinearSpace],
// [TerminalColors]
func Unified[T string | []byte](left, right T, opts ...lcsdiff.Option) T {
	cfg := config.FromOptions(opts, config.Context|config.LinearSpace|config.TerminalColors)

	// Unlike for Lines, the lines here include the newline character. If a line is missing the
	// newline character at the end of the input, it's different from the same line with newline
	// and needs to be marked in the output.
	x, xmissing := byteview.SplitLines(byteview.From(left))
	y, ymissing := byteview.SplitLines(byteview.From(right))
	ops := lcs.Diff(x, y, cfg)

	u := unified[T]{
		x:        x,
		y:        y,
		xmissing: xmissing,
		ymissing: ymissing,
		colors:   cfg.Colors,
	}
	for h := range edits.Hunks(ops, cfg.Context) {
		u.grow(ops[h.P0:h.P1], h)
		u.header(h)
		s, t := h.S0, h.T0
		for _, op := range ops[h.P0:h.P1] {
			switch op {
			case edits.Both:
				u.line(prefixMatch, cfg.Colors.Match, x[s], s == xmissing)
				s++
				t++
			case edits.Left:
				u.line(prefixDelete, cfg.Colors.Delete, x[s], s == xmissing)
				s++
			case edits.Right:
				u.line(prefixInsert, cfg.Colors.Insert, y[t], t == ymissing)
				t++
			}
		}
	}
	return u.b.Build()
}

type unified[T string | []byte] struct {
	b                  byteview.Builder[T]
	x, y               []byteview.ByteView
	xmissing, ymissing int
	colors             config.ColorConfig
}

// grow reserves space for the hunk h. Colors and missing newline markers aren't accounted for.
func (u *unified[T]) grow(ops []edits.Op, h edits.Hunk) {
	n := len("@@ -, +, @@\n") + 4*20 // four ints
	s, t := h.S0, h.T0
	for _, op := range ops {
		switch op {
		case edits.Both:
			n += 1 + u.x[s].Len()
			s++
			t++
		case edits.Left:
			n += 1 + u.x[s].Len()
			s++
		case edits.Right:
			n += 1 + u.y[t].Len()
			t++
		}
	}
	u.b.Grow(n)
}

func (u *unified[T]) header(h edits.Hunk) {
	if u.colors.HunkHeader != "" {
		u.b.WriteString(u.colors.HunkHeader)
	}
	fmt.Fprintf(&u.b, "@@ -%d,%d +%d,%d @@", start(h.S0, h.S1), h.S1-h.S0, start(h.T0, h.T1), h.T1-h.T0)
	if u.colors.HunkHeader != "" {
		u.b.WriteString(colorReset)
	}
	u.b.WriteString("\n")
}

// start returns the 1-based start line of a hunk range. An empty range names the line after which
// lines are inserted or deleted, 0 for the start of the file.
func start(pos, end int) int {
	if pos == end {
		return pos
	}
	return pos + 1
}

func (u *unified[T]) line(prefix, color string, line byteview.ByteView, missing bool) {
	if color != "" {
		u.b.WriteString(color)
	}
	u.b.WriteString(prefix)
	u.b.WriteByteView(line.TrimNewline())
	if color != "" {
		u.b.WriteString(colorReset)
	}
	u.b.WriteString("\n")
	if missing {
		u.b.WriteString(missingNewline)
	}
}
