// Package benchmarks compares lcsdiff with other Go diff libraries.
package benchmarks

import (
	"bytes"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/lcsdiff"
	"znkr.io/lcsdiff/textdiff"
)

// Impl is a line diff implementation under comparison. Diff returns a unified diff or something
// close enough to count the changed lines.
type Impl struct {
	Name string
	Diff func(x, y []byte) []byte
}

var Impls = []Impl{
	{
		Name: "lcsdiff",
		Diff: func(x, y []byte) []byte {
			return textdiff.Unified(x, y)
		},
	},
	{
		Name: "lcsdiff-linear",
		Diff: func(x, y []byte) []byte {
			return textdiff.Unified(x, y, lcsdiff.LinearSpace())
		},
	},
	{
		Name: "go-internal",
		Diff: func(x, y []byte) []byte {
			return gointernal.Diff("x", x, "y", y)
		},
	},
	{
		Name: "diffmatchpatch",
		Diff: diffmatchpatchLines,
	},
	{
		Name: "godebug",
		Diff: func(x, y []byte) []byte {
			return []byte(godebug.Diff(string(x), string(y)))
		},
	},
	{
		Name: "mb0",
		Diff: mb0Lines,
	},
	{
		Name: "udiff",
		Diff: func(x, y []byte) []byte {
			return []byte(udiff.Unified("x", "y", string(x), string(y)))
		},
	},
}

// Lookup returns the implementation with the given name.
func Lookup(name string) (Impl, bool) {
	for _, impl := range Impls {
		if impl.Name == name {
			return impl, true
		}
	}
	return Impl{}, false
}

// CountEdits counts the inserted and deleted lines in a diff produced by one of the Impls.
func CountEdits(out []byte) int {
	n := 0
	for line := range bytes.SplitSeq(out, []byte("\n")) {
		if bytes.HasPrefix(line, []byte("+++ ")) || bytes.HasPrefix(line, []byte("--- ")) {
			continue
		}
		if bytes.HasPrefix(line, []byte{'+'}) || bytes.HasPrefix(line, []byte{'-'}) {
			n++
		}
	}
	return n
}

func diffmatchpatchLines(x, y []byte) []byte {
	dmp := diffmatchpatch.New()
	rx, ry, lines := dmp.DiffLinesToRunes(string(x), string(y))
	diffs := dmp.DiffMainRunes(rx, ry, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var buf bytes.Buffer
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
		}
	}
	return buf.Bytes()
}

func mb0Lines(x, y []byte) []byte {
	d := mb0lines{
		x: bytes.SplitAfter(x, []byte("\n")),
		y: bytes.SplitAfter(y, []byte("\n")),
	}
	var buf bytes.Buffer
	a := 0
	for _, ch := range mb0.Diff(len(d.x), len(d.y), d) {
		for ; a < ch.A; a++ {
			buf.WriteString(" ")
			buf.Write(d.x[a])
		}
		for i := range ch.Del {
			buf.WriteString("-")
			buf.Write(d.x[ch.A+i])
		}
		a += ch.Del
		for i := range ch.Ins {
			buf.WriteString("+")
			buf.Write(d.y[ch.B+i])
		}
	}
	for ; a < len(d.x); a++ {
		buf.WriteString(" ")
		buf.Write(d.x[a])
	}
	return buf.Bytes()
}

type mb0lines struct {
	x [][]byte
	y [][]byte
}

func (d mb0lines) Equal(i, j int) bool { return bytes.Equal(d.x[i], d.y[j]) }
