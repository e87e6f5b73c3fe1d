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

// Command lcsdiff compares two files line by line and prints the differences in unified format.
//
// Usage:
//
//	lcsdiff [-U n] [-color auto|always|never] [-linear] <left> <right>
//
// The exit status is 0 if the files are identical, 1 if they differ, and 2 if an error occurred.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"znkr.io/lcsdiff"
	"znkr.io/lcsdiff/textdiff"
)

const (
	exitSame   = 0
	exitDiffer = 1
	exitError  = 2
)

type config struct {
	context     int
	color       string
	linear      bool
	left, right string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitSame
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	differ, err := compare(cfg, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
	if differ {
		return exitDiffer
	}
	return exitSame
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("lcsdiff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.context, "U", 3, "number of context lines")
	fs.StringVar(&cfg.color, "color", "auto", "colorize the output: auto, always, or never")
	fs.BoolVar(&cfg.linear, "linear", false, "use the linear space algorithm")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: lcsdiff [flags] <left> <right>\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() != 2 {
		return cfg, fmt.Errorf("usage: lcsdiff [flags] <left> <right>")
	}
	switch cfg.color {
	case "auto", "always", "never":
	default:
		return cfg, fmt.Errorf("invalid value for -color: %q", cfg.color)
	}
	cfg.left, cfg.right = fs.Arg(0), fs.Arg(1)
	return cfg, nil
}

func compare(cfg config, stdout io.Writer) (bool, error) {
	x, err := os.ReadFile(cfg.left)
	if err != nil {
		return false, fmt.Errorf("reading left file: %v", err)
	}
	y, err := os.ReadFile(cfg.right)
	if err != nil {
		return false, fmt.Errorf("reading right file: %v", err)
	}

	opts := []lcsdiff.Option{lcsdiff.Context(cfg.context)}
	if cfg.linear {
		opts = append(opts, lcsdiff.LinearSpace())
	}
	if useColor(cfg.color, stdout) {
		opts = append(opts, textdiff.TerminalColors())
	}

	out := textdiff.Unified(x, y, opts...)
	if len(out) == 0 {
		return false, nil
	}
	if _, err := fmt.Fprintf(stdout, "--- %s\n+++ %s\n", cfg.left, cfg.right); err != nil {
		return true, fmt.Errorf("writing output: %v", err)
	}
	if _, err := stdout.Write(out); err != nil {
		return true, fmt.Errorf("writing output: %v", err)
	}
	return true, nil
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
