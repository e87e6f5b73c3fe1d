// diff is a small CLI to manually run the diffing implementations used for benchmarking.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/tools/txtar"
	"znkr.io/lcsdiff/internal/benchmarks"
)

type config struct {
	lib   string
	x, y  string
	txtar string
	count bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.lib, "lib", "lcsdiff", "library to use for diffing")
	flag.StringVar(&cfg.txtar, "txtar", "", "use testdata txtar file instead of two input files")
	flag.BoolVar(&cfg.count, "count", false, "print the number of edits instead of the diff")
	flag.Parse()

	if cfg.txtar != "" {
		if flag.CommandLine.NArg() != 0 {
			fmt.Fprintf(os.Stderr, "error: usage: diff -txtar <file>\n")
			os.Exit(1)
		}
	} else {
		if flag.CommandLine.NArg() != 2 {
			fmt.Fprintf(os.Stderr, "error: usage: diff <x> <y>\n")
			os.Exit(1)
		}
		cfg.x = flag.CommandLine.Arg(0)
		cfg.y = flag.CommandLine.Arg(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	lib, ok := benchmarks.Lookup(cfg.lib)
	if !ok {
		names := make([]string, len(benchmarks.Impls))
		for i, impl := range benchmarks.Impls {
			names[i] = impl.Name
		}
		return fmt.Errorf("lib not found %q, available: %s", cfg.lib, strings.Join(names, ", "))
	}

	x, y, err := load(cfg)
	if err != nil {
		return err
	}

	out := lib.Diff(x, y)
	if cfg.count {
		_, err = fmt.Println(benchmarks.CountEdits(out))
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

func load(cfg config) (x, y []byte, err error) {
	if cfg.txtar == "" {
		if x, err = os.ReadFile(cfg.x); err != nil {
			return nil, nil, err
		}
		if y, err = os.ReadFile(cfg.y); err != nil {
			return nil, nil, err
		}
		return x, y, nil
	}

	ar, err := txtar.ParseFile(cfg.txtar)
	if err != nil {
		return nil, nil, err
	}
	for _, f := range ar.Files {
		switch f.Name {
		case "x":
			x = f.Data
		case "y":
			y = f.Data
		}
	}
	return x, y, nil
}
