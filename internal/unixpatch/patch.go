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

// Package unixpatch applies unified diffs with the patch(1) command line tool. It's used to check
// that the output of textdiff.Unified is understood by other tools.
//
// This package is only for testing.
package unixpatch

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Patch applies the unified diff to orig and returns the patched text.
func Patch[T string | []byte](orig, diff T) (T, error) {
	// patch doesn't create an output file for an empty diff.
	if len(diff) == 0 {
		return orig, nil
	}

	var zero T
	dir, err := os.MkdirTemp("", "lcsdiff-patch-*")
	if err != nil {
		return zero, fmt.Errorf("failed to create temporary directory: %v", err)
	}
	defer os.RemoveAll(dir)

	var (
		diffFile = filepath.Join(dir, "diff")
		inFile   = filepath.Join(dir, "in")
		outFile  = filepath.Join(dir, "out")
	)
	for name, data := range map[string][]byte{diffFile: []byte(diff), inFile: []byte(orig)} {
		if err := os.WriteFile(name, data, 0o644); err != nil {
			return zero, fmt.Errorf("failed to write %s: %v", filepath.Base(name), err)
		}
	}

	cmd := exec.Command("patch", "-u", "-i", diffFile, "-o", outFile, inFile)
	if out, err := cmd.CombinedOutput(); err != nil {
		return zero, fmt.Errorf("%s: %v\n%s", strings.Join(cmd.Args, " "), err, out)
	}

	out, err := os.ReadFile(outFile)
	if err != nil {
		return zero, fmt.Errorf("failed to read patched file: %v", err)
	}
	return T(out), nil
}
