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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}
	a := write("a", "one\ntwo\nthree\n")
	b := write("b", "one\n2\nthree\n")
	c := write("c", "one\ntwo\nthree\n")

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:     "identical",
			args:     []string{a, c},
			wantCode: exitSame,
		},
		{
			name:       "different",
			args:       []string{a, b},
			wantCode:   exitDiffer,
			wantStdout: "--- " + a + "\n+++ " + b + "\n@@ -1,3 +1,3 @@\n one\n-two\n+2\n three\n",
		},
		{
			name:       "no-context",
			args:       []string{"-U", "0", a, b},
			wantCode:   exitDiffer,
			wantStdout: "--- " + a + "\n+++ " + b + "\n@@ -2,1 +2,1 @@\n-two\n+2\n",
		},
		{
			name:       "linear",
			args:       []string{"-linear", "-color", "never", a, b},
			wantCode:   exitDiffer,
			wantStdout: "--- " + a + "\n+++ " + b + "\n@@ -1,3 +1,3 @@\n one\n-two\n+2\n three\n",
		},
		{
			name:     "colors",
			args:     []string{"-U", "0", "-color", "always", a, b},
			wantCode: exitDiffer,
			wantStdout: "--- " + a + "\n+++ " + b + "\n" +
				"\033[36m@@ -2,1 +2,1 @@\033[0m\n\033[31m-two\033[0m\n\033[32m+2\033[0m\n",
		},
		{
			name:       "missing-argument",
			args:       []string{a},
			wantCode:   exitError,
			wantStderr: "error: usage: lcsdiff [flags] <left> <right>\n",
		},
		{
			name:       "invalid-color",
			args:       []string{"-color", "sometimes", a, b},
			wantCode:   exitError,
			wantStderr: "error: invalid value for -color: \"sometimes\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)
			if code != tt.wantCode {
				t.Errorf("run(%q) = %d, want %d (stderr: %s)", tt.args, code, tt.wantCode, stderr.String())
			}
			if diff := cmp.Diff(tt.wantStdout, stdout.String()); diff != "" {
				t.Errorf("run(%q) stdout is different [-want,+got]:\n%s", tt.args, diff)
			}
			if diff := cmp.Diff(tt.wantStderr, stderr.String()); diff != "" {
				t.Errorf("run(%q) stderr is different [-want,+got]:\n%s", tt.args, diff)
			}
		})
	}
}

func TestRunMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "missing")
	code := run([]string{missing, missing}, &stdout, &stderr)
	if code != exitError {
		t.Errorf("run(...) = %d, want %d", code, exitError)
	}
	if !strings.HasPrefix(stderr.String(), "error: reading left file:") {
		t.Errorf("run(...) stderr = %q, want read error", stderr.String())
	}
}
