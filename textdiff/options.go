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

package textdiff

import (
	"znkr.io/lcsdiff"
	"znkr.io/lcsdiff/internal/config"
	"znkr.io/lcsdiff/textdiff/color"
)

// TerminalColors colors the output of [Unified] using ANSI escape sequences.
//
// Without any options, hunk headers are cyan, deletions red, insertions green, and matches are
// not colored. The options override these defaults.
func TerminalColors(opts ...color.Option) lcsdiff.Option {
	return func(cfg *config.Config) config.Flag {
		var cc config.ColorConfig
		defaults := []color.Option{
			color.HunkHeaders(color.Cyan),
			color.Deletes(color.Red),
			color.Inserts(color.Green),
		}
		for _, opt := range append(defaults, opts...) {
			opt(&cc)
		}
		cfg.Colors = cc
		return config.TerminalColors
	}
}
