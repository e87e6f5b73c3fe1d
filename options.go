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

import "znkr.io/lcsdiff/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Context sets the number of matches to include as a prefix and postfix for hunks returned in
// [Hunks] and [HunksFunc]. The default is 3.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}

// LinearSpace computes the edit script with Hirschberg's divide and conquer algorithm instead of
// a dense table of LCS lengths. This reduces the memory required from O(NM) to O(M), where N =
// len(left) and M = len(right).
//
// The resulting script is as short as the default one, but when more than one longest common
// subsequence exists, the two algorithms may pick different ones.
func LinearSpace() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.LinearSpace = true
		return config.LinearSpace
	}
}
