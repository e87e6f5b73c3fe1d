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

// Package lcs computes edit scripts from longest common subsequences.
//
// The default algorithm builds the dense dynamic programming table of LCS lengths for all prefix
// pairs of x and y and walks it back from the bottom right corner. Time and space complexity are
// O(NM) where N = len(x) and M = len(y).
//
// The walk uses a fixed tie-break: a match is always taken when the current elements are equal.
// Otherwise, an element of y is consumed if that doesn't shorten the LCS (table[i][j-1] >=
// table[i-1][j]), and an element of x is consumed otherwise. Because the walk runs backwards,
// this places insertions after deletions within a block of changes whenever both are possible.
//
// The resulting script has len(x) + len(y) - LCS(x, y) entries.
//
// With [config.Config.LinearSpace], Hirschberg's divide and conquer algorithm is used instead.
// It needs O(M) working memory and also finds a longest common subsequence, but it may pick a
// different one when several exist.
package lcs
