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

// Package lcsdiff computes the difference between two slices as an edit script based on a longest
// common subsequence (LCS), similar to what the Unix diff command line tool does for files.
//
// The main function is [Slice], which returns one [Entry] for every element of the inputs: an
// element that only exists in the left slice ([Left]), an element that only exists in the right
// slice ([Right]), or a pair of matching elements ([Both]). The left input can be reconstructed
// from the script by collecting the L values of all Left and Both entries, and likewise for the
// right input, see [Sides]. [Hunks] groups the same script into blocks of changes with some
// surrounding context.
//
// The result is deterministic. When more than one longest common subsequence exists, the script
// lists deletions before insertions within a block of changes.
//
// Performance: By default, time and space complexity are O(NM) where N = len(left) and M =
// len(right). With [LinearSpace], space complexity is reduced to O(M) at the cost of roughly
// doubling the run time.
//
// Note: For a line-by-line diff of text, please see [znkr.io/lcsdiff/textdiff].
//
// [znkr.io/lcsdiff/textdiff]: https://pkg.go.dev/znkr.io/lcsdiff/textdiff
package lcsdiff
