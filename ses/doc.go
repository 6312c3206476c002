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

// Package ses computes shortest edit scripts between two slices.
//
// The implementation is the O(NP) algorithm by Wu, Manber, Myers and Miller. It always finds a
// minimal script, there are no heuristics that trade diff quality for speed.
//
// # The O(NP) Algorithm
//
// Like Myers' algorithm, O(NP) is a search for a minimum-cost path through the edit graph from
// (0,0) to (M,N), where M = len(x) and N = len(y). A step right deletes an element of x, a step
// down inserts an element of y and a diagonal step, which is free, matches two equal elements.
// We use x for the horizontal and y for the vertical coordinate and k = y - x for diagonals.
//
// The algorithm requires M <= N, so the inputs are swapped if x is the longer one. The result is
// swapped back when the edit script is produced.
//
// Let delta = N - M be the diagonal that ends in (M,N). Every path to (M,N) needs at least delta
// insertions. Any further insertion requires a matching deletion, which moves the path to a
// diagonal below delta and back (or above delta and back). If P is the number of deletions, a
// path has D = delta + 2P edits. Instead of iterating over D, the algorithm iterates over P and
// computes the furthest reaching point fp[k] on all diagonals in [-P, delta+P] that is reachable
// with P deletions:
//
//	fp[k] = snake(k, max(fp[k-1]+1, fp[k+1]))
//
// where snake follows the diagonal k from row y for as long as the elements match. The diagonals
// below delta are computed in ascending order and the ones above delta in descending order, so
// that both neighbours are always up-to-date. The diagonal delta is computed last, because it
// depends on both sides. The search terminates as soon as fp[delta] == N.
//
// The runtime is O((M+N)P), which is significantly better than O((M+N)D) for inputs of very
// different size.
//
// # Recovering the Path
//
// Every snake records its end point together with a reference to the point it started from (the
// furthest point on the predecessor diagonal). Points are stored in a single slice and the
// reference is an index into that slice, -1 marks the start of the path. When both predecessors
// reach the same row, the one on diagonal k-1 is preferred. This tie-break is part of the API: it
// determines the order of insertions and deletions in ambiguous regions.
//
// Consecutive points on the path are separated by one or more steps of a single kind followed by a
// run of matches. Comparing the diagonal of the next point with the diagonal of the cursor tells
// which kind of step is needed.
//
// ## References:
//
// Wu, S., Manber, U., Myers, G., Miller, W. An O(NP) sequence comparison algorithm. Information
// Processing Letters, Volume 35, Issue 6, 317-323 (1990).
// https://doi.org/10.1016/0020-0190(90)90035-V
package ses
