// Copyright 2025 go-bidsort Authors
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

// Package sorting implements four classic in-place sorting algorithms over
// bid records, keyed on the bid title, plus a wall-clock benchmarking
// harness for comparing them.
//
// # Algorithms
//
//   - Selection sort: O(n^2) comparisons in all cases, O(1) extra space.
//   - Quicksort: Hoare-style partition around the middle element's title,
//     average O(n log n), worst case O(n^2), O(log n) recursion depth.
//   - Merge sort: stable, O(n log n) in all cases, O(n) auxiliary space.
//   - Heapsort: in-place max-heap, O(n log n) in all cases.
//
// All comparisons are case-sensitive lexical comparisons of the Title
// field. Every algorithm accepts empty and single-element inputs.
//
// # Benchmarking
//
// The Algorithm type normalizes the two call shapes (whole-slice vs
// inclusive begin/end bounds) behind one Sort method, so Benchmark needs no
// per-algorithm branching:
//
//	results := sorting.BenchmarkAll(bids)
//	for _, r := range results {
//	    fmt.Printf("%s: %.3f ms\n", r.Algorithm, r.Millis())
//	}
//
// Benchmark always runs over a private copy of the input, so back-to-back
// trials never contaminate each other.
package sorting
