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

package sorting

import (
	"slices"
	"time"

	"github.com/sgreen/go-bidsort/bid"
)

// Algorithm selects one of the sorting implementations.
type Algorithm int

const (
	Selection Algorithm = iota
	Quick
	Merge
	Heap
)

// Algorithms lists every algorithm in menu order.
var Algorithms = []Algorithm{Selection, Quick, Merge, Heap}

// String returns the display name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Selection:
		return "Selection Sort"
	case Quick:
		return "Quick Sort"
	case Merge:
		return "Merge Sort"
	case Heap:
		return "Heap Sort"
	}
	return "Unknown"
}

// Complexity returns the asymptotic time complexity label.
func (a Algorithm) Complexity() string {
	if a == Selection {
		return "O(n^2)"
	}
	return "O(n log n)"
}

// Sort runs the algorithm over the whole slice. The bounded algorithms
// (quick, merge) are normalized to the whole-slice shape here so callers
// never branch on parameter signatures.
func (a Algorithm) Sort(bids []bid.Bid) {
	if len(bids) == 0 {
		return
	}
	switch a {
	case Selection:
		SelectionSort(bids)
	case Quick:
		QuickSort(bids, 0, len(bids)-1)
	case Merge:
		MergeSort(bids, 0, len(bids)-1)
	case Heap:
		HeapSort(bids)
	}
}

// Result is one timed sorting trial.
type Result struct {
	Algorithm Algorithm
	Size      int
	Elapsed   time.Duration
}

// Millis returns the elapsed time in fractional milliseconds.
func (r Result) Millis() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// Benchmark times algo over a private copy of bids; the caller's slice is
// never reordered. An empty input returns a zero result without invoking
// the algorithm.
func Benchmark(algo Algorithm, bids []bid.Bid) Result {
	if len(bids) == 0 {
		return Result{Algorithm: algo}
	}

	data := slices.Clone(bids)
	start := time.Now()
	algo.Sort(data)
	return Result{
		Algorithm: algo,
		Size:      len(data),
		Elapsed:   time.Since(start),
	}
}

// BenchmarkAll times every algorithm back-to-back, each over its own copy.
func BenchmarkAll(bids []bid.Bid) []Result {
	results := make([]Result, 0, len(Algorithms))
	for _, algo := range Algorithms {
		results = append(results, Benchmark(algo, bids))
	}
	return results
}
