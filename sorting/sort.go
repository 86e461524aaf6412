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

import "github.com/sgreen/go-bidsort/bid"

// SelectionSort orders bids ascending by title.
// O(n^2) comparisons in all cases; O(1) extra space.
func SelectionSort(bids []bid.Bid) {
	for i := 0; i < len(bids)-1; i++ {
		min := i
		for j := i + 1; j < len(bids); j++ {
			if bids[j].Title < bids[min].Title {
				min = j
			}
		}
		if min != i {
			bids[i], bids[min] = bids[min], bids[i]
		}
	}
}

// QuickSort orders bids[begin..end] ascending by title. Bounds are
// inclusive; the call is a no-op unless begin < end.
// Average O(n log n), worst case O(n^2); O(log n) recursion depth.
func QuickSort(bids []bid.Bid, begin, end int) {
	if end <= begin {
		return
	}

	split := partition(bids, begin, end)

	// The pivot is captured by value, so the split point can land on
	// begin. Recurse only into ranges that strictly shrank.
	if split > begin {
		QuickSort(bids, begin, split)
	}
	if split < end {
		QuickSort(bids, split+1, end)
	}
}

// partition rearranges bids[begin..end] around the middle element's title
// and returns the index of the last element of the low half.
func partition(bids []bid.Bid, begin, end int) int {
	low := begin
	high := end
	pivot := bids[low+(high-low)/2].Title

	for {
		for bids[low].Title < pivot {
			low++
		}
		for pivot < bids[high].Title {
			high--
		}
		if high <= low {
			return high
		}

		bids[low], bids[high] = bids[high], bids[low]
		low++
		high--
	}
}

// HeapSort orders bids ascending by title using an in-place max-heap.
// O(n log n) in all cases; O(1) extra space.
func HeapSort(bids []bid.Bid) {
	n := len(bids)
	if n <= 1 {
		return
	}

	// Build max-heap from the last internal node down.
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(bids, i, n)
	}

	// Repeatedly move the maximum to the end and shrink the heap.
	for i := n - 1; i > 0; i-- {
		bids[0], bids[i] = bids[i], bids[0]
		siftDown(bids, 0, i)
	}
}

func siftDown(bids []bid.Bid, i, n int) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && bids[left].Title > bids[largest].Title {
			largest = left
		}
		if right < n && bids[right].Title > bids[largest].Title {
			largest = right
		}
		if largest == i {
			return
		}

		bids[i], bids[largest] = bids[largest], bids[i]
		i = largest
	}
}
