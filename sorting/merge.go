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

// MergeSort orders bids[left..right] ascending by title. Bounds are
// inclusive; the call is a no-op unless left < right. The merge prefers the
// left half on equal titles, which makes the sort stable.
// O(n log n) in all cases; O(n) auxiliary space.
func MergeSort(bids []bid.Bid, left, right int) {
	if left >= right {
		return
	}

	mid := left + (right-left)/2
	MergeSort(bids, left, mid)
	MergeSort(bids, mid+1, right)
	merge(bids, left, mid, right)
}

// merge combines the sorted halves bids[left..mid] and bids[mid+1..right].
func merge(bids []bid.Bid, left, mid, right int) {
	lo := make([]bid.Bid, mid-left+1)
	hi := make([]bid.Bid, right-mid)
	copy(lo, bids[left:mid+1])
	copy(hi, bids[mid+1:right+1])

	i, j, k := 0, 0, left
	for i < len(lo) && j < len(hi) {
		if lo[i].Title <= hi[j].Title {
			bids[k] = lo[i]
			i++
		} else {
			bids[k] = hi[j]
			j++
		}
		k++
	}

	for i < len(lo) {
		bids[k] = lo[i]
		i++
		k++
	}
	for j < len(hi) {
		bids[k] = hi[j]
		j++
		k++
	}
}
