// Copyright 2023-2024 daviszhen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sortutil

// SearchSortedLast returns the largest index i such that sorted[i] precedes
// or ties probe under less (less(probe, sorted[i]) is false), or -1 if
// sorted is empty or every element strictly follows probe. sorted must
// already be ordered under less - the same order the local sorter produced
// and the same order every other probe against it uses, or the binary
// search below has no basis to narrow its range.
func SearchSortedLast[T any](sorted []T, probe T, less func(a, b T) bool) int {
	// lo..hi is the half-open range of indices that might still be the
	// answer; i is the first index where probe < sorted[i], so i-1 is the
	// last index where sorted[i-1] <= probe.
	lo, hi := 0, len(sorted)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if less(probe, sorted[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo - 1
}

// CountLessOrEqual returns the number of elements of sorted that are <=
// probe under less - equivalently SearchSortedLast(sorted, probe, less)+1.
// This is the histogram bucket count a distributed partition step needs:
// how many of this rank's locally sorted elements fall at or before a
// given split point.
func CountLessOrEqual[T any](sorted []T, probe T, less func(a, b T) bool) int {
	return SearchSortedLast(sorted, probe, less) + 1
}
