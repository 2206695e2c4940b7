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

// Below insertionSortThreshold elements insertion sort wins outright; above
// nintherThreshold the pivot is chosen as the median of three medians-of-
// three (a "ninther") rather than a single median of three.
const (
	insertionSortThreshold = 24
	nintherThreshold       = 128
)

// Sort sorts data in place under less, using a generic introsort: quicksort
// with median-of-three/ninther pivot selection, insertion sort for small
// partitions, and a recursion-depth guard that falls back to heapsort on
// adversarial inputs.
func Sort[T any](data []T, less func(a, b T) bool) {
	if len(data) < 2 {
		return
	}
	maxDepth := 2 * log2(len(data))
	introsort(data, less, maxDepth)
}

func log2(n int) int {
	l := 0
	for n > 1 {
		n >>= 1
		l++
	}
	return l
}

func introsort[T any](data []T, less func(a, b T) bool, depth int) {
	for {
		n := len(data)
		if n < insertionSortThreshold {
			insertionSort(data, less)
			return
		}
		if depth == 0 {
			heapsort(data, less)
			return
		}
		depth--

		pivot := choosePivot(data, less)
		data[0], data[pivot] = data[pivot], data[0]
		mid := partition(data, less)

		// Recurse into the smaller half, loop on the larger one: bounds
		// stack depth at O(log n) even without an explicit stack.
		left, right := data[:mid], data[mid+1:]
		if len(left) < len(right) {
			introsort(left, less, depth)
			data = right
		} else {
			introsort(right, less, depth)
			data = left
		}
		if len(data) < 2 {
			return
		}
	}
}

func insertionSort[T any](data []T, less func(a, b T) bool) {
	for i := 1; i < len(data); i++ {
		for j := i; j > 0 && less(data[j], data[j-1]); j-- {
			data[j], data[j-1] = data[j-1], data[j]
		}
	}
}

// choosePivot returns the index of the chosen pivot, using median-of-three
// for small partitions and a ninther (median of three medians-of-three) for
// large ones.
func choosePivot[T any](data []T, less func(a, b T) bool) int {
	n := len(data)
	lo, mid, hi := 0, n/2, n-1
	if n > nintherThreshold {
		step := n / 8
		lo = medianOf3(data, less, lo, lo+step, lo+2*step)
		mid = medianOf3(data, less, mid-step, mid, mid+step)
		hi = medianOf3(data, less, hi-2*step, hi-step, hi)
	}
	return medianOf3(data, less, lo, mid, hi)
}

func medianOf3[T any](data []T, less func(a, b T) bool, a, b, c int) int {
	if less(data[b], data[a]) {
		a, b = b, a
	}
	if less(data[c], data[b]) {
		b, c = c, b
		if less(data[b], data[a]) {
			a, b = b, a
		}
	}
	return b
}

// partition Lomuto-partitions data around data[0] (already the pivot) and
// returns the pivot's final index.
func partition[T any](data []T, less func(a, b T) bool) int {
	pivot := data[0]
	i := 1
	for j := 1; j < len(data); j++ {
		if less(data[j], pivot) {
			data[i], data[j] = data[j], data[i]
			i++
		}
	}
	data[0], data[i-1] = data[i-1], data[0]
	return i - 1
}

// heapsort is introsort's worst-case fallback: guaranteed O(n log n),
// unlike quicksort, so a pathological input that keeps defeating pivot
// selection can't blow the recursion depth budget.
func heapsort[T any](data []T, less func(a, b T) bool) {
	n := len(data)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, less, i, n)
	}
	for end := n - 1; end > 0; end-- {
		data[0], data[end] = data[end], data[0]
		siftDown(data, less, 0, end)
	}
}

func siftDown[T any](data []T, less func(a, b T) bool, root, n int) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && less(data[child], data[child+1]) {
			child++
		}
		if !less(data[root], data[child]) {
			return
		}
		data[root], data[child] = data[child], data[root]
		root = child
	}
}
