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

import "github.com/tidwall/btree"

// BTreeSort sorts data in place by inserting every element into an ordered
// B-tree and draining it back out in order: a second, structurally
// different local-sort algorithm tag alongside Sort, selectable without
// supplying a user-provided sort function.
//
// Unlike Sort (introsort), this is stable and tolerates heavy key
// duplication without any special-casing, at the cost of O(n log n)
// allocation-heavy tree operations instead of in-place swaps.
func BTreeSort[T any](data []T, less func(a, b T) bool) {
	if len(data) < 2 {
		return
	}
	tr := btree.NewBTreeG[indexed[T]](func(a, b indexed[T]) bool {
		if less(a.val, b.val) {
			return true
		}
		if less(b.val, a.val) {
			return false
		}
		return a.seq < b.seq // stabilize ties by insertion order
	})
	for i, v := range data {
		tr.Set(indexed[T]{val: v, seq: i})
	}
	i := 0
	tr.Scan(func(item indexed[T]) bool {
		data[i] = item.val
		i++
		return true
	})
}

type indexed[T any] struct {
	val T
	seq int
}
