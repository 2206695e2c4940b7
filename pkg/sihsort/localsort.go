package sihsort

import "github.com/daviszhen/sihsort/pkg/sihsort/sortutil"

// dispatchSort runs one of the built-in local-sort strategies, the
// algorithm-tag branch of the local-sort adapter. It is used both for
// sorting elements (E) and, on the root rank, for sorting the gathered
// samples (K) - the adapter is defined generically over the sorted type
// for exactly that reason.
func dispatchSort[T any](data []T, less func(a, b T) bool, algo SortAlgorithm) {
	switch algo {
	case AlgoBTree:
		sortutil.BTreeSort(data, less)
	default:
		sortutil.Sort(data, less)
	}
}

// sortElems is the local-sort adapter applied to a rank's local array,
// both before partitioning and again after the payload exchange: a user
// function takes priority, otherwise it dispatches to the configured
// algorithm tag.
func (cfg Config[E, K]) sortElems(data []E, order Order[E, K]) {
	less := order.LessElem
	if cfg.SorterFunc != nil {
		cfg.SorterFunc(data, less)
		return
	}
	dispatchSort(data, less, cfg.SorterAlgo)
}

// sortKeys applies the same adapter to a slice of keys rather than
// elements - used once, on root, to sort the gathered sample vector.
// A user-supplied SorterFunc is defined over E, not K, so it does not
// apply here; only the algorithm tag carries over.
func (cfg Config[E, K]) sortKeys(data []K, less func(a, b K) bool) {
	dispatchSort(data, less, cfg.SorterAlgo)
}
