package sihsort

// Device is the accelerator-bridge capability: when a rank's local array
// lives off-host, it offers vectorized device-side sample projection and
// device-side probing instead of the host implementations in
// sampler.go/histogram.go. The dispatch lives at the sampler/histogrammer
// call sites only, so the driver stays free of any device awareness.
type Device[E any, K any] interface {
	// ProjectSamples evaluates By on v at the given indices device-side
	// and returns the resulting keys, already transferred to the host.
	ProjectSamples(v []E, indices []int, by func(E) K) []K
	// SearchSortedLast runs CountLessOrEqual-equivalent probes
	// device-side against v (already sorted under less) and returns one
	// count per probe, transferred to the host.
	SearchSortedLast(v []E, probes []K, by func(E) K, less func(a, b K) bool) []int64
}

// sampleKeysWithDevice is sampleKeys's device-aware entry point: it uses
// dev when non-nil, and falls back to the plain host path from
// sampler.go otherwise.
func sampleKeysWithDevice[E any, K any](dev Device[E, K], v []E, count int, order Order[E, K]) []K {
	if dev == nil {
		return sampleKeys(v, count, order)
	}
	n := len(v)
	ls := IntLinSpace{Start: 0, Stop: n - 1, Length: count}
	indices := make([]int, count)
	for i := range indices {
		indices[i] = ls.At(i)
	}
	return dev.ProjectSamples(v, indices, order.By)
}

// histogramKeysWithDevice is histogramKeys's device-aware entry point.
func histogramKeysWithDevice[E any, K any](dev Device[E, K], v []E, probes []K, order Order[E, K]) []int64 {
	if dev == nil {
		return histogramKeys(localKeys(v, order), probes, order.LessKey)
	}
	return dev.SearchSortedLast(v, probes, order.By, order.LessKey)
}
