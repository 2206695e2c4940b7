package sihsort

import (
	"math"

	"github.com/daviszhen/sihsort/pkg/sihsort/sortutil"
)

func int64Less(a, b int64) bool { return a < b }

// selectSplitters picks P-1 splitter keys from the sorted global sample
// vector and its cumulative histogram, one per target partition boundary.
// Root-only: every other rank only ever sees the result, via a broadcast.
func selectSplitters[K any](samples []K, hist []int64, n int64, p int, less func(a, b K) bool, numeric *NumericOps[K]) []K {
	ktotal := len(samples)
	x := make([]K, p-1)
	for i := 1; i < p; i++ {
		// Nearest-integer rounding of i*N/P; ties away from zero, matching
		// the plain math.Round contract. The quotient is computed in
		// float64 and stored as int64; it is exact while i*N stays below
		// 2^53.
		pi := int64(math.Round(float64(i) * float64(n) / float64(p)))

		c := sortutil.SearchSortedLast(hist[:ktotal], pi, int64Less)

		if numeric != nil && c >= 0 && c < ktotal-1 {
			x0, y0 := samples[c], hist[c]
			x1, y1 := samples[c+1], hist[c+1]
			if y1 == y0 {
				x[i-1] = x0
				continue
			}
			t := float64(pi-y0) / float64(y1-y0)
			delta := numeric.Sub(x1, x0)
			x[i-1] = numeric.Add(x0, numeric.Scale(delta, t))
			continue
		}

		// Non-numeric K, or c landed on the last sample or before the
		// first one: fall back to the nearest sample itself. c == -1 means
		// p_i precedes every sample's cumulative count; clamp to the
		// first sample rather than leaving a gap.
		idx := c
		if idx < 0 {
			idx = 0
		}
		if idx >= ktotal {
			idx = ktotal - 1
		}
		x[i-1] = samples[idx]
	}
	return x
}
