package sihsort

import (
	"golang.org/x/sync/errgroup"

	"github.com/daviszhen/sihsort/pkg/sihsort/sortutil"
)

// histogramKeys computes, for each probe, the count of sortedKeys that
// precede or tie it under less: invoked once against the sample vector and
// once against the splitter vector, both times with sortedKeys = this
// rank's projected local keys. Each probe's count only reads sortedKeys, so
// the probes fan out across an errgroup rather than running serially.
func histogramKeys[K any](sortedKeys []K, probes []K, less func(a, b K) bool) []int64 {
	out := make([]int64, len(probes))
	if len(probes) == 0 {
		return out
	}
	var g errgroup.Group
	for i := range probes {
		i := i
		g.Go(func() error {
			out[i] = int64(sortutil.CountLessOrEqual(sortedKeys, probes[i], less))
			return nil
		})
	}
	_ = g.Wait() // the closures above never return an error
	return out
}
