package sihsort

import (
	"github.com/daviszhen/sihsort/pkg/sihsort/transport"
)

// SortAlgorithm names one of the built-in local-sort strategies a Config can
// select without supplying a user function.
type SortAlgorithm int

const (
	// AlgoDefault is the generic introsort in sortutil.Sort.
	AlgoDefault SortAlgorithm = iota
	// AlgoPDQSort is an explicit alias for AlgoDefault, for callers that
	// want to name the strategy rather than rely on the zero value.
	AlgoPDQSort
	// AlgoBTree sorts through a tidwall/btree ordered tree instead.
	AlgoBTree
)

// Config carries everything a Sort call needs beyond the local array and
// its Order: the communicator, root rank, local-sort strategy, Numeric
// capability, wire codecs, and stats sink.
type Config[E any, K any] struct {
	// Comm is the collective communicator this sort runs over. Required.
	Comm transport.Comm
	// Root names the rank that gathers samples, sorts them, and selects
	// splitters. Defaults to 0.
	Root int

	// SorterFunc, if set, replaces the built-in local sorter entirely: it
	// must sort data in place honoring less. Takes precedence over
	// SorterAlgo.
	SorterFunc func(data []E, less func(a, b E) bool)
	// SorterAlgo selects a built-in local-sort strategy when SorterFunc
	// is nil (the zero value AlgoDefault).
	SorterAlgo SortAlgorithm

	// Numeric supplies the splitter interpolation capability. Leave nil
	// for ordered-only K: the splitter selector then always falls back
	// to the nearest sample.
	Numeric *NumericOps[K]

	// KeyCodec makes K communicable across the gather/broadcast of
	// samples and splitters. Required whenever P > 1.
	KeyCodec KeyCodec[K]
	// ElemCodec makes E communicable across the payload exchange.
	// Required whenever P > 1. E and K often coincide (sorting bare
	// keys), in which case the same codec value can be used for both
	// fields.
	ElemCodec KeyCodec[E]

	// Stats, if non-nil, receives the chosen splitters and final
	// per-rank counts after every collective completes.
	Stats *Stats[K]

	// Device, if non-nil, routes sample extraction and histogram probes
	// through an accelerator bridge instead of the host implementation.
	// Leave nil for host-resident local arrays.
	Device Device[E, K]
}
