package pairwise

// Segment is a half-open range [Start, End) of outer catalog indices
// owned by a single worker.
type Segment struct {
	Start int
	End   int
}

// Len returns the number of outer indices in the segment.
func (s Segment) Len() int {
	return s.End - s.Start
}

// PartitionRange splits the index range [0, n) into workers contiguous,
// non-overlapping segments. Each segment gets n/workers indices; the
// remainder is folded into the final segment, so the last End is always n.
//
// Segments may be empty when workers > n. The partition is a pure function
// of (n, workers), which keeps the floating-point summation order, and
// hence the low-order digits of the mean, stable for a given configuration.
//
// Note that for outer index i the inner-pair work is n-1-i comparisons, so
// equal-size index blocks carry unequal pair counts: the first segment does
// the most work. That imbalance is intentional; changing the partition
// would change the summation order.
func PartitionRange(n, workers int) []Segment {
	perWorker := n / workers

	segments := make([]Segment, workers)
	for i := 0; i < workers; i++ {
		segments[i] = Segment{Start: i * perWorker, End: (i + 1) * perWorker}
	}
	segments[workers-1].End = n

	return segments
}
