package pairwise

import (
	"math"
	"time"
)

// LocalStats is a per-worker accumulator. Each worker owns exactly one;
// no other goroutine reads or writes it while the worker runs.
type LocalStats struct {
	Min   float64
	Max   float64
	Sum   float64
	Count uint64
}

// newLocalStats returns the neutral accumulator: Min at +Inf so any real
// distance replaces it, everything else zero. A worker with an empty
// segment publishes this value unchanged.
func newLocalStats() LocalStats {
	return LocalStats{Min: math.Inf(1)}
}

// add folds one distance into the accumulator.
func (l *LocalStats) add(distance float64) {
	l.Count++
	l.Sum += distance
	if distance < l.Min {
		l.Min = distance
	}
	if distance > l.Max {
		l.Max = distance
	}
}

// Stats is the final result of a pairwise computation.
type Stats struct {
	Min     float64       // Smallest pair separation in degrees
	Max     float64       // Largest pair separation in degrees
	Mean    float64       // Mean separation in degrees
	Pairs   uint64        // Number of pairs evaluated, n(n-1)/2
	Elapsed time.Duration // Wall-clock compute time
}

// Progress describes one worker's advancement through its segment.
// Delivered via the WithProgress callback after each completed outer
// index, and once more when the worker finishes.
type Progress struct {
	Worker    int    // Worker index, 0-based
	Segment   Segment
	RowsDone  int    // Outer indices completed within the segment
	PairsDone uint64 // Pairs evaluated by this worker so far
	Done      bool   // True on the worker's final report
}
