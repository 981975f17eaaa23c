// Package pairwise computes min/max/mean angular separation statistics
// over all unique unordered pairs of a star catalog, fanning the O(n²)
// pair space out across parallel workers.
package pairwise

import (
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/litescript/ls-starsep/internal/astro"
	"github.com/litescript/ls-starsep/internal/catalog"
)

var (
	// ErrInvalidWorkerCount is returned when the requested worker count
	// is zero or negative. The computation never starts.
	ErrInvalidWorkerCount = errors.New("pairwise: worker count must be at least 1")

	// ErrCatalogTooSmall is returned when the catalog has fewer than two
	// stars and no pair can be formed.
	ErrCatalogTooSmall = errors.New("pairwise: catalog must contain at least two stars")
)

// Option configures a computation.
type Option func(*config)

type config struct {
	onProgress func(Progress)
}

// WithProgress registers a callback invoked as workers advance. Calls are
// serialized by the engine, so fn does not need its own locking. Setting a
// callback adds synchronization to the compute path; leave it unset for
// maximum throughput.
func WithProgress(fn func(Progress)) Option {
	return func(c *config) {
		c.onProgress = fn
	}
}

// Compute evaluates the angular separation of every unique unordered star
// pair in cat using the given number of parallel workers, and returns the
// global minimum, maximum, and mean separation in degrees.
//
// The catalog is shared read-only across workers. Each worker owns a
// contiguous block of outer indices (see PartitionRange) and accumulates
// local statistics with no synchronization; only the fold of each worker's
// min/max into the global extrema takes a lock. Sums and counts are
// combined after all workers have joined, so the mean needs no locking at
// all. There is no cancellation: once started, a computation runs to
// completion.
func Compute(cat catalog.Catalog, workers int, opts ...Option) (Stats, error) {
	if workers <= 0 {
		return Stats{}, ErrInvalidWorkerCount
	}
	n := cat.Len()
	if n < 2 {
		return Stats{}, ErrCatalogTooSmall
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()

	segments := PartitionRange(n, workers)
	locals := make([]LocalStats, workers)

	// Global extrema, folded in as each worker finishes. One mutex covers
	// both fields so min and max always update together.
	extrema := newLocalStats()
	var mu sync.Mutex

	var progressMu sync.Mutex
	report := func(p Progress) {
		if cfg.onProgress == nil {
			return
		}
		progressMu.Lock()
		cfg.onProgress(p)
		progressMu.Unlock()
	}

	var g errgroup.Group
	for w, seg := range segments {
		g.Go(func() error {
			local := runSegment(cat, seg, w, report)
			locals[w] = local

			mu.Lock()
			if local.Count > 0 {
				if local.Min < extrema.Min {
					extrema.Min = local.Min
				}
				if local.Max > extrema.Max {
					extrema.Max = local.Max
				}
			}
			mu.Unlock()
			return nil
		})
	}

	// Join barrier: the only blocking point. Workers cannot fail today,
	// but any future worker error aborts the run with no partial result.
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	// Strictly after the barrier, so plain addition is safe.
	var totalSum float64
	var totalCount uint64
	for _, l := range locals {
		totalSum += l.Sum
		totalCount += l.Count
	}

	return Stats{
		Min:     extrema.Min,
		Max:     extrema.Max,
		Mean:    totalSum / float64(totalCount),
		Pairs:   totalCount,
		Elapsed: time.Since(start),
	}, nil
}

// runSegment evaluates every pair (i, j) with i in the segment and j > i,
// accumulating into a worker-local LocalStats. Reads only the immutable
// catalog; no synchronization on this path.
func runSegment(cat catalog.Catalog, seg Segment, worker int, report func(Progress)) LocalStats {
	n := cat.Len()
	local := newLocalStats()

	for i := seg.Start; i < seg.End; i++ {
		a := cat.At(i)
		for j := i + 1; j < n; j++ {
			b := cat.At(j)
			local.add(astro.AngularDistance(a.RAdeg, a.DecDeg, b.RAdeg, b.DecDeg))
		}
		report(Progress{
			Worker:    worker,
			Segment:   seg,
			RowsDone:  i - seg.Start + 1,
			PairsDone: local.Count,
		})
	}

	report(Progress{
		Worker:    worker,
		Segment:   seg,
		RowsDone:  seg.Len(),
		PairsDone: local.Count,
		Done:      true,
	})

	return local
}
