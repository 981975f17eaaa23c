// Package state provides thread-safe run state shared between the compute
// engine and the UI.
package state

import (
	"sync"
	"time"

	"github.com/litescript/ls-starsep/internal/pairwise"
)

// Phase represents the lifecycle of a computation run.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseDone
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhaseRunning:
		return "running"
	case PhaseDone:
		return "done"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// WorkerProgress tracks one worker's advancement through its segment.
type WorkerProgress struct {
	Segment   pairwise.Segment
	RowsDone  int
	PairsDone uint64
	Done      bool
}

// Fraction returns the worker's completion as 0..1 over its outer rows.
// Workers with empty segments report 1.
func (wp WorkerProgress) Fraction() float64 {
	if wp.Segment.Len() == 0 {
		return 1
	}
	return float64(wp.RowsDone) / float64(wp.Segment.Len())
}

// Snapshot is an immutable copy of the run state for rendering.
type Snapshot struct {
	Phase       Phase
	CatalogPath string
	Records     int
	TotalPairs  uint64
	Workers     []WorkerProgress
	Stats       pairwise.Stats
	Err         error
	StartedAt   time.Time
}

// PairsDone sums pairs evaluated across all workers so far.
func (s Snapshot) PairsDone() uint64 {
	var total uint64
	for _, w := range s.Workers {
		total += w.PairsDone
	}
	return total
}

// Manager holds the shared run state with thread-safe access. The engine
// publishes updates from worker goroutines; the UI reads snapshots.
type Manager struct {
	mu sync.RWMutex

	phase       Phase
	catalogPath string
	records     int
	totalPairs  uint64
	workers     []WorkerProgress
	stats       pairwise.Stats
	err         error
	startedAt   time.Time
}

// NewManager creates a manager in the not-started phase.
func NewManager() *Manager {
	return &Manager{phase: PhaseNotStarted}
}

// Start marks the run as started and sizes the per-worker progress table.
func (m *Manager) Start(catalogPath string, records, workers int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := uint64(records)
	m.phase = PhaseRunning
	m.catalogPath = catalogPath
	m.records = records
	m.totalPairs = n * (n - 1) / 2
	m.workers = make([]WorkerProgress, workers)
	m.stats = pairwise.Stats{}
	m.err = nil
	m.startedAt = time.Now()
}

// UpdateProgress records a progress report from the engine.
func (m *Manager) UpdateProgress(p pairwise.Progress) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.Worker < 0 || p.Worker >= len(m.workers) {
		return
	}
	m.workers[p.Worker] = WorkerProgress{
		Segment:   p.Segment,
		RowsDone:  p.RowsDone,
		PairsDone: p.PairsDone,
		Done:      p.Done,
	}
}

// Finish records the final statistics.
func (m *Manager) Finish(stats pairwise.Stats) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.phase = PhaseDone
	m.stats = stats
}

// Fail records a fatal run error.
func (m *Manager) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.phase = PhaseFailed
	m.err = err
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	workers := make([]WorkerProgress, len(m.workers))
	copy(workers, m.workers)

	return Snapshot{
		Phase:       m.phase,
		CatalogPath: m.catalogPath,
		Records:     m.records,
		TotalPairs:  m.totalPairs,
		Workers:     workers,
		Stats:       m.stats,
		Err:         m.err,
		StartedAt:   m.startedAt,
	}
}
