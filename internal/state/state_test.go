package state

import (
	"errors"
	"sync"
	"testing"

	"github.com/litescript/ls-starsep/internal/pairwise"
)

func TestManager_Lifecycle(t *testing.T) {
	m := NewManager()

	if snap := m.Snapshot(); snap.Phase != PhaseNotStarted {
		t.Fatalf("initial phase = %v, want %v", snap.Phase, PhaseNotStarted)
	}

	m.Start("stars.csv", 100, 4)
	snap := m.Snapshot()
	if snap.Phase != PhaseRunning {
		t.Errorf("phase = %v, want %v", snap.Phase, PhaseRunning)
	}
	if snap.Records != 100 || len(snap.Workers) != 4 {
		t.Errorf("snapshot = %+v", snap)
	}
	if snap.TotalPairs != 4950 {
		t.Errorf("TotalPairs = %d, want 4950", snap.TotalPairs)
	}

	m.UpdateProgress(pairwise.Progress{
		Worker:    1,
		Segment:   pairwise.Segment{Start: 25, End: 50},
		RowsDone:  10,
		PairsDone: 700,
	})
	snap = m.Snapshot()
	if snap.Workers[1].RowsDone != 10 {
		t.Errorf("worker 1 rows = %d, want 10", snap.Workers[1].RowsDone)
	}
	if snap.PairsDone() != 700 {
		t.Errorf("PairsDone() = %d, want 700", snap.PairsDone())
	}

	stats := pairwise.Stats{Min: 1, Max: 170, Mean: 88, Pairs: 4950}
	m.Finish(stats)
	snap = m.Snapshot()
	if snap.Phase != PhaseDone {
		t.Errorf("phase = %v, want %v", snap.Phase, PhaseDone)
	}
	if snap.Stats != stats {
		t.Errorf("stats = %+v, want %+v", snap.Stats, stats)
	}
}

func TestManager_Fail(t *testing.T) {
	m := NewManager()
	m.Start("stars.csv", 1, 1)

	wantErr := errors.New("boom")
	m.Fail(wantErr)

	snap := m.Snapshot()
	if snap.Phase != PhaseFailed {
		t.Errorf("phase = %v, want %v", snap.Phase, PhaseFailed)
	}
	if !errors.Is(snap.Err, wantErr) {
		t.Errorf("err = %v, want %v", snap.Err, wantErr)
	}
}

func TestManager_IgnoresOutOfRangeWorker(t *testing.T) {
	m := NewManager()
	m.Start("stars.csv", 10, 2)

	m.UpdateProgress(pairwise.Progress{Worker: 7, RowsDone: 3})

	snap := m.Snapshot()
	for i, w := range snap.Workers {
		if w.RowsDone != 0 {
			t.Errorf("worker %d unexpectedly updated: %+v", i, w)
		}
	}
}

func TestManager_ConcurrentUpdates(t *testing.T) {
	m := NewManager()
	m.Start("stars.csv", 1000, 8)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for r := 1; r <= 50; r++ {
				m.UpdateProgress(pairwise.Progress{
					Worker:   worker,
					Segment:  pairwise.Segment{Start: worker * 125, End: (worker + 1) * 125},
					RowsDone: r,
				})
				m.Snapshot()
			}
		}(w)
	}
	wg.Wait()

	snap := m.Snapshot()
	for i, w := range snap.Workers {
		if w.RowsDone != 50 {
			t.Errorf("worker %d rows = %d, want 50", i, w.RowsDone)
		}
	}
}

func TestWorkerProgress_Fraction(t *testing.T) {
	tests := []struct {
		name     string
		wp       WorkerProgress
		expected float64
	}{
		{"empty segment", WorkerProgress{Segment: pairwise.Segment{Start: 5, End: 5}}, 1},
		{"halfway", WorkerProgress{Segment: pairwise.Segment{Start: 0, End: 10}, RowsDone: 5}, 0.5},
		{"complete", WorkerProgress{Segment: pairwise.Segment{Start: 0, End: 4}, RowsDone: 4}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.wp.Fraction(); got != tt.expected {
				t.Errorf("Fraction() = %v, want %v", got, tt.expected)
			}
		})
	}
}
