package pairwise

import "testing"

func TestPartitionRange(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		workers  int
		expected []Segment
	}{
		{
			name:     "even split",
			n:        8,
			workers:  4,
			expected: []Segment{{0, 2}, {2, 4}, {4, 6}, {6, 8}},
		},
		{
			name:     "remainder to last",
			n:        10,
			workers:  3,
			expected: []Segment{{0, 3}, {3, 6}, {6, 10}},
		},
		{
			name:     "single worker",
			n:        5,
			workers:  1,
			expected: []Segment{{0, 5}},
		},
		{
			name:     "more workers than indices",
			n:        2,
			workers:  4,
			expected: []Segment{{0, 0}, {0, 0}, {0, 0}, {0, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PartitionRange(tt.n, tt.workers)
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d segments, want %d", len(got), len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("segment %d = %+v, want %+v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestPartitionRange_Coverage(t *testing.T) {
	// For a wide sweep of (n, workers): segments are contiguous,
	// non-overlapping, cover [0, n) exactly, and the last End is n.
	for n := 0; n <= 50; n++ {
		for workers := 1; workers <= 8; workers++ {
			segments := PartitionRange(n, workers)

			if len(segments) != workers {
				t.Fatalf("n=%d workers=%d: got %d segments", n, workers, len(segments))
			}

			next := 0
			for i, seg := range segments {
				if seg.Start != next {
					t.Fatalf("n=%d workers=%d: segment %d starts at %d, want %d",
						n, workers, i, seg.Start, next)
				}
				if seg.End < seg.Start {
					t.Fatalf("n=%d workers=%d: segment %d inverted: %+v", n, workers, i, seg)
				}
				next = seg.End
			}
			if next != n {
				t.Errorf("n=%d workers=%d: last End = %d, want %d", n, workers, next, n)
			}
		}
	}
}
