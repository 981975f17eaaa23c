package catalog

import "testing"

func TestBrightStars(t *testing.T) {
	cat := BrightStars()

	if cat.Len() < 2 {
		t.Fatalf("Len() = %d, want at least 2", cat.Len())
	}

	seen := make(map[int]bool)
	for i, s := range cat.Stars() {
		if s.RAdeg < 0 || s.RAdeg >= 360 {
			t.Errorf("star %d RA out of range: %v", i, s.RAdeg)
		}
		if s.DecDeg < -90 || s.DecDeg > 90 {
			t.Errorf("star %d Dec out of range: %v", i, s.DecDeg)
		}
		if seen[s.ID] {
			t.Errorf("duplicate ID %d", s.ID)
		}
		seen[s.ID] = true
	}

	// Sirius leads the catalog
	if s := cat.At(0); s.ID != 1 || s.DecDeg > 0 {
		t.Errorf("first star = %+v, want Sirius", s)
	}
}
