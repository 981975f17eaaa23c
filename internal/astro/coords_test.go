package astro

import (
	"math"
	"testing"
)

func TestAngularDistance(t *testing.T) {
	tests := []struct {
		name      string
		ra1, dec1 float64
		ra2, dec2 float64
		expected  float64
		tol       float64
	}{
		{
			name: "identical points",
			ra1:  10, dec1: 20,
			ra2: 10, dec2: 20,
			expected: 0,
			tol:      1e-9,
		},
		{
			name: "equator to pole",
			ra1:  0, dec1: 0,
			ra2: 0, dec2: 90,
			expected: 90,
			tol:      1e-9,
		},
		{
			name: "antipodal on equator",
			ra1:  0, dec1: 0,
			ra2: 180, dec2: 0,
			expected: 180,
			tol:      1e-9,
		},
		{
			name: "pole to pole",
			ra1:  123, dec1: 90,
			ra2: 321, dec2: -90,
			expected: 180,
			tol:      1e-9,
		},
		{
			name: "one degree along equator",
			ra1:  0, dec1: 0,
			ra2: 1, dec2: 0,
			expected: 1,
			tol:      1e-9,
		},
		{
			name: "Sirius to Betelgeuse",
			ra1:  101.287, dec1: -16.716,
			ra2: 88.793, dec2: 7.407,
			expected: 27.08,
			tol:      0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngularDistance(tt.ra1, tt.dec1, tt.ra2, tt.dec2)
			if math.Abs(got-tt.expected) > tt.tol {
				t.Errorf("AngularDistance() = %v, want %v (±%v)", got, tt.expected, tt.tol)
			}
		})
	}
}

func TestAngularDistance_Symmetry(t *testing.T) {
	points := []struct{ ra, dec float64 }{
		{0, 0},
		{101.287, -16.716},
		{279.235, 38.784},
		{359.999, 89.9},
		{180, -45},
	}

	for _, p := range points {
		for _, q := range points {
			d1 := AngularDistance(p.ra, p.dec, q.ra, q.dec)
			d2 := AngularDistance(q.ra, q.dec, p.ra, p.dec)
			if math.Abs(d1-d2) > 1e-12 {
				t.Errorf("asymmetric: d(%v,%v)=%v, d reversed=%v", p, q, d1, d2)
			}
		}
	}
}

func TestAngularDistance_Range(t *testing.T) {
	// Sweep a grid of coordinate pairs; every distance must land in [0, 180]
	// and never be NaN, including degenerate near-identical pairs.
	for ra1 := 0.0; ra1 < 360; ra1 += 45 {
		for dec1 := -90.0; dec1 <= 90; dec1 += 30 {
			for ra2 := 0.0; ra2 < 360; ra2 += 45 {
				for dec2 := -90.0; dec2 <= 90; dec2 += 30 {
					d := AngularDistance(ra1, dec1, ra2, dec2)
					if math.IsNaN(d) {
						t.Fatalf("NaN for (%v,%v)-(%v,%v)", ra1, dec1, ra2, dec2)
					}
					if d < 0 || d > 180 {
						t.Errorf("out of range: d(%v,%v,%v,%v) = %v", ra1, dec1, ra2, dec2, d)
					}
				}
			}
		}
	}
}

func TestAngularDistance_ClampNearIdentical(t *testing.T) {
	// Coordinates differing only in the last few bits can push the law of
	// cosines argument past 1. The clamp must keep the result at exactly 0
	// rather than NaN.
	ra := 233.672
	dec := 26.715
	d := AngularDistance(ra, dec, ra+1e-14, dec)
	if math.IsNaN(d) {
		t.Fatal("clamp failed: got NaN for near-identical coordinates")
	}
	if d > 1e-6 {
		t.Errorf("near-identical distance = %v, want ~0", d)
	}
}

func TestDegRadRoundTrip(t *testing.T) {
	for deg := -180.0; deg <= 360; deg += 13.5 {
		got := radToDeg(degToRad(deg))
		if math.Abs(got-deg) > 1e-12 {
			t.Errorf("round trip %v -> %v", deg, got)
		}
	}
}
