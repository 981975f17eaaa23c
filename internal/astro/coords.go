// Package astro provides celestial coordinate math for star catalogs.
package astro

import "math"

// AngularDistance calculates the great-circle angular separation between two
// points on the celestial sphere using the spherical law of cosines.
// All coordinates in degrees (RA 0-360, Dec -90 to +90). Returns the
// separation in degrees, in the range [0, 180].
//
// Pure function, safe to call concurrently.
func AngularDistance(ra1, dec1, ra2, dec2 float64) float64 {
	// Convert to radians
	ra1Rad := degToRad(ra1)
	dec1Rad := degToRad(dec1)
	ra2Rad := degToRad(ra2)
	dec2Rad := degToRad(dec2)

	// Spherical law of cosines
	cosTheta := math.Sin(dec1Rad)*math.Sin(dec2Rad) +
		math.Cos(dec1Rad)*math.Cos(dec2Rad)*math.Cos(ra1Rad-ra2Rad)

	// Clamp to the acos domain. Rounding can push near-identical or
	// near-antipodal pairs marginally outside [-1, 1], which would
	// otherwise yield NaN.
	if cosTheta > 1 {
		cosTheta = 1
	} else if cosTheta < -1 {
		cosTheta = -1
	}

	return radToDeg(math.Acos(cosTheta))
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
