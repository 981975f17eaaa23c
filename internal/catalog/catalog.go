// Package catalog provides star catalog records and file loading.
package catalog

// Star represents a cataloged star position.
type Star struct {
	ID     int     // Catalog identifier (e.g., Tycho record number)
	RAdeg  float64 // Right Ascension in degrees (J2000)
	DecDeg float64 // Declination in degrees (J2000)
}

// Catalog is an immutable ordered collection of star positions.
// It is built once by the loader and read-only thereafter; the compute
// engine borrows it without mutation, so no locking is required.
type Catalog struct {
	stars []Star
}

// New creates a catalog from a slice of stars. The slice is not copied;
// the caller must not mutate it afterwards.
func New(stars []Star) Catalog {
	return Catalog{stars: stars}
}

// Len returns the number of stars in the catalog.
func (c Catalog) Len() int {
	return len(c.stars)
}

// At returns the star at index i. Insertion order is input order.
func (c Catalog) At(i int) Star {
	return c.stars[i]
}

// Stars returns the underlying star slice. Callers must treat it as
// read-only.
func (c Catalog) Stars() []Star {
	return c.stars
}
