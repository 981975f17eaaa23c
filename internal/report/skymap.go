package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/litescript/ls-starsep/internal/catalog"
)

// Density glyphs, sparsest first.
var densityGlyphs = []rune{'·', '∶', '✶', '✸', '█'}

// SkyMapConfig controls the ASCII sky map dimensions.
type SkyMapConfig struct {
	Width  int // Grid columns (RA axis)
	Height int // Grid rows (Dec axis)
}

// DefaultSkyMapConfig returns a map sized for an 80-column terminal.
func DefaultSkyMapConfig() SkyMapConfig {
	return SkyMapConfig{Width: 72, Height: 18}
}

// WriteSkyMap writes an ASCII density map of the catalog to the given
// writer. Columns span RA 360°→0° (east left, astronomical convention),
// rows span Dec +90° (top) to -90° (bottom). Cell glyphs darken with the
// number of stars that land in the cell.
func WriteSkyMap(w io.Writer, cat catalog.Catalog, cfg SkyMapConfig) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg = DefaultSkyMapConfig()
	}

	counts := make([][]int, cfg.Height)
	for i := range counts {
		counts[i] = make([]int, cfg.Width)
	}

	maxCount := 0
	for _, s := range cat.Stars() {
		col := int((360 - s.RAdeg) / 360 * float64(cfg.Width))
		row := int((90 - s.DecDeg) / 180 * float64(cfg.Height))
		if col < 0 {
			col = 0
		} else if col >= cfg.Width {
			col = cfg.Width - 1
		}
		if row < 0 {
			row = 0
		} else if row >= cfg.Height {
			row = cfg.Height - 1
		}
		counts[row][col]++
		if counts[row][col] > maxCount {
			maxCount = counts[row][col]
		}
	}

	fmt.Fprintf(w, "Sky map · %d stars\n", cat.Len())
	fmt.Fprintf(w, "┌%s┐\n", strings.Repeat("─", cfg.Width))

	for row := 0; row < cfg.Height; row++ {
		var b strings.Builder
		b.WriteRune('│')
		for col := 0; col < cfg.Width; col++ {
			b.WriteRune(glyphForCount(counts[row][col], maxCount))
		}
		b.WriteRune('│')

		// Dec labels at top, middle, and bottom rows
		switch row {
		case 0:
			b.WriteString(" +90°")
		case cfg.Height / 2:
			b.WriteString("   0°")
		case cfg.Height - 1:
			b.WriteString(" -90°")
		}

		fmt.Fprintln(w, b.String())
	}

	fmt.Fprintf(w, "└%s┘\n", strings.Repeat("─", cfg.Width))
	fmt.Fprintf(w, "360°%sRA 0°\n", strings.Repeat(" ", max(cfg.Width-8, 1)))
}

// glyphForCount picks a density glyph for a cell.
func glyphForCount(count, maxCount int) rune {
	if count == 0 {
		return ' '
	}
	if maxCount <= 1 {
		return densityGlyphs[0]
	}

	// Scale linearly into the glyph ramp
	idx := count * len(densityGlyphs) / (maxCount + 1)
	if idx >= len(densityGlyphs) {
		idx = len(densityGlyphs) - 1
	}
	return densityGlyphs[idx]
}
