// Package report renders computation results as text, JSON, and ASCII sky maps.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/litescript/ls-starsep/internal/pairwise"
)

// Result bundles a finished computation with its run parameters for display.
type Result struct {
	CatalogPath string
	Records     int
	Workers     int
	Stats       pairwise.Stats
	FinishedAt  time.Time
}

// WriteSummary writes a text summary of the run to the given writer.
func WriteSummary(w io.Writer, res Result) {
	fmt.Fprintf(w, "Angular separation @ %s\n", res.FinishedAt.Format(time.RFC3339))
	fmt.Fprintln(w, strings.Repeat("─", 48))

	fmt.Fprintf(w, "%-10s %s\n", "Catalog", res.CatalogPath)
	fmt.Fprintf(w, "%-10s %d records\n", "Input", res.Records)
	fmt.Fprintf(w, "%-10s %d\n", "Workers", res.Workers)
	fmt.Fprintf(w, "%-10s %d\n", "Pairs", res.Stats.Pairs)
	fmt.Fprintln(w, strings.Repeat("─", 48))

	fmt.Fprintf(w, "%-10s %.6f°\n", "Minimum", res.Stats.Min)
	fmt.Fprintf(w, "%-10s %.6f°\n", "Maximum", res.Stats.Max)
	fmt.Fprintf(w, "%-10s %.6f°\n", "Mean", res.Stats.Mean)

	fmt.Fprintf(w, "\nComputed in %.3fs\n", res.Stats.Elapsed.Seconds())
}
