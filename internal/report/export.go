package report

import (
	"encoding/json"
	"io"
	"time"
)

// ResultExport is the JSON-serializable representation of a finished run.
type ResultExport struct {
	CatalogPath string    `json:"catalog_path"`
	Records     int       `json:"records"`
	Workers     int       `json:"workers"`
	Pairs       uint64    `json:"pairs"`
	MinDeg      float64   `json:"min_deg"`
	MaxDeg      float64   `json:"max_deg"`
	MeanDeg     float64   `json:"mean_deg"`
	ElapsedSec  float64   `json:"elapsed_seconds"`
	FinishedAt  time.Time `json:"finished_at"`
}

// ExportResult converts a Result to an exportable format.
func ExportResult(res Result) *ResultExport {
	return &ResultExport{
		CatalogPath: res.CatalogPath,
		Records:     res.Records,
		Workers:     res.Workers,
		Pairs:       res.Stats.Pairs,
		MinDeg:      res.Stats.Min,
		MaxDeg:      res.Stats.Max,
		MeanDeg:     res.Stats.Mean,
		ElapsedSec:  res.Stats.Elapsed.Seconds(),
		FinishedAt:  res.FinishedAt,
	}
}

// WriteJSON writes the export as indented JSON to the given writer.
func (e *ResultExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}
