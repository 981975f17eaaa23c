// Command ls-starsep computes minimum, maximum, and mean angular separation
// across all unique star pairs of a catalog, in parallel.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-starsep/internal/catalog"
	"github.com/litescript/ls-starsep/internal/logging"
	"github.com/litescript/ls-starsep/internal/pairwise"
	"github.com/litescript/ls-starsep/internal/report"
	"github.com/litescript/ls-starsep/internal/state"
	"github.com/litescript/ls-starsep/internal/ui"
)

// CLI flags
var (
	filePath   string
	workers    int
	tuiMode    bool
	jsonPath   string
	skyMode    bool
	brightMode bool
)

// sendInterval throttles progress pushes into the TUI event loop.
const sendInterval = 80 * time.Millisecond

func main() {
	flag.StringVar(&filePath, "file", catalog.DefaultPath, "Catalog file (whitespace-separated: ID RA Dec)")
	flag.IntVar(&workers, "t", 1, "Number of parallel workers")
	flag.BoolVar(&tuiMode, "tui", false, "Show live progress UI")
	flag.StringVar(&jsonPath, "json", "", "Export JSON result to file (use - for stdout)")
	flag.BoolVar(&skyMode, "sky", false, "Print ASCII sky map of the catalog")
	flag.BoolVar(&brightMode, "bright", false, "Use the built-in bright star catalog instead of -file")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	// Set up logging
	logger := logging.New(logging.ParseLevel(*logLevel))

	// Load the catalog once; the engine borrows it read-only.
	var cat catalog.Catalog
	if brightMode {
		cat = catalog.BrightStars()
		filePath = "builtin:bright-stars"
	} else {
		var err error
		cat, err = catalog.NewLoader(catalog.WithComment("#")).Load(filePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	logger.Info("%d records read from %s", cat.Len(), filePath)

	if skyMode {
		report.WriteSkyMap(os.Stdout, cat, report.DefaultSkyMapConfig())
		fmt.Println()
	}

	// TUI needs a terminal; fall back to headless otherwise.
	if tuiMode && term.IsTerminal(int(os.Stdout.Fd())) {
		runTUI(cat, logger)
		return
	}
	if tuiMode {
		logger.Warn("stdout is not a terminal, running headless")
	}

	runHeadless(cat, logger)
}

// runHeadless computes and reports without starting the TUI.
func runHeadless(cat catalog.Catalog, logger *logging.Logger) {
	logger.Debug("computing with %d workers", workers)

	stats, err := pairwise.Compute(cat, workers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	res := report.Result{
		CatalogPath: filePath,
		Records:     cat.Len(),
		Workers:     workers,
		Stats:       stats,
		FinishedAt:  time.Now(),
	}

	report.WriteSummary(os.Stdout, res)

	if err := exportJSON(res); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runTUI computes in a background goroutine while the Bubble Tea program
// renders live per-worker progress.
func runTUI(cat catalog.Catalog, logger *logging.Logger) {
	stateMgr := state.NewManager()
	stateMgr.Start(filePath, cat.Len(), workers)

	p := tea.NewProgram(ui.New(stateMgr), tea.WithAltScreen())

	go runCompute(cat, stateMgr, p, logger.WithPrefix("engine"))

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	// Repeat the result on plain stdout once the alt screen is gone.
	snap := stateMgr.Snapshot()
	switch snap.Phase {
	case state.PhaseDone:
		res := report.Result{
			CatalogPath: filePath,
			Records:     cat.Len(),
			Workers:     workers,
			Stats:       snap.Stats,
			FinishedAt:  time.Now(),
		}
		report.WriteSummary(os.Stdout, res)
		if err := exportJSON(res); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case state.PhaseFailed:
		fmt.Fprintf(os.Stderr, "Error: %v\n", snap.Err)
		os.Exit(1)
	}
}

// runCompute drives the engine and publishes progress into the state
// manager and the TUI event loop.
func runCompute(cat catalog.Catalog, stateMgr *state.Manager, p *tea.Program, logger *logging.Logger) {
	logger.Debug("starting %d workers over %d records", workers, cat.Len())

	var lastSent time.Time
	stats, err := pairwise.Compute(cat, workers, pairwise.WithProgress(func(prog pairwise.Progress) {
		stateMgr.UpdateProgress(prog)
		// The engine serializes callbacks, so lastSent needs no lock.
		if prog.Done || time.Since(lastSent) >= sendInterval {
			lastSent = time.Now()
			p.Send(ui.ProgressMsg{Snapshot: stateMgr.Snapshot()})
		}
	}))
	if err != nil {
		logger.Error("compute failed: %v", err)
		stateMgr.Fail(err)
		p.Send(ui.DoneMsg{Snapshot: stateMgr.Snapshot()})
		return
	}

	logger.Debug("compute complete: %d pairs in %v", stats.Pairs, stats.Elapsed)
	stateMgr.Finish(stats)
	p.Send(ui.DoneMsg{Snapshot: stateMgr.Snapshot()})
}

// exportJSON writes the result JSON to the -json destination, if set.
func exportJSON(res report.Result) error {
	if jsonPath == "" {
		return nil
	}

	export := report.ExportResult(res)
	if jsonPath == "-" {
		if err := export.WriteJSON(os.Stdout); err != nil {
			return fmt.Errorf("write JSON to stdout: %w", err)
		}
		return nil
	}

	f, err := os.Create(jsonPath)
	if err != nil {
		return fmt.Errorf("create JSON file: %w", err)
	}
	defer f.Close()
	if err := export.WriteJSON(f); err != nil {
		return fmt.Errorf("write JSON to file: %w", err)
	}
	return nil
}
