// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-starsep/internal/state"
	"github.com/litescript/ls-starsep/internal/version"
)

const tickInterval = 100 * time.Millisecond

// Styles
var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	barFillStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7CFC00"))
	barEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4500")).Bold(true)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic UI refreshes while the run is in flight.
	TickMsg time.Time

	// ProgressMsg signals updated worker progress is available.
	ProgressMsg struct {
		Snapshot state.Snapshot
	}

	// DoneMsg signals the computation finished (successfully or not).
	DoneMsg struct {
		Snapshot state.Snapshot
	}
)

// Model is the root Bubble Tea model: a live view of one computation run.
type Model struct {
	state *state.Manager

	width    int
	height   int
	ready    bool
	snapshot state.Snapshot
}

// New creates a new root UI model.
func New(stateMgr *state.Manager) Model {
	return Model{
		state:    stateMgr,
		snapshot: stateMgr.Snapshot(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			// Enter dismisses the view once the run has settled
			if m.snapshot.Phase == state.PhaseDone || m.snapshot.Phase == state.PhaseFailed {
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case TickMsg:
		m.snapshot = m.state.Snapshot()
		if m.snapshot.Phase == state.PhaseRunning || m.snapshot.Phase == state.PhaseNotStarted {
			return m, tickCmd()
		}

	case ProgressMsg:
		m.snapshot = msg.Snapshot

	case DoneMsg:
		m.snapshot = msg.Snapshot
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("ls-starsep v%s", version.Version)))
	b.WriteString("\n\n")

	snap := m.snapshot

	b.WriteString(labelStyle.Render("Catalog  "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%s (%d records, %d pairs)",
		snap.CatalogPath, snap.Records, snap.TotalPairs)))
	b.WriteString("\n\n")

	m.renderWorkers(&b, snap)

	switch snap.Phase {
	case state.PhaseRunning:
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(fmt.Sprintf("Computing... %s elapsed",
			time.Since(snap.StartedAt).Round(time.Second))))
	case state.PhaseDone:
		m.renderStats(&b, snap)
	case state.PhaseFailed:
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", snap.Err)))
	}

	b.WriteString("\n\n")
	b.WriteString(footerStyle.Render("q quit"))

	return b.String()
}

// renderWorkers draws one progress bar per worker.
func (m Model) renderWorkers(b *strings.Builder, snap state.Snapshot) {
	barWidth := m.width - 24
	if barWidth < 10 {
		barWidth = 10
	} else if barWidth > 60 {
		barWidth = 60
	}

	for i, w := range snap.Workers {
		frac := w.Fraction()
		filled := int(frac * float64(barWidth))
		if filled > barWidth {
			filled = barWidth
		}

		bar := barFillStyle.Render(strings.Repeat("█", filled)) +
			barEmptyStyle.Render(strings.Repeat("░", barWidth-filled))

		status := fmt.Sprintf("%3.0f%%", frac*100)
		if w.Done {
			status = doneStyle.Render("done")
		}

		fmt.Fprintf(b, "%s %s %s\n",
			labelStyle.Render(fmt.Sprintf("worker %-2d", i)), bar, status)
	}
}

// renderStats draws the final result panel.
func (m Model) renderStats(b *strings.Builder, snap state.Snapshot) {
	b.WriteString("\n")
	b.WriteString(doneStyle.Render("Results"))
	b.WriteString("\n")

	rows := []struct {
		label string
		value string
	}{
		{"Minimum", fmt.Sprintf("%.6f°", snap.Stats.Min)},
		{"Maximum", fmt.Sprintf("%.6f°", snap.Stats.Max)},
		{"Mean", fmt.Sprintf("%.6f°", snap.Stats.Mean)},
		{"Elapsed", fmt.Sprintf("%.3fs", snap.Stats.Elapsed.Seconds())},
	}
	for _, r := range rows {
		fmt.Fprintf(b, "%s %s\n",
			labelStyle.Render(fmt.Sprintf("%-9s", r.label)),
			valueStyle.Render(r.value))
	}
}

// tickCmd schedules the next periodic refresh.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
