// Package tui provides a live-progress terminal view of a running EA,
// built on bubbletea's Elm architecture, showing the things a generic
// optimizer core can report: evaluations spent, best fitness found, and
// its trend over time.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Update is one snapshot of run progress, pushed from the run loop.
type Update struct {
	Generation  int
	Evaluations int
	Budget      int
	BestFitness float64
	Done        bool
	StatusLine  string
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	sparkBlocks = []rune("▁▂▃▄▅▆▇█")
)

// Model is the bubbletea model driving the progress view.
type Model struct {
	updates  <-chan Update
	progress progress.Model
	history  []float64

	generation  int
	evaluations int
	budget      int
	bestFitness float64
	statusLine  string
	done        bool
	width       int
}

// New builds a Model that reads progress snapshots from updates until
// the channel is closed or a Done update arrives.
func New(updates <-chan Update, budget int) Model {
	return Model{
		updates:  updates,
		progress: progress.New(progress.WithDefaultGradient()),
		budget:   budget,
		width:    60,
	}
}

func (m Model) Init() tea.Cmd {
	return waitForUpdate(m.updates)
}

type updateMsg struct {
	update Update
	ok     bool
}

func waitForUpdate(updates <-chan Update) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-updates
		return updateMsg{update: u, ok: ok}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(msg.Width-4, 80)

		return m, nil
	case updateMsg:
		if !msg.ok {
			m.done = true
			return m, tea.Quit
		}

		m.generation = msg.update.Generation
		m.evaluations = msg.update.Evaluations
		m.statusLine = msg.update.StatusLine
		m.bestFitness = msg.update.BestFitness
		m.history = append(m.history, msg.update.BestFitness)

		if len(m.history) > 120 {
			m.history = m.history[len(m.history)-120:]
		}

		if msg.update.Done {
			m.done = true
			return m, tea.Quit
		}

		return m, waitForUpdate(m.updates)
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("rustea — estimation-of-distribution run"))
	b.WriteString("\n\n")

	fraction := 0.0
	if m.budget > 0 {
		fraction = float64(m.evaluations) / float64(m.budget)
		if fraction > 1 {
			fraction = 1
		}
	}

	b.WriteString(m.progress.ViewAs(fraction))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s %s    %s %s    %s %s\n",
		labelStyle.Render("generation"), valueStyle.Render(fmt.Sprint(m.generation)),
		labelStyle.Render("evaluations"), valueStyle.Render(fmt.Sprintf("%d/%d", m.evaluations, m.budget)),
		labelStyle.Render("best fitness"), valueStyle.Render(fmt.Sprintf("%.4f", m.bestFitness)),
	)

	if len(m.history) > 1 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("trend  "))
		b.WriteString(sparkline(m.history))
		b.WriteString("\n")
	}

	if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(m.statusLine)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("q to quit"))

	return b.String()
}

// sparkline renders a compact unicode bar chart of fitness history.
func sparkline(values []float64) string {
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}

		if v > hi {
			hi = v
		}
	}

	span := hi - lo
	out := make([]rune, len(values))

	for i, v := range values {
		idx := len(sparkBlocks) - 1
		if span > 0 {
			idx = int((v - lo) / span * float64(len(sparkBlocks)-1))
		}

		out[i] = sparkBlocks[idx]
	}

	return string(out)
}

// Run starts the bubbletea program and blocks until it exits.
func Run(updates <-chan Update, budget int) error {
	program := tea.NewProgram(New(updates, budget))
	_, err := program.Run()

	return err
}
