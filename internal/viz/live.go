package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/torus/internal/life"
	"github.com/san-kum/torus/internal/metrics"
)

const (
	historyCapacity = 120
	minFrame        = time.Second / 60
)

type TickMsg time.Time

type Options struct {
	Glyphs      life.Glyphs
	Delay       time.Duration
	Generations int
	Seed        int64
}

// Model holds the grid being shown and the statistics gathered so far.
type Model struct {
	grid       *life.Grid
	opts       Options
	metrics    []metrics.Metric
	generation int
	history    []float64
	done       bool
}

func NewModel(g *life.Grid, opts Options) Model {
	m := Model{
		grid:    g,
		opts:    opts,
		metrics: metrics.Defaults(),
		history: make([]float64, 0, historyCapacity),
	}
	m.observe()
	return m
}

func (m Model) Generation() int { return m.generation }

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	d := m.opts.Delay
	if d < minFrame {
		d = minFrame
	}
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "t":
			nextTheme()
		}
	case TickMsg:
		if m.done {
			return m, nil
		}
		life.Advance(m.grid)
		m.generation++
		m.observe()
		if m.opts.Generations > 0 && m.generation >= m.opts.Generations {
			m.done = true
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) observe() {
	for _, metric := range m.metrics {
		metric.Observe(m.generation, m.grid)
	}
	if len(m.history) == historyCapacity {
		m.history = append(m.history[:0], m.history[1:]...)
	}
	m.history = append(m.history, float64(m.grid.Population()))
}

func (m Model) View() string {
	theme := CurrentTheme
	header := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).MarginBottom(1)
	label := lipgloss.NewStyle().Foreground(theme.Muted).Width(12)
	value := lipgloss.NewStyle().Foreground(theme.Text)
	help := lipgloss.NewStyle().Foreground(theme.Muted).MarginTop(1)
	panel := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(theme.Muted).
		Padding(0, 2)

	board := lipgloss.NewStyle().Padding(0, 1).Render(m.renderGrid(theme))

	var s strings.Builder
	s.WriteString(header.Render(fmt.Sprintf("TORUS %dx%d", m.grid.Height(), m.grid.Width())) + "\n")
	status := "RUNNING"
	if m.done {
		status = "DONE"
	}
	s.WriteString(value.Render(status) + "\n\n")
	s.WriteString(label.Render("Generation") + value.Render(fmt.Sprintf("%d", m.generation)) + "\n")
	s.WriteString(label.Render("Population") + value.Render(fmt.Sprintf("%d", m.grid.Population())) + "\n")
	s.WriteString(label.Render("Seed") + value.Render(fmt.Sprintf("%d", m.opts.Seed)) + "\n")
	for _, metric := range m.metrics {
		if metric.Name() == "population" {
			continue
		}
		s.WriteString(label.Render(metric.Name()) + value.Render(fmt.Sprintf("%.4f", metric.Value())) + "\n")
	}
	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(6), asciigraph.Width(40), asciigraph.Caption("Population"))
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Accent).Render(chart) + "\n")
	}
	s.WriteString(help.Render("T:Theme  Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, board, panel.Render(s.String()))
}

// renderGrid colors the plain render in runs of equal glyphs.
func (m Model) renderGrid(theme Theme) string {
	alive := lipgloss.NewStyle().Foreground(theme.Alive)
	dead := lipgloss.NewStyle().Foreground(theme.Dead)

	var sb strings.Builder
	for _, line := range strings.SplitAfter(life.RenderWith(m.grid, m.opts.Glyphs), "\n") {
		line = strings.TrimSuffix(line, "\n")
		runes := []rune(line)
		for start := 0; start < len(runes); {
			end := start
			for end < len(runes) && runes[end] == runes[start] {
				end++
			}
			style := dead
			if runes[start] == m.opts.Glyphs.Alive {
				style = alive
			}
			sb.WriteString(style.Render(string(runes[start:end])))
			start = end
		}
		if len(runes) > 0 {
			sb.WriteByte('\n')
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// Run opens the live view on the grid and blocks until the user quits.
func Run(g *life.Grid, opts Options) error {
	_, err := tea.NewProgram(NewModel(g, opts), tea.WithAltScreen()).Run()
	return err
}
