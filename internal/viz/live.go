package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/ts-lab/stosim/internal/stochastic"
)

const liveWindow = 200

type TickMsg time.Time

// Model reveals a simulated path sample by sample and lets the user
// retune parameters, which re-simulates from the same seed.
type Model struct {
	proc     stochastic.Process
	n        int
	seed     int64
	path     stochastic.Series
	variance stochastic.Series
	pos      int
	running  bool
	simErr   error

	params    map[string]float64
	paramKeys []string
	selected  int
}

func NewModel(proc stochastic.Process, n int, seed int64) Model {
	params := make(map[string]float64)
	if t, ok := proc.(stochastic.Configurable); ok {
		for k, v := range t.Params() {
			params[k] = v
		}
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := Model{
		proc:      proc,
		n:         n,
		seed:      seed,
		running:   true,
		params:    params,
		paramKeys: keys,
	}
	m.simulate()
	return m
}

func (m *Model) simulate() {
	result, err := m.proc.Simulate(m.n, m.seed)
	if err != nil {
		m.simErr = err
		m.path = nil
		m.variance = nil
		return
	}
	m.simErr = nil
	m.path = result.Path
	m.variance = result.Variance
	if m.pos > len(m.path) {
		m.pos = len(m.path)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.pos = 0
		case "tab":
			m.cycleParam()
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		}
	case TickMsg:
		if m.running && m.simErr == nil && m.pos < len(m.path) {
			m.pos++
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) cycleParam() {
	if len(m.paramKeys) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.paramKeys)
}

func (m *Model) adjustParam(factor float64) {
	if len(m.paramKeys) == 0 {
		return
	}
	key := m.paramKeys[m.selected]
	val := m.params[key]
	if val == 0 {
		val = 0.01
	}
	newVal := val * factor
	if t, ok := m.proc.(stochastic.Configurable); ok {
		if err := t.SetParam(key, newVal); err != nil {
			return
		}
	}
	m.params[key] = newVal
	m.simulate()
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s  seed=%d", m.proc.Name(), m.seed)))
	b.WriteString("\n")

	if m.simErr != nil {
		b.WriteString(fmt.Sprintf("simulation error: %v\n", m.simErr))
	} else if m.pos > 0 {
		start := 0
		if m.pos > liveWindow {
			start = m.pos - liveWindow
		}
		graph := asciigraph.Plot(m.path[start:m.pos],
			asciigraph.Height(12),
			asciigraph.Width(plotWidth),
			asciigraph.Caption(fmt.Sprintf("t = %d / %d", m.pos, len(m.path))),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")

		revealed := m.path[:m.pos]
		b.WriteString(labelStyle.Render("mean"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.4f", revealed.Mean())))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("variance"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.4f", revealed.Variance())))
		b.WriteString("\n")
		if len(m.variance) > 0 {
			b.WriteString(labelStyle.Render("cond var"))
			b.WriteString(valueStyle.Render(Sparkline(m.variance[:m.pos], 30)))
			b.WriteString("\n")
		}
	}

	if len(m.paramKeys) > 0 {
		b.WriteString("\n")
		for i, key := range m.paramKeys {
			line := fmt.Sprintf("%-8s %.4f", key, m.params[key])
			if i == m.selected {
				b.WriteString(activeParamStyle.Render("> " + line))
			} else {
				b.WriteString(valueStyle.Render("  " + line))
			}
			b.WriteString("\n")
		}
	}

	status := "running"
	if !m.running {
		status = "paused"
	}
	if m.simErr == nil && m.pos >= len(m.path) {
		status = "done"
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf(
		"[%s]  space pause · r restart · tab select param · ↑/↓ tune · q quit", status)))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
