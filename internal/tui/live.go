// Package tui provides a live terminal view of a circuit run: the
// statevector is evolved gate by gate and the basis-state probabilities are
// drawn as bars after each step.
package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quarklab/quantafold/internal/circuit"
	"github.com/quarklab/quantafold/internal/quant"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// maxRows bounds how many basis states the bar view lists.
const maxRows = 16

type model struct {
	source *circuit.Circuit
	gates  []circuit.Gate
	state  *quant.State
	pos    int
	paused bool
	failed error

	history []float64

	width  int
	height int
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// NewModel prepares a live view of the given circuit.
func NewModel(c *circuit.Circuit) tea.Model {
	lowered := c.Transpile()
	return &model{
		source:  c,
		gates:   lowered.Gates,
		state:   quant.NewState(c.NumQubits),
		history: make([]float64, 0, 64),
		width:   80,
		height:  24,
	}
}

func (m *model) Init() tea.Cmd { return tick() }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "escape":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
		case "n":
			m.step()
		case "r":
			m.state = quant.NewState(m.source.NumQubits)
			m.pos = 0
			m.failed = nil
			m.history = m.history[:0]
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if !m.paused {
			m.step()
		}
		return m, tick()
	}
	return m, nil
}

// step applies the next non-measurement gate to the statevector.
func (m *model) step() {
	if m.failed != nil || m.pos >= len(m.gates) {
		return
	}
	g := m.gates[m.pos]
	m.pos++

	var err error
	switch g.Name {
	case circuit.GateX:
		err = m.state.X(g.Qubits[0])
	case circuit.GateH:
		err = m.state.H(g.Qubits[0])
	case circuit.GateRZ:
		err = m.state.RZ(g.Qubits[0], g.Theta)
	case circuit.GateCX:
		err = m.state.CX(g.Qubits[0], g.Qubits[1])
	case circuit.GateMeasure:
		// Nothing to evolve; the final histogram comes from sampling.
	}
	if err != nil {
		m.failed = err
		return
	}

	probs := m.state.Probabilities()
	peak := 0.0
	for _, p := range probs {
		if p > peak {
			peak = p
		}
	}
	m.history = append(m.history, peak)
	if len(m.history) > 64 {
		m.history = m.history[1:]
	}
}

func (m *model) View() string {
	var b strings.Builder

	status := green.Render("● running")
	if m.paused {
		status = yellow.Render("○ paused")
	}
	if m.pos >= len(m.gates) {
		status = dim.Render("● done")
	}
	b.WriteString(fmt.Sprintf("\n   %s  %s\n", cyan.Render("quantafold live"), status))

	progress := 0.0
	if len(m.gates) > 0 {
		progress = float64(m.pos) / float64(len(m.gates))
	}
	barWidth := 36
	filled := int(progress * float64(barWidth))
	bar := cyan.Render(strings.Repeat("━", filled)) + dimmer.Render(strings.Repeat("─", barWidth-filled))
	b.WriteString(fmt.Sprintf("   %s %s\n\n", bar,
		dim.Render(fmt.Sprintf("gate %d/%d", m.pos, len(m.gates)))))

	if m.failed != nil {
		b.WriteString("   " + yellow.Render(fmt.Sprintf("run failed: %v", m.failed)) + "\n")
	}

	b.WriteString(m.viewBars())

	if len(m.history) > 1 {
		b.WriteString(fmt.Sprintf("\n   %s %s\n",
			dim.Render("peak"), cyan.Render(sparkline(m.history, 32))))
	}

	b.WriteString("\n" + dim.Render("   space pause  n step  r reset  q quit") + "\n")
	return b.String()
}

// viewBars lists the most probable basis states with probability bars.
func (m *model) viewBars() string {
	probs := m.state.Probabilities()

	type row struct {
		idx int
		p   float64
	}
	rows := make([]row, 0, len(probs))
	for i, p := range probs {
		if p > 1e-9 {
			rows = append(rows, row{i, p})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].p != rows[j].p {
			return rows[i].p > rows[j].p
		}
		return rows[i].idx < rows[j].idx
	})
	if len(rows) > maxRows {
		rows = rows[:maxRows]
	}

	barWidth := m.width - 24
	if barWidth < 10 {
		barWidth = 10
	}
	if barWidth > 48 {
		barWidth = 48
	}

	var b strings.Builder
	for _, r := range rows {
		n := int(r.p * float64(barWidth))
		b.WriteString(fmt.Sprintf("   %s %s %s\n",
			white.Render(m.state.Bitstring(r.idx)),
			green.Render(strings.Repeat("█", n))+dimmer.Render(strings.Repeat("░", barWidth-n)),
			dim.Render(fmt.Sprintf("%5.1f%%", r.p*100))))
	}
	return b.String()
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	step := len(data) / width
	if step < 1 {
		step = 1
	}
	var sb strings.Builder
	for i := 0; i < width && i*step < len(data); i++ {
		idx := int((data[i*step] - minVal) / rang * 7)
		if idx > 7 {
			idx = 7
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

// Run starts the live view for a circuit and blocks until it exits.
func Run(c *circuit.Circuit) error {
	if c == nil {
		return circuit.ErrEmptyCircuit
	}
	p := tea.NewProgram(NewModel(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
