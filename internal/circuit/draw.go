package circuit

import (
	"fmt"
	"strings"
)

// cell tokens for the text diagram.
var drawTokens = map[string][2]string{
	GateX:       {"X", ""},
	GateH:       {"H", ""},
	GateRZ:      {"Rz", ""},
	GateCX:      {"●", "⊕"},
	GateSwap:    {"✕", "✕"},
	GateRXX:     {"Rxx", "Rxx"},
	GateRZZ:     {"Rzz", "Rzz"},
	GateMeasure: {"M", ""},
}

// Diagram renders a fixed-width text drawing of the circuit, one wire per
// qubit, with barriers drawn as full-height separators.
func (c *Circuit) Diagram() string {
	type cell struct{ token string }
	var columns [][]cell

	newColumn := func() []cell { return make([]cell, c.NumQubits) }

	level := make([]int, c.NumQubits)
	barrier := make(map[int]bool)

	place := func(layer, q int, token string) {
		for len(columns) < layer {
			columns = append(columns, newColumn())
		}
		columns[layer-1][q] = cell{token: token}
	}

	maxLevel := func() int {
		m := 0
		for _, l := range level {
			if l > m {
				m = l
			}
		}
		return m
	}

	for _, g := range c.Gates {
		if g.Name == GateBarrier {
			// A barrier closes the current column for every wire.
			m := maxLevel()
			for q := range level {
				level[q] = m + 1
			}
			for len(columns) < m+1 {
				columns = append(columns, newColumn())
			}
			barrier[m] = true
			continue
		}
		layer := 0
		for _, q := range g.Qubits {
			if level[q] > layer {
				layer = level[q]
			}
		}
		layer++
		tokens := drawTokens[g.Name]
		for i, q := range g.Qubits {
			tok := tokens[0]
			if i == 1 && tokens[1] != "" {
				tok = tokens[1]
			}
			place(layer, q, tok)
			level[q] = layer
		}
	}

	width := 0
	for _, col := range columns {
		for _, cl := range col {
			if n := len([]rune(cl.token)); n > width {
				width = n
			}
		}
	}
	if width < 1 {
		width = 1
	}

	var b strings.Builder
	for q := 0; q < c.NumQubits; q++ {
		fmt.Fprintf(&b, "q%-2d: ", q)
		for ci, col := range columns {
			if barrier[ci] {
				b.WriteString("░" + strings.Repeat("░", width) + "░")
				continue
			}
			tok := col[q].token
			if tok == "" {
				b.WriteString(strings.Repeat("─", width+2))
				continue
			}
			pad := width - len([]rune(tok))
			left := pad / 2
			right := pad - left
			b.WriteString("─" + strings.Repeat("─", left) + tok + strings.Repeat("─", right) + "─")
		}
		b.WriteString("\n")
	}
	return b.String()
}
