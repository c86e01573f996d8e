// Package circuit defines the gate-list circuit description the simulation
// backend consumes, plus the protein-conformation builder.
package circuit

import (
	"errors"
	"fmt"
)

// Gate names understood by the backend after transpilation.
const (
	GateX       = "x"
	GateH       = "h"
	GateRZ      = "rz"
	GateCX      = "cx"
	GateSwap    = "swap"
	GateRXX     = "rxx"
	GateRZZ     = "rzz"
	GateBarrier = "barrier"
	GateMeasure = "measure"
)

var (
	// ErrQubitRange reports a qubit count outside the supported [2,10] window.
	ErrQubitRange = errors.New("number of qubits must be between 2 and 10")
	// ErrEmptyCircuit reports an operation on a nil or gateless circuit.
	ErrEmptyCircuit = errors.New("circuit has no gates")
)

// Gate is one placed operation. Qubits holds one index for single-qubit
// gates and two for pairwise ones; Theta is only meaningful for rotations.
type Gate struct {
	Name   string
	Qubits []int
	Theta  float64
}

// Circuit is an ordered gate list over a fixed qubit register.
type Circuit struct {
	NumQubits int
	Gates     []Gate
	Measured  bool
}

// New returns an empty circuit over n qubits. Use Protein for the validated
// model builder; New itself places no bound on n beyond positivity.
func New(n int) (*Circuit, error) {
	if n < 1 {
		return nil, fmt.Errorf("invalid qubit count %d", n)
	}
	return &Circuit{NumQubits: n}, nil
}

func (c *Circuit) add(g Gate) { c.Gates = append(c.Gates, g) }

func (c *Circuit) X(q int)                 { c.add(Gate{Name: GateX, Qubits: []int{q}}) }
func (c *Circuit) H(q int)                 { c.add(Gate{Name: GateH, Qubits: []int{q}}) }
func (c *Circuit) RZ(q int, theta float64) { c.add(Gate{Name: GateRZ, Qubits: []int{q}, Theta: theta}) }
func (c *Circuit) CX(control, target int) {
	c.add(Gate{Name: GateCX, Qubits: []int{control, target}})
}
func (c *Circuit) Swap(a, b int) { c.add(Gate{Name: GateSwap, Qubits: []int{a, b}}) }
func (c *Circuit) RXX(a, b int, theta float64) {
	c.add(Gate{Name: GateRXX, Qubits: []int{a, b}, Theta: theta})
}
func (c *Circuit) RZZ(a, b int, theta float64) {
	c.add(Gate{Name: GateRZZ, Qubits: []int{a, b}, Theta: theta})
}

// Barrier inserts a visual separator; it contributes nothing to depth or
// simulation.
func (c *Circuit) Barrier() { c.add(Gate{Name: GateBarrier}) }

// MeasureAll appends a measurement of every qubit.
func (c *Circuit) MeasureAll() {
	for q := 0; q < c.NumQubits; q++ {
		c.add(Gate{Name: GateMeasure, Qubits: []int{q}})
	}
	c.Measured = true
}

// Validate checks that every gate references qubits inside the register.
func (c *Circuit) Validate() error {
	if c == nil || len(c.Gates) == 0 {
		return ErrEmptyCircuit
	}
	for i, g := range c.Gates {
		for _, q := range g.Qubits {
			if q < 0 || q >= c.NumQubits {
				return fmt.Errorf("gate %d (%s): qubit %d out of range [0,%d)", i, g.Name, q, c.NumQubits)
			}
		}
	}
	return nil
}

// Depth returns the circuit depth: the number of layers when gates are
// packed greedily, barriers excluded.
func (c *Circuit) Depth() int {
	level := make([]int, c.NumQubits)
	depth := 0
	for _, g := range c.Gates {
		if g.Name == GateBarrier {
			continue
		}
		layer := 0
		for _, q := range g.Qubits {
			if level[q] > layer {
				layer = level[q]
			}
		}
		layer++
		for _, q := range g.Qubits {
			level[q] = layer
		}
		if layer > depth {
			depth = layer
		}
	}
	return depth
}

// CountGates returns the number of placed gates, barriers excluded.
func (c *Circuit) CountGates() int {
	n := 0
	for _, g := range c.Gates {
		if g.Name != GateBarrier {
			n++
		}
	}
	return n
}
