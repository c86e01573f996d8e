// Package backend executes circuit descriptions on an in-process
// statevector simulator and reports shot histograms.
package backend

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/quarklab/quantafold/internal/circuit"
	"github.com/quarklab/quantafold/internal/quant"
)

// MaxQubits bounds the statevector size the backend will allocate.
const MaxQubits = 20

var (
	// ErrNoCircuit reports a run without a circuit.
	ErrNoCircuit = errors.New("no circuit to simulate")
	// ErrTooLarge reports a register beyond the backend's capacity.
	ErrTooLarge = fmt.Errorf("circuit exceeds backend capacity of %d qubits", MaxQubits)
)

// Config carries per-run parameters. A zero Seed draws a fresh stream per
// run; a nonzero Seed makes the histogram reproducible.
type Config struct {
	Shots int
	Seed  int64
}

// Run transpiles the circuit to the base gate set, evolves a fresh
// statevector through it, and samples cfg.Shots measurement outcomes. The
// context is checked between gates so a run can be interrupted.
func Run(ctx context.Context, c *circuit.Circuit, cfg Config) (*Result, error) {
	if c == nil {
		return nil, ErrNoCircuit
	}
	if c.NumQubits > MaxQubits {
		return nil, ErrTooLarge
	}
	if cfg.Shots < 1 {
		return nil, fmt.Errorf("shots must be positive, got %d", cfg.Shots)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	lowered := c.Transpile()
	st := quant.NewState(lowered.NumQubits)

	for i, g := range lowered.Gates {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		var err error
		switch g.Name {
		case circuit.GateX:
			err = st.X(g.Qubits[0])
		case circuit.GateH:
			err = st.H(g.Qubits[0])
		case circuit.GateRZ:
			err = st.RZ(g.Qubits[0], g.Theta)
		case circuit.GateCX:
			err = st.CX(g.Qubits[0], g.Qubits[1])
		case circuit.GateMeasure:
			// Outcomes are sampled once at the end of the run.
		default:
			err = fmt.Errorf("gate %q not in base set", g.Name)
		}
		if err != nil {
			return nil, fmt.Errorf("gate %d (%s): %w", i, g.Name, err)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	counts := st.Sample(rng, cfg.Shots)

	return &Result{
		Counts:    counts,
		Shots:     cfg.Shots,
		Elapsed:   time.Since(start),
		Depth:     lowered.Depth(),
		NumQubits: c.NumQubits,
	}, nil
}
