// Package session holds the state an interactive analysis session carries
// across menu iterations: the current circuit, the current operator, the run
// history, and the rendering mode. All of it lives in an explicit Session
// value handed to each handler; nothing is process-global.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/quarklab/quantafold/internal/backend"
	"github.com/quarklab/quantafold/internal/circuit"
	"github.com/quarklab/quantafold/internal/pauli"
	"github.com/quarklab/quantafold/internal/viz"
)

var (
	// ErrNoResults reports a visualization request before any simulation.
	ErrNoResults = errors.New("no simulation results yet; run a simulation first")
	// ErrNoOperator reports an analysis request before an operator exists.
	ErrNoOperator = errors.New("no operator to analyze; create one first")
)

// Session is the state of one interactive run of the tool.
type Session struct {
	Circuit  *circuit.Circuit
	Operator *pauli.Operator
	History  []*backend.Result
	Graphics bool

	// Seed applied to simulation sampling; 0 draws fresh randomness.
	Seed int64

	out io.Writer
}

// New returns a session writing to out. graphics is the render capability
// resolved once at startup; handlers read it instead of re-probing.
func New(out io.Writer, graphics bool) *Session {
	return &Session{Graphics: graphics, out: out}
}

// CreateCircuit builds and installs a new protein circuit. On invalid input
// the previous circuit is left untouched.
func (s *Session) CreateCircuit(numQubits int, complexGates bool) error {
	c, err := circuit.Protein(numQubits, complexGates)
	if err != nil {
		return err
	}
	s.Circuit = c
	fmt.Fprintln(s.out, viz.Good(fmt.Sprintf(
		"circuit created: %d qubits, depth %d, %d gates",
		c.NumQubits, c.Depth(), c.CountGates())))
	return nil
}

// VisualizeCircuit draws the current circuit.
func (s *Session) VisualizeCircuit() error {
	if s.Circuit == nil {
		return fmt.Errorf("no circuit to visualize: %w", circuit.ErrEmptyCircuit)
	}
	return viz.Circuit(s.out, s.Circuit, s.Graphics)
}

// Simulate runs the current circuit for the given shot count and appends
// the result to the history.
func (s *Session) Simulate(ctx context.Context, shots int) (*backend.Result, error) {
	if s.Circuit == nil {
		return nil, backend.ErrNoCircuit
	}
	res, err := backend.Run(ctx, s.Circuit, backend.Config{Shots: shots, Seed: s.Seed})
	if err != nil {
		return nil, fmt.Errorf("simulation failed: %w", err)
	}
	s.History = append(s.History, res)

	top := res.Sorted()[0]
	fmt.Fprintln(s.out, viz.Good(fmt.Sprintf("simulation completed in %v", res.Elapsed)))
	fmt.Fprintf(s.out, "most probable state: %s (%.2f%%)\n",
		viz.Strong(top.State), res.Probability(top.State)*100)
	return res, nil
}

// VisualizeResults renders the most recent result.
func (s *Session) VisualizeResults() error {
	if len(s.History) == 0 {
		return ErrNoResults
	}
	viz.Render(s.out, s.History[len(s.History)-1], s.Graphics)
	return nil
}

// BuildOperator generates a seeded example polarity tensor of the given
// size, prints it, and installs the derived Hamiltonian. Prior state is
// untouched on failure.
func (s *Session) BuildOperator(size int, lambda float64) error {
	tensor, err := pauli.ExampleTensor(size, pauli.DefaultTensorSeed)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "generated %dx%d polarity tensor:\n%.3f\n",
		size, size, mat.Formatted(tensor, mat.Prefix("")))

	op, err := pauli.FromPolarity(tensor, lambda)
	if err != nil {
		return err
	}
	s.Operator = op

	if op.IsZero() {
		fmt.Fprintln(s.out, viz.Warn("no significant Pauli terms; operator is the zero identity"))
		return nil
	}
	fmt.Fprintln(s.out, viz.Good(fmt.Sprintf(
		"operator created: %d terms over %d qubits", op.Len(), op.NumQubits)))

	if spectrum, err := pauli.Spectrum(tensor); err == nil {
		fmt.Fprintf(s.out, "tensor spectrum: min %.4f, max %.4f\n",
			spectrum[0], spectrum[len(spectrum)-1])
	}
	return nil
}

// AnalyzeOperator prints the current operator's properties and its most
// significant terms.
func (s *Session) AnalyzeOperator() error {
	if s.Operator == nil {
		return ErrNoOperator
	}
	op := s.Operator
	fmt.Fprintln(s.out, viz.Header("hamiltonian operator analysis"))
	fmt.Fprintf(s.out, "  pauli terms: %d\n", op.Len())
	fmt.Fprintf(s.out, "  qubits:      %d\n", op.NumQubits)
	fmt.Fprintln(s.out, "  top terms by magnitude:")
	for i, term := range op.TopTerms(5) {
		fmt.Fprintf(s.out, "    %d. %-12s %12.6f\n", i+1, term.Label, term.Coeff)
	}
	return nil
}

// ToggleGraphics flips the rendering mode and returns the new value.
func (s *Session) ToggleGraphics() bool {
	s.Graphics = !s.Graphics
	return s.Graphics
}

// PrintHistory lists every simulation of the session, oldest first.
func (s *Session) PrintHistory() {
	if len(s.History) == 0 {
		fmt.Fprintln(s.out, viz.Warn("simulation history is empty"))
		return
	}
	fmt.Fprintln(s.out, viz.Header(fmt.Sprintf("simulation history (%d runs)", len(s.History))))
	for i, r := range s.History {
		fmt.Fprintf(s.out, "  %d. qubits: %d, shots: %d, elapsed: %v, states: %d\n",
			i+1, r.NumQubits, r.Shots, r.Elapsed, len(r.Counts))
	}
}
