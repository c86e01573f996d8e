package quant

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"
)

// State is a dense statevector of 2^n complex amplitudes.
type State struct {
	amps      []complex128
	numQubits int
}

// NewState returns the |0...0> state over n qubits.
func NewState(n int) *State {
	amps := make([]complex128, 1<<n)
	amps[0] = 1
	return &State{amps: amps, numQubits: n}
}

func (s *State) NumQubits() int { return s.numQubits }

// Clone returns an independent copy of the state.
func (s *State) Clone() *State {
	amps := make([]complex128, len(s.amps))
	copy(amps, s.amps)
	return &State{amps: amps, numQubits: s.numQubits}
}

// Amplitude returns the amplitude of basis state i.
func (s *State) Amplitude(i int) complex128 { return s.amps[i] }

// Norm returns the 2-norm of the state; 1 for any reachable state.
func (s *State) Norm() float64 {
	sum := 0.0
	for _, a := range s.amps {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}
	return math.Sqrt(sum)
}

func (s *State) check(qs ...int) error {
	for _, q := range qs {
		if q < 0 || q >= s.numQubits {
			return fmt.Errorf("qubit %d out of range [0,%d)", q, s.numQubits)
		}
	}
	return nil
}

// X applies the Pauli-X (bit flip) gate to qubit q.
func (s *State) X(q int) error {
	if err := s.check(q); err != nil {
		return err
	}
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
	return nil
}

// Z applies the Pauli-Z (phase flip) gate to qubit q.
func (s *State) Z(q int) error {
	if err := s.check(q); err != nil {
		return err
	}
	bit := 1 << q
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] = -s.amps[i]
		}
	}
	return nil
}

// H applies the Hadamard gate to qubit q.
func (s *State) H(q int) error {
	if err := s.check(q); err != nil {
		return err
	}
	f := complex(1.0/math.Sqrt2, 0)
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			a, b := s.amps[i], s.amps[j]
			s.amps[i] = f * (a + b)
			s.amps[j] = f * (a - b)
		}
	}
	return nil
}

// RZ applies a rotation exp(-i theta Z/2) to qubit q.
func (s *State) RZ(q int, theta float64) error {
	if err := s.check(q); err != nil {
		return err
	}
	lo := cmplx.Exp(complex(0, -theta/2))
	hi := cmplx.Exp(complex(0, theta/2))
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			s.amps[i] *= lo
		} else {
			s.amps[i] *= hi
		}
	}
	return nil
}

// CX applies a controlled-X with the given control and target qubits.
func (s *State) CX(control, target int) error {
	if err := s.check(control, target); err != nil {
		return err
	}
	if control == target {
		return fmt.Errorf("control and target coincide: %d", control)
	}
	cbit, tbit := 1<<control, 1<<target
	for i := range s.amps {
		if i&cbit != 0 && i&tbit == 0 {
			j := i | tbit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
	return nil
}

// Swap exchanges the states of qubits a and b.
func (s *State) Swap(a, b int) error {
	if err := s.check(a, b); err != nil {
		return err
	}
	if a == b {
		return nil
	}
	abit, bbit := 1<<a, 1<<b
	for i := range s.amps {
		if i&abit != 0 && i&bbit == 0 {
			j := i ^ abit ^ bbit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
	return nil
}

// RXX applies the two-qubit rotation exp(-i theta XX/2) to qubits a and b.
func (s *State) RXX(a, b int, theta float64) error {
	if err := s.check(a, b); err != nil {
		return err
	}
	if a == b {
		return fmt.Errorf("rxx qubits coincide: %d", a)
	}
	c := complex(math.Cos(theta/2), 0)
	is := complex(0, math.Sin(theta/2))
	abit := 1 << a
	mask := abit | 1<<b
	// XX couples basis states differing in both bits; each pair is visited
	// once via the member with bit a clear.
	for i := range s.amps {
		if i&abit == 0 {
			j := i ^ mask
			x, y := s.amps[i], s.amps[j]
			s.amps[i] = c*x - is*y
			s.amps[j] = c*y - is*x
		}
	}
	return nil
}

// RZZ applies the two-qubit rotation exp(-i theta ZZ/2) to qubits a and b.
func (s *State) RZZ(a, b int, theta float64) error {
	if err := s.check(a, b); err != nil {
		return err
	}
	if a == b {
		return fmt.Errorf("rzz qubits coincide: %d", a)
	}
	even := cmplx.Exp(complex(0, -theta/2))
	odd := cmplx.Exp(complex(0, theta/2))
	abit, bbit := 1<<a, 1<<b
	for i := range s.amps {
		if (i&abit != 0) == (i&bbit != 0) {
			s.amps[i] *= even
		} else {
			s.amps[i] *= odd
		}
	}
	return nil
}

// Probabilities returns |amplitude|^2 for every basis state.
func (s *State) Probabilities() []float64 {
	probs := make([]float64, len(s.amps))
	for i, a := range s.amps {
		probs[i] = real(a)*real(a) + imag(a)*imag(a)
	}
	return probs
}

// Sample draws shots measurement outcomes from the state and returns a
// histogram keyed by bitstring (qubit 0 rightmost). The counts always sum
// to shots.
func (s *State) Sample(rng *rand.Rand, shots int) map[string]int {
	probs := s.Probabilities()
	counts := make(map[string]int)
	for k := 0; k < shots; k++ {
		u := rng.Float64()
		acc := 0.0
		idx := len(probs) - 1
		for i, p := range probs {
			acc += p
			if u < acc {
				idx = i
				break
			}
		}
		counts[s.Bitstring(idx)]++
	}
	return counts
}

// Bitstring formats basis index i with qubit 0 in the rightmost position.
func (s *State) Bitstring(i int) string {
	return fmt.Sprintf("%0*b", s.numQubits, i)
}
