package quant

import (
	"math"
	"math/rand"
	"testing"
)

func TestNewState_GroundState(t *testing.T) {
	s := NewState(3)
	if s.NumQubits() != 3 {
		t.Errorf("NumQubits() = %d, want 3", s.NumQubits())
	}
	if s.Amplitude(0) != 1 {
		t.Errorf("amplitude of |000> = %v, want 1", s.Amplitude(0))
	}
	for i := 1; i < 8; i++ {
		if s.Amplitude(i) != 0 {
			t.Errorf("amplitude of basis %d = %v, want 0", i, s.Amplitude(i))
		}
	}
}

func TestX_FlipsBit(t *testing.T) {
	s := NewState(2)
	if err := s.X(1); err != nil {
		t.Fatal(err)
	}
	if s.Amplitude(2) != 1 {
		t.Errorf("after X(1), amplitude of |10> = %v, want 1", s.Amplitude(2))
	}
}

func TestH_Superposition(t *testing.T) {
	s := NewState(1)
	if err := s.H(0); err != nil {
		t.Fatal(err)
	}
	want := 1.0 / math.Sqrt2
	for i := 0; i < 2; i++ {
		if math.Abs(real(s.Amplitude(i))-want) > 1e-12 {
			t.Errorf("amplitude %d = %v, want %v", i, s.Amplitude(i), want)
		}
	}
}

func TestCX_Entangles(t *testing.T) {
	s := NewState(2)
	s.H(0)
	s.CX(0, 1)
	want := 1.0 / math.Sqrt2
	if math.Abs(real(s.Amplitude(0))-want) > 1e-12 {
		t.Errorf("amplitude |00> = %v, want %v", s.Amplitude(0), want)
	}
	if math.Abs(real(s.Amplitude(3))-want) > 1e-12 {
		t.Errorf("amplitude |11> = %v, want %v", s.Amplitude(3), want)
	}
	if s.Amplitude(1) != 0 || s.Amplitude(2) != 0 {
		t.Error("unexpected amplitude on |01> or |10>")
	}
}

func TestGates_PreserveNorm(t *testing.T) {
	tests := []struct {
		name  string
		apply func(s *State) error
	}{
		{"X", func(s *State) error { return s.X(0) }},
		{"Z", func(s *State) error { return s.Z(1) }},
		{"H", func(s *State) error { return s.H(2) }},
		{"RZ", func(s *State) error { return s.RZ(0, 0.7) }},
		{"CX", func(s *State) error { return s.CX(0, 2) }},
		{"Swap", func(s *State) error { return s.Swap(0, 1) }},
		{"RXX", func(s *State) error { return s.RXX(1, 2, math.Pi/4) }},
		{"RZZ", func(s *State) error { return s.RZZ(0, 2, math.Pi/8) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(3)
			// Start from a non-trivial state.
			s.H(0)
			s.H(1)
			s.X(2)
			if err := tt.apply(s); err != nil {
				t.Fatal(err)
			}
			if math.Abs(s.Norm()-1.0) > 1e-10 {
				t.Errorf("norm after %s = %v, want 1", tt.name, s.Norm())
			}
		})
	}
}

func TestSwap_ExchangesQubits(t *testing.T) {
	s := NewState(3)
	s.X(0)
	if err := s.Swap(0, 2); err != nil {
		t.Fatal(err)
	}
	if s.Amplitude(4) != 1 {
		t.Errorf("after swap, amplitude of |100> = %v, want 1", s.Amplitude(4))
	}
}

func TestRXX_FullRotation(t *testing.T) {
	// RXX(pi) maps |00> to -i|11> up to global phase.
	s := NewState(2)
	if err := s.RXX(0, 1, math.Pi); err != nil {
		t.Fatal(err)
	}
	if math.Abs(imag(s.Amplitude(3))+1) > 1e-12 {
		t.Errorf("amplitude |11> = %v, want -i", s.Amplitude(3))
	}
	if math.Abs(real(s.Amplitude(0))) > 1e-12 {
		t.Errorf("amplitude |00> = %v, want 0", s.Amplitude(0))
	}
}

func TestGate_QubitOutOfRange(t *testing.T) {
	s := NewState(2)
	if err := s.X(2); err == nil {
		t.Error("expected error for qubit out of range")
	}
	if err := s.CX(0, -1); err == nil {
		t.Error("expected error for negative qubit")
	}
	if err := s.RXX(1, 1, 0.5); err == nil {
		t.Error("expected error for coinciding rxx qubits")
	}
}

func TestSample_CountsSumToShots(t *testing.T) {
	s := NewState(3)
	s.H(0)
	s.H(1)
	s.CX(1, 2)

	rng := rand.New(rand.NewSource(7))
	counts := s.Sample(rng, 1024)

	total := 0
	for state, c := range counts {
		if len(state) != 3 {
			t.Errorf("bitstring %q has length %d, want 3", state, len(state))
		}
		total += c
	}
	if total != 1024 {
		t.Errorf("counts sum to %d, want 1024", total)
	}
}

func TestSample_DeterministicWithSeed(t *testing.T) {
	build := func() *State {
		s := NewState(2)
		s.H(0)
		s.CX(0, 1)
		return s
	}

	a := build().Sample(rand.New(rand.NewSource(42)), 512)
	b := build().Sample(rand.New(rand.NewSource(42)), 512)

	if len(a) != len(b) {
		t.Fatalf("histograms differ in size: %d vs %d", len(a), len(b))
	}
	for state, c := range a {
		if b[state] != c {
			t.Errorf("count for %s differs: %d vs %d", state, c, b[state])
		}
	}
}

func TestBitstring_QubitZeroRightmost(t *testing.T) {
	s := NewState(4)
	if got := s.Bitstring(1); got != "0001" {
		t.Errorf("Bitstring(1) = %q, want 0001", got)
	}
	if got := s.Bitstring(8); got != "1000" {
		t.Errorf("Bitstring(8) = %q, want 1000", got)
	}
}
