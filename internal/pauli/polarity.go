package pauli

import (
	"errors"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Couplings below this magnitude are dropped from the operator.
const negligible = 1e-9

var (
	// ErrTensorShape reports a non-square polarity matrix.
	ErrTensorShape = errors.New("polarity tensor must be a square matrix")
	// ErrTensorSize reports a tensor too small to define a single qubit.
	ErrTensorSize = errors.New("polarity tensor must be at least 2x2")
	// ErrNilTensor reports a missing tensor.
	ErrNilTensor = errors.New("polarity tensor is nil")
)

// Single-qubit couplings rotate through the spatial axes by residue index.
// The original formulation left the axis per index undetermined; fixing it
// to X, Y, Z cycling keeps results reproducible.
var axes = [3]byte{'X', 'Y', 'Z'}

// FromPolarity builds a model Hamiltonian over n = size-1 qubits from a
// symmetric polarity tensor S and a coupling scalar lambda.
//
// Row and column 0 of S carry the base-energy dimension and are not read.
// Each diagonal entry S[i+1,i+1] with |lambda·S| above threshold yields one
// single-qubit term at position i; each off-diagonal S[i+1,j+1] (i<j) yields
// a ZZ pair term. When everything is below threshold the result is a single
// zero-coefficient identity term, not an error.
func FromPolarity(s *mat.SymDense, lambda float64) (*Operator, error) {
	if s == nil {
		return nil, ErrNilTensor
	}
	size := s.SymmetricDim()
	if size < 2 {
		return nil, ErrTensorSize
	}
	n := size - 1

	op := &Operator{NumQubits: n}

	for i := 0; i < n; i++ {
		coeff := lambda * s.At(i+1, i+1)
		if math.Abs(coeff) > negligible {
			op.Terms = append(op.Terms, Term{Label: label(n, i, axes[i%3]), Coeff: coeff})
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			coeff := lambda * s.At(i+1, j+1)
			if math.Abs(coeff) > negligible {
				op.Terms = append(op.Terms, Term{Label: pairLabel(n, i, j), Coeff: coeff})
			}
		}
	}

	if len(op.Terms) == 0 {
		op.Terms = append(op.Terms, Term{Label: strings.Repeat("I", n), Coeff: 0})
	}
	return op, nil
}

// FromDense validates a raw matrix and delegates to FromPolarity. Asymmetric
// entries are averaged, matching the symmetrization the tensor generator
// applies.
func FromDense(m mat.Matrix, lambda float64) (*Operator, error) {
	if m == nil {
		return nil, ErrNilTensor
	}
	r, c := m.Dims()
	if r != c {
		return nil, ErrTensorShape
	}
	if r < 2 {
		return nil, ErrTensorSize
	}
	s := mat.NewSymDense(r, nil)
	for i := 0; i < r; i++ {
		for j := i; j < r; j++ {
			s.SetSym(i, j, (m.At(i, j)+m.At(j, i))/2)
		}
	}
	return FromPolarity(s, lambda)
}

// label places one Pauli axis at position i and identity elsewhere.
func label(n, i int, axis byte) string {
	b := []byte(strings.Repeat("I", n))
	b[i] = axis
	return string(b)
}

// pairLabel places Z at positions i and j, identity elsewhere.
func pairLabel(n, i, j int) string {
	b := []byte(strings.Repeat("I", n))
	b[i] = 'Z'
	b[j] = 'Z'
	return string(b)
}
