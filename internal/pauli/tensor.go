package pauli

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// DefaultTensorSeed keeps example tensors reproducible across sessions.
const DefaultTensorSeed = 42

// ExampleTensor generates a synthetic polarity tensor of the given size:
// a random matrix symmetrized by averaging with its transpose, with the
// diagonal redrawn in [0.5, 2.5) so self couplings dominate. Dimension 0
// stands for the base-energy axis, dimensions 1..size-1 for spatial and
// physicochemical properties.
func ExampleTensor(size int, seed int64) (*mat.SymDense, error) {
	if size < 2 {
		return nil, ErrTensorSize
	}
	rng := rand.New(rand.NewSource(seed))

	base := make([]float64, size*size)
	for i := range base {
		base[i] = rng.Float64()
	}

	s := mat.NewSymDense(size, nil)
	for i := 0; i < size; i++ {
		for j := i + 1; j < size; j++ {
			s.SetSym(i, j, (base[i*size+j]+base[j*size+i])/2)
		}
	}
	for i := 0; i < size; i++ {
		s.SetSym(i, i, 0.5+2.0*rng.Float64())
	}
	return s, nil
}

// Spectrum returns the eigenvalues of the polarity tensor in ascending
// order. The spread of the spectrum is printed in the operator analysis as
// a rough indicator of coupling anisotropy.
func Spectrum(s *mat.SymDense) ([]float64, error) {
	if s == nil {
		return nil, ErrNilTensor
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(s, false); !ok {
		return nil, ErrTensorShape
	}
	return eig.Values(nil), nil
}
