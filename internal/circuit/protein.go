package circuit

import "math"

// Protein builds the toy protein-conformation circuit: a fixed base
// conformation preparation followed, when complexGates is set, by pairwise
// residue interactions, a conformational exchange between the chain ends,
// and a chain of simulated peptide bonds. All qubits are measured.
//
// numQubits represents conformational degrees of freedom and must lie in
// [2,10]; anything else returns ErrQubitRange.
func Protein(numQubits int, complexGates bool) (*Circuit, error) {
	if numQubits < 2 || numQubits > 10 {
		return nil, ErrQubitRange
	}

	c := &Circuit{NumQubits: numQubits}

	// Base conformation: alternate bit flips and superpositions over the
	// first five residues.
	c.X(0)
	c.H(1)
	if numQubits >= 3 {
		c.X(2)
	}
	if numQubits >= 4 {
		c.H(3)
	}
	if numQubits >= 5 {
		c.X(4)
	}

	if complexGates {
		c.Barrier()
		// Local interactions between neighboring residues.
		for i := 0; i < numQubits-1; i++ {
			c.RXX(i, i+1, math.Pi/4)
			c.RZZ(i, i+1, math.Pi/8)
		}

		c.Barrier()
		// Conformational exchange between the chain ends.
		if numQubits >= 4 {
			c.Swap(0, numQubits-1)
		}

		c.Barrier()
		// Peptide bonds along the chain.
		for i := 0; i < numQubits-1; i++ {
			c.CX(i, i+1)
		}
	}

	c.MeasureAll()
	return c, nil
}
