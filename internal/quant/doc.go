// Package quant implements a dense statevector over n qubits and the small
// gate set the circuit builder emits.
//
// Qubit q maps to bit 1<<q of the basis index, so rendered bitstrings carry
// qubit 0 in the rightmost position:
//
//	st := quant.NewState(2)
//	st.H(0)
//	st.CX(0, 1)
//	counts := st.Sample(rng, 1024) // ≈ half "00", half "11"
//
// Every gate is unitary; Sample draws from |amplitude|² without collapsing
// the state, which is all a shot-based run needs.
package quant
