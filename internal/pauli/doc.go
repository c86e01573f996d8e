// Package pauli builds model Hamiltonians as weighted sums of Pauli strings
// from a symmetric polarity tensor.
//
// A tensor of size (n+1)×(n+1) defines n interacting qubits: diagonal
// entries (past the first row/column) become single-qubit couplings and
// off-diagonal entries become pairwise ZZ couplings. The mapping is an
// illustrative heuristic, not a physical model.
package pauli
