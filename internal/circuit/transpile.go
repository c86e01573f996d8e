package circuit

// Transpile lowers the circuit to the backend's base gate set
// {x, h, rz, cx, measure}. Barriers are dropped; pairwise rotations and
// swaps expand to their standard decompositions:
//
//	rzz(t) a b  ->  cx a b; rz(t) b; cx a b
//	rxx(t) a b  ->  h a; h b; rzz(t) a b; h a; h b
//	swap a b    ->  cx a b; cx b a; cx a b
//
// The reported depth of a run is the depth of the transpiled circuit.
func (c *Circuit) Transpile() *Circuit {
	out := &Circuit{NumQubits: c.NumQubits, Measured: c.Measured}
	for _, g := range c.Gates {
		switch g.Name {
		case GateBarrier:
		case GateRZZ:
			a, b := g.Qubits[0], g.Qubits[1]
			out.CX(a, b)
			out.RZ(b, g.Theta)
			out.CX(a, b)
		case GateRXX:
			a, b := g.Qubits[0], g.Qubits[1]
			out.H(a)
			out.H(b)
			out.CX(a, b)
			out.RZ(b, g.Theta)
			out.CX(a, b)
			out.H(a)
			out.H(b)
		case GateSwap:
			a, b := g.Qubits[0], g.Qubits[1]
			out.CX(a, b)
			out.CX(b, a)
			out.CX(a, b)
		default:
			out.add(g)
		}
	}
	return out
}
