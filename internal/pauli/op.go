package pauli

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Term is one summand of a Hamiltonian in the Pauli basis: a label over
// {I,X,Y,Z} with one character per qubit, and its real coefficient.
type Term struct {
	Label string
	Coeff float64
}

// Operator is an ordered list of Pauli terms over a fixed qubit count.
type Operator struct {
	NumQubits int
	Terms     []Term
}

// Len returns the number of terms.
func (o *Operator) Len() int { return len(o.Terms) }

// IsZero reports whether the operator is the zero-identity sentinel produced
// when no coupling survives thresholding.
func (o *Operator) IsZero() bool {
	return len(o.Terms) == 1 && o.Terms[0].Coeff == 0 &&
		o.Terms[0].Label == strings.Repeat("I", o.NumQubits)
}

// TopTerms returns up to k terms ranked by coefficient magnitude, largest
// first. Ties keep insertion order.
func (o *Operator) TopTerms(k int) []Term {
	ranked := make([]Term, len(o.Terms))
	copy(ranked, o.Terms)
	sort.SliceStable(ranked, func(i, j int) bool {
		return math.Abs(ranked[i].Coeff) > math.Abs(ranked[j].Coeff)
	})
	if k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}

// String renders the operator as a sum, useful in the analysis view.
func (o *Operator) String() string {
	if len(o.Terms) == 0 {
		return "0"
	}
	parts := make([]string, len(o.Terms))
	for i, t := range o.Terms {
		parts[i] = fmt.Sprintf("%+.6f·%s", t.Coeff, t.Label)
	}
	return strings.Join(parts, " ")
}
