package rescue

import (
	"github.com/aerius-labs/rescue-go/field"
)

// Permutation applies the Rescue round schedule to a state vector. Each
// round runs an inverse half (x^(1/alpha), MDS mix, constant injection)
// followed by a forward half (x^alpha, MDS mix, constant injection); the
// initial-injection vector is added to the state before round one. Both
// S-boxes are modular exponentiation by a fixed exponent, so the inverse
// half is total over the field and never performs a field inversion.
type Permutation struct {
	params *Params
}

// NewPermutation creates a permutation over the given parameter set. A nil
// params selects the published instance.
func NewPermutation(params *Params) *Permutation {
	if params == nil {
		params = Default()
	}
	return &Permutation{params: params}
}

// Width returns the state width in field elements.
func (p *Permutation) Width() int {
	return p.params.stateWidth
}

// Apply permutes state in place. It panics if the state width does not match
// the parameter set; feeding a wrong-width state is a caller bug, not a
// recoverable condition.
func (p *Permutation) Apply(state []field.Element) {
	pr := p.params
	if len(state) != pr.stateWidth {
		panic("rescue: state width mismatch")
	}
	for i := range state {
		state[i] = state[i].Add(pr.initial[i])
	}
	scratch := make([]field.Element, pr.stateWidth)
	for r := 0; r < pr.numRounds; r++ {
		p.halfRound(state, scratch, pr.alphaInv, pr.roundConstants[2*r])
		p.halfRound(state, scratch, pr.alpha, pr.roundConstants[2*r+1])
	}
}

// ApplyNew permutes a copy of state and returns it, leaving the input
// untouched.
func (p *Permutation) ApplyNew(state []field.Element) []field.Element {
	out := append([]field.Element(nil), state...)
	p.Apply(out)
	return out
}

// halfRound raises every element to exponent, mixes through the MDS matrix
// and injects one constant vector.
func (p *Permutation) halfRound(state, scratch []field.Element, exponent uint64, constants []field.Element) {
	for i := range state {
		state[i] = state[i].Exp(exponent)
	}
	for i := range scratch {
		acc := field.Zero()
		row := p.params.mds[i]
		for j := range state {
			acc = acc.Add(row[j].Mul(state[j]))
		}
		scratch[i] = acc
	}
	for i := range state {
		state[i] = scratch[i].Add(constants[i])
	}
}
