package rescue

import (
	"errors"
	"fmt"
	"sync"

	"github.com/aerius-labs/rescue-go/field"
)

var (
	// ErrEmptyInput is returned when a hash is requested over no elements.
	ErrEmptyInput = errors.New("rescue: empty input")
	// ErrChainGeometry is returned when HashChain is used with a parameter
	// set whose rate is not twice its digest size.
	ErrChainGeometry = errors.New("rescue: chain hashing requires rate = 2*digest size")
)

// Hasher compresses sequences of field elements into fixed-width digests
// with a sponge over the Rescue permutation. A Hasher is stateless between
// calls and safe for concurrent use; each call owns its own state vector.
type Hasher struct {
	params *Params
	perm   *Permutation
}

// NewHasher creates a hasher over the given parameter set. A nil params
// selects the published instance. The parameter set is validated here so a
// malformed set can never silently produce digests.
func NewHasher(params *Params) (*Hasher, error) {
	if params == nil {
		params = Default()
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Hasher{params: params, perm: NewPermutation(params)}, nil
}

// Params returns the hasher's parameter set.
func (h *Hasher) Params() *Params {
	return h.params
}

// HashElements absorbs inputs in rate-width blocks and returns the first
// digestSize elements of the final state. Blocks are added element-wise
// into the absorb positions and the state is permuted after every block;
// an incomplete final block is padded with zero elements. The input length
// must be at least one element.
func (h *Hasher) HashElements(inputs []field.Element) ([]field.Element, error) {
	if len(inputs) == 0 {
		return nil, ErrEmptyInput
	}
	pr := h.params
	state := make([]field.Element, pr.stateWidth)
	for start := 0; start < len(inputs); start += pr.rate {
		block := inputs[start:]
		if len(block) > pr.rate {
			block = block[:pr.rate]
		}
		// A short final block absorbs zeros in the remaining positions,
		// which leaves them unchanged.
		for i, x := range block {
			state[i] = state[i].Add(x)
		}
		h.perm.Apply(state)
	}
	digest := make([]field.Element, pr.digestSize)
	copy(digest, state)
	return digest, nil
}

// Hash reduces each input mod p, hashes the resulting element sequence and
// returns the digest as canonical representatives in [0, p-1]. Inputs at or
// above the modulus are silently reduced; that reduction is the documented
// contract for every entry point of this package.
func (h *Hasher) Hash(inputs []uint64) ([]uint64, error) {
	els := make([]field.Element, len(inputs))
	for i, v := range inputs {
		els[i] = field.New(v)
	}
	digest, err := h.HashElements(els)
	if err != nil {
		return nil, err
	}
	out := make([]uint64, len(digest))
	for i, e := range digest {
		out[i] = e.Uint64()
	}
	return out, nil
}

// HashChain computes the iterated hash H(...H(H(w0 || w1) || w2)...) over
// digest-width words: the first word seeds the leading state positions, each
// following word occupies the second digest-width slice with the capacity
// zeroed, and one permutation links each step. For two words this equals
// Hash(w0 || w1). At least two words are required.
func (h *Hasher) HashChain(words ...[]field.Element) ([]field.Element, error) {
	pr := h.params
	if pr.rate != 2*pr.digestSize {
		return nil, ErrChainGeometry
	}
	if len(words) < 2 {
		return nil, fmt.Errorf("rescue: chain needs at least 2 words, got %d", len(words))
	}
	for i, w := range words {
		if len(w) != pr.digestSize {
			return nil, fmt.Errorf("rescue: chain word %d has %d elements, want %d", i, len(w), pr.digestSize)
		}
	}
	d := pr.digestSize
	state := make([]field.Element, pr.stateWidth)
	copy(state[:d], words[0])
	for _, w := range words[1:] {
		copy(state[d:2*d], w)
		for i := 2 * d; i < pr.stateWidth; i++ {
			state[i] = field.Zero()
		}
		h.perm.Apply(state)
	}
	digest := make([]field.Element, d)
	copy(digest, state)
	return digest, nil
}

// Hash hashes inputs with the published parameter set. See Hasher.Hash for
// the reduction contract.
func Hash(inputs []uint64) ([]uint64, error) {
	return defaultHasher().Hash(inputs)
}

// HashElements hashes inputs with the published parameter set.
func HashElements(inputs []field.Element) ([]field.Element, error) {
	return defaultHasher().HashElements(inputs)
}

// HashChain chains digest-width words with the published parameter set.
func HashChain(words ...[]field.Element) ([]field.Element, error) {
	return defaultHasher().HashChain(words...)
}

var (
	stdOnce sync.Once
	std     *Hasher
)

func defaultHasher() *Hasher {
	stdOnce.Do(func() {
		h, err := NewHasher(Default())
		if err != nil {
			panic("rescue: default parameter set rejected: " + err.Error())
		}
		std = h
	})
	return std
}
