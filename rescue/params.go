// Package rescue implements the Rescue algebraic hash over the 61-bit STARK
// field, instantiated with a 12-element state, rate 8 and a 4-element digest.
package rescue

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"golang.org/x/crypto/sha3"

	"github.com/aerius-labs/rescue-go/field"
)

// Geometry of the published instance.
const (
	stateWidth = 12
	rate       = 8
	digestSize = 4
	numRounds  = 10
	alpha      = 3
)

// Exported instance parameters.
const (
	// StateWidth is the permutation width in field elements.
	StateWidth = stateWidth
	// Rate is the number of state positions a block is absorbed into.
	Rate = rate
	// Capacity is the number of reserved state positions.
	Capacity = stateWidth - rate
	// DigestSize is the digest width in field elements.
	DigestSize = digestSize
	// NumRounds is the number of full permutation rounds.
	NumRounds = numRounds
	// Alpha is the forward S-box exponent.
	Alpha = alpha
)

// Params is an immutable Rescue parameter set: geometry, S-box exponents and
// constant tables. A single Params value is safe for unsynchronized
// concurrent use by any number of hash invocations.
type Params struct {
	stateWidth int
	rate       int
	digestSize int
	numRounds  int
	alpha      uint64
	alphaInv   uint64

	mds            [][]field.Element
	initial        []field.Element
	roundConstants [][]field.Element
}

// NewParams builds a validated parameter set from raw tables. mds must be
// stateWidth x stateWidth, initial must hold stateWidth values and
// roundConstants must hold exactly 2*numRounds vectors of stateWidth values.
// All table values are reduced mod the field prime. alpha must be invertible
// mod p-1; its inverse exponent is computed here so the inverse S-box is
// always plain exponentiation.
func NewParams(width, rate, digestSize, rounds int, alpha uint64,
	mds [][]uint64, initial []uint64, roundConstants [][]uint64) (*Params, error) {

	if width <= 0 {
		return nil, fmt.Errorf("rescue: state width %d must be positive", width)
	}
	if rate <= 0 || rate >= width {
		return nil, fmt.Errorf("rescue: rate %d must be in (0, %d)", rate, width)
	}
	if digestSize <= 0 || digestSize > width {
		return nil, fmt.Errorf("rescue: digest size %d out of range for width %d", digestSize, width)
	}
	if rounds <= 0 {
		return nil, fmt.Errorf("rescue: round count %d must be positive", rounds)
	}

	alphaInv, err := inverseExponent(alpha)
	if err != nil {
		return nil, err
	}

	if len(mds) != width {
		return nil, fmt.Errorf("rescue: MDS matrix has %d rows, want %d", len(mds), width)
	}
	if len(initial) != width {
		return nil, fmt.Errorf("rescue: initial constants have %d entries, want %d", len(initial), width)
	}
	if len(roundConstants) != 2*rounds {
		return nil, fmt.Errorf("rescue: %d round-constant vectors, want %d", len(roundConstants), 2*rounds)
	}

	p := &Params{
		stateWidth:     width,
		rate:           rate,
		digestSize:     digestSize,
		numRounds:      rounds,
		alpha:          alpha,
		alphaInv:       alphaInv,
		mds:            make([][]field.Element, width),
		initial:        make([]field.Element, width),
		roundConstants: make([][]field.Element, 2*rounds),
	}
	for i, row := range mds {
		if len(row) != width {
			return nil, fmt.Errorf("rescue: MDS row %d has %d entries, want %d", i, len(row), width)
		}
		p.mds[i] = elementVector(row)
	}
	p.initial = elementVector(initial)
	for i, vec := range roundConstants {
		if len(vec) != width {
			return nil, fmt.Errorf("rescue: round-constant vector %d has %d entries, want %d", i, len(vec), width)
		}
		p.roundConstants[i] = elementVector(vec)
	}
	return p, nil
}

func elementVector(vs []uint64) []field.Element {
	out := make([]field.Element, len(vs))
	for i, v := range vs {
		out[i] = field.New(v)
	}
	return out
}

// inverseExponent returns alpha^-1 mod (p-1), the inverse S-box exponent.
func inverseExponent(alpha uint64) (uint64, error) {
	order := new(big.Int).SetUint64(field.Modulus - 1)
	inv := new(big.Int).ModInverse(new(big.Int).SetUint64(alpha), order)
	if inv == nil {
		return 0, fmt.Errorf("rescue: S-box exponent %d is not invertible mod p-1", alpha)
	}
	return inv.Uint64(), nil
}

// Validate rechecks the structural invariants of the parameter set.
func (p *Params) Validate() error {
	if p.stateWidth <= 0 || p.rate <= 0 || p.rate >= p.stateWidth {
		return errors.New("rescue: invalid state geometry")
	}
	if p.digestSize <= 0 || p.digestSize > p.stateWidth {
		return errors.New("rescue: invalid digest size")
	}
	if p.numRounds <= 0 {
		return errors.New("rescue: invalid round count")
	}
	if len(p.mds) != p.stateWidth {
		return errors.New("rescue: MDS row count does not match state width")
	}
	for _, row := range p.mds {
		if len(row) != p.stateWidth {
			return errors.New("rescue: MDS column count does not match state width")
		}
	}
	if len(p.initial) != p.stateWidth {
		return errors.New("rescue: initial constant count does not match state width")
	}
	if len(p.roundConstants) != 2*p.numRounds {
		return errors.New("rescue: round-constant vector count is not 2*numRounds")
	}
	for _, vec := range p.roundConstants {
		if len(vec) != p.stateWidth {
			return errors.New("rescue: round-constant width does not match state width")
		}
	}
	return nil
}

// StateWidth returns the permutation width in field elements.
func (p *Params) StateWidth() int { return p.stateWidth }

// Rate returns the absorb width in field elements.
func (p *Params) Rate() int { return p.rate }

// DigestSize returns the digest width in field elements.
func (p *Params) DigestSize() int { return p.digestSize }

// NumRounds returns the number of full rounds.
func (p *Params) NumRounds() int { return p.numRounds }

// SBoxExponent returns the forward S-box exponent alpha.
func (p *Params) SBoxExponent() uint64 { return p.alpha }

// InverseSBoxExponent returns alpha^-1 mod (p-1).
func (p *Params) InverseSBoxExponent() uint64 { return p.alphaInv }

// MDS returns a copy of the MDS matrix.
func (p *Params) MDS() [][]field.Element {
	out := make([][]field.Element, len(p.mds))
	for i, row := range p.mds {
		out[i] = append([]field.Element(nil), row...)
	}
	return out
}

// InitialConstants returns a copy of the pre-round injection vector.
func (p *Params) InitialConstants() []field.Element {
	return append([]field.Element(nil), p.initial...)
}

// RoundConstants returns a copy of the per-round injection vectors.
func (p *Params) RoundConstants() [][]field.Element {
	out := make([][]field.Element, len(p.roundConstants))
	for i, vec := range p.roundConstants {
		out[i] = append([]field.Element(nil), vec...)
	}
	return out
}

// Checksum returns a 32-byte SHAKE256 digest of the canonical little-endian
// encoding of the full parameter set. Two parameter sets describing the same
// instance have equal checksums; use it to verify load integrity.
func (p *Params) Checksum() []byte {
	h := sha3.NewShake256()
	writeU64 := func(v uint64) {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	writeU64(field.Modulus)
	writeU64(uint64(p.stateWidth))
	writeU64(uint64(p.rate))
	writeU64(uint64(p.digestSize))
	writeU64(uint64(p.numRounds))
	writeU64(p.alpha)
	writeU64(p.alphaInv)
	for _, e := range p.initial {
		writeU64(e.Uint64())
	}
	for _, vec := range p.roundConstants {
		for _, e := range vec {
			writeU64(e.Uint64())
		}
	}
	for _, row := range p.mds {
		for _, e := range row {
			writeU64(e.Uint64())
		}
	}
	sum := make([]byte, 32)
	h.Read(sum)
	return sum
}

var (
	defaultOnce   sync.Once
	defaultParams *Params
)

// Default returns the shared parameter set of the published instance. It is
// built once and never mutated; callers must treat it as read-only.
func Default() *Params {
	defaultOnce.Do(func() {
		mds := make([][]uint64, stateWidth)
		for i := range mds {
			mds[i] = mdsMatrix[i][:]
		}
		rcs := make([][]uint64, 2*numRounds)
		for i := range rcs {
			rcs[i] = roundConstants[i][:]
		}
		p, err := NewParams(stateWidth, rate, digestSize, numRounds, alpha,
			mds, initialConstants[:], rcs)
		if err != nil {
			panic("rescue: embedded parameter tables are malformed: " + err.Error())
		}
		defaultParams = p
	})
	return defaultParams
}
