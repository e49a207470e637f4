// Package field implements the 61-bit STARK prime field
// p = 2^61 + 20*2^32 + 1 used by the Rescue hash.
package field

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/big"
	"math/bits"
)

// Modulus is the field prime: 2^61 + 20*2^32 + 1.
const Modulus uint64 = 2305843095113039873

// ErrZeroInverse is returned when the multiplicative inverse of zero is
// requested.
var ErrZeroInverse = errors.New("field: zero has no multiplicative inverse")

// Element is a field element held as its canonical representative in
// [0, Modulus-1]. Elements are immutable values; every operation returns a
// new Element and every result is fully reduced.
type Element struct {
	v uint64
}

// New creates an element from v, reducing it mod p.
func New(v uint64) Element {
	if v >= Modulus {
		v %= Modulus
	}
	return Element{v}
}

// Zero returns the zero element.
func Zero() Element {
	return Element{}
}

// One returns the one element.
func One() Element {
	return Element{1}
}

var modulusBig = new(big.Int).SetUint64(Modulus)

// FromBigInt creates an element from an arbitrary integer, reducing it into
// [0, p-1]. Negative inputs map to their non-negative residue.
func FromBigInt(x *big.Int) Element {
	var r big.Int
	r.Mod(x, modulusBig)
	return Element{r.Uint64()}
}

// FromInt64 creates an element from a signed integer, reducing it into
// [0, p-1].
func FromInt64(v int64) Element {
	if v >= 0 {
		return New(uint64(v))
	}
	r := uint64(-v) % Modulus
	if r == 0 {
		return Element{}
	}
	return Element{Modulus - r}
}

// Add returns a + b mod p.
func (a Element) Add(b Element) Element {
	// Both operands are < 2^62, so the sum cannot overflow uint64.
	s := a.v + b.v
	if s >= Modulus {
		s -= Modulus
	}
	return Element{s}
}

// Sub returns a - b mod p.
func (a Element) Sub(b Element) Element {
	s := a.v + Modulus - b.v
	if s >= Modulus {
		s -= Modulus
	}
	return Element{s}
}

// Neg returns -a mod p.
func (a Element) Neg() Element {
	if a.v == 0 {
		return Element{}
	}
	return Element{Modulus - a.v}
}

// Mul returns a * b mod p. The 128-bit product is reduced with an exact
// hardware divide; the high word is < 2^60 < p, so Div64 cannot trap.
func (a Element) Mul(b Element) Element {
	hi, lo := bits.Mul64(a.v, b.v)
	_, r := bits.Div64(hi, lo, Modulus)
	return Element{r}
}

// Square returns a * a mod p.
func (a Element) Square() Element {
	return a.Mul(a)
}

// Exp returns a^e mod p by square-and-multiply. Exp(0) is One for every
// base, including zero.
func (a Element) Exp(e uint64) Element {
	result := One()
	base := a
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Square()
	}
	return result
}

// Inverse returns a^-1 mod p, or ErrZeroInverse for the zero element.
func (a Element) Inverse() (Element, error) {
	if a.v == 0 {
		return Element{}, ErrZeroInverse
	}
	return a.Exp(Modulus - 2), nil
}

// IsZero reports whether a is the zero element.
func (a Element) IsZero() bool {
	return a.v == 0
}

// Equal reports whether a and b are the same element.
func (a Element) Equal(b Element) bool {
	return a.v == b.v
}

// Cmp compares the canonical representatives of a and b, returning
// -1, 0 or 1.
func (a Element) Cmp(b Element) int {
	switch {
	case a.v < b.v:
		return -1
	case a.v > b.v:
		return 1
	}
	return 0
}

// Uint64 returns the canonical representative in [0, p-1].
func (a Element) Uint64() uint64 {
	return a.v
}

// BigInt returns the canonical representative as a big.Int.
func (a Element) BigInt() *big.Int {
	return new(big.Int).SetUint64(a.v)
}

// String returns the decimal representation of the canonical representative.
func (a Element) String() string {
	return fmt.Sprintf("%d", a.v)
}

// Random draws an element from rng by reading 8 little-endian bytes and
// reducing mod p. Passing a deterministic reader (e.g. a SHAKE stream)
// yields a reproducible sequence.
func Random(rng io.Reader) (Element, error) {
	var buf [8]byte
	if _, err := io.ReadFull(rng, buf[:]); err != nil {
		return Element{}, fmt.Errorf("field: drawing random element: %w", err)
	}
	return New(binary.LittleEndian.Uint64(buf[:])), nil
}
