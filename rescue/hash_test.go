package rescue

import (
	"errors"
	"sync"
	"testing"

	"github.com/aerius-labs/rescue-go/field"
)

func elems(vs ...uint64) []field.Element {
	out := make([]field.Element, len(vs))
	for i, v := range vs {
		out[i] = field.New(v)
	}
	return out
}

func TestHashReferenceVector(t *testing.T) {
	got, err := Hash([]uint64{1, 2, 3, 4, 5, 6, 7, 8})
	if err != nil {
		t.Fatal(err)
	}
	want := []uint64{
		1701009513277077950, 394821372906024995,
		428352609193758013, 1822402221604548281,
	}
	if len(got) != len(want) {
		t.Fatalf("digest has %d elements, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("digest[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestHashKnownVectors(t *testing.T) {
	testCases := []struct {
		name  string
		input []uint64
		want  []uint64
	}{
		{
			"SingleElement",
			[]uint64{5},
			[]uint64{2165674625445575570, 73294331978942443, 1787277173063590917, 370936119610326992},
		},
		{
			"TwoBlocks",
			[]uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
			[]uint64{2002125211264659911, 1164569908339804730, 835007802822683384, 525402797369290052},
		},
		{
			"LastElementChanged",
			[]uint64{1, 2, 3, 4, 5, 6, 7, 9},
			[]uint64{2288203197461673538, 713908739369175737, 136753288707802113, 1444917723637372391},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Hash(tc.input)
			if err != nil {
				t.Fatal(err)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("digest[%d] = %d, want %d", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestHashReducesInputs(t *testing.T) {
	// An input at p+1 hashes identically to 1: values are reduced on entry.
	got, err := Hash([]uint64{field.Modulus + 1, 2, 3, 4, 5, 6, 7, 8})
	if err != nil {
		t.Fatal(err)
	}
	want, err := Hash([]uint64{1, 2, 3, 4, 5, 6, 7, 8})
	if err != nil {
		t.Fatal(err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("digest[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestHashZeroPadding(t *testing.T) {
	// A short block absorbs as if zero-padded to the rate.
	short, err := Hash([]uint64{5})
	if err != nil {
		t.Fatal(err)
	}
	padded, err := Hash([]uint64{5, 0, 0, 0, 0, 0, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	for i := range short {
		if short[i] != padded[i] {
			t.Errorf("digest[%d]: %d != %d", i, short[i], padded[i])
		}
	}
}

func TestHashDigestShape(t *testing.T) {
	for n := 1; n <= 20; n++ {
		input := make([]uint64, n)
		for i := range input {
			input[i] = uint64(i * i)
		}
		got, err := Hash(input)
		if err != nil {
			t.Fatalf("length %d: %v", n, err)
		}
		if len(got) != DigestSize {
			t.Fatalf("length %d: digest has %d elements, want %d", n, len(got), DigestSize)
		}
		for i, v := range got {
			if v >= field.Modulus {
				t.Errorf("length %d: digest[%d] = %d not in [0, p)", n, i, v)
			}
		}
	}
}

func TestHashEmptyInput(t *testing.T) {
	if _, err := Hash(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Hash(nil) error = %v, want ErrEmptyInput", err)
	}
	if _, err := HashElements(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("HashElements(nil) error = %v, want ErrEmptyInput", err)
	}
}

func TestHashElementsMatchesHash(t *testing.T) {
	input := []uint64{9, 8, 7, 6, 5, 4, 3, 2, 1}
	fromWords, err := Hash(input)
	if err != nil {
		t.Fatal(err)
	}
	fromElems, err := HashElements(elems(input...))
	if err != nil {
		t.Fatal(err)
	}
	for i := range fromWords {
		if fromWords[i] != fromElems[i].Uint64() {
			t.Errorf("digest[%d]: %d != %d", i, fromWords[i], fromElems[i].Uint64())
		}
	}
}

func TestHashChainTwoWords(t *testing.T) {
	// Chaining two words is exactly one sponge call over their concatenation.
	got, err := HashChain(elems(1, 2, 3, 4), elems(5, 6, 7, 8))
	if err != nil {
		t.Fatal(err)
	}
	want, err := Hash([]uint64{1, 2, 3, 4, 5, 6, 7, 8})
	if err != nil {
		t.Fatal(err)
	}
	for i := range want {
		if got[i].Uint64() != want[i] {
			t.Errorf("digest[%d] = %d, want %d", i, got[i].Uint64(), want[i])
		}
	}
}

func TestHashChainThreeWords(t *testing.T) {
	got, err := HashChain(elems(1, 2, 3, 4), elems(5, 6, 7, 8), elems(9, 10, 11, 12))
	if err != nil {
		t.Fatal(err)
	}
	want := []uint64{
		498842505869909427, 798900314490200126,
		1322860325455035947, 805284471961943381,
	}
	for i := range want {
		if got[i].Uint64() != want[i] {
			t.Errorf("digest[%d] = %d, want %d", i, got[i].Uint64(), want[i])
		}
	}
}

func TestHashChainRejectsBadInput(t *testing.T) {
	if _, err := HashChain(elems(1, 2, 3, 4)); err == nil {
		t.Error("accepted a single-word chain")
	}
	if _, err := HashChain(); err == nil {
		t.Error("accepted an empty chain")
	}
	if _, err := HashChain(elems(1, 2, 3, 4), elems(5, 6, 7)); err == nil {
		t.Error("accepted a short word")
	}
	if _, err := HashChain(elems(1, 2, 3), elems(5, 6, 7, 8)); err == nil {
		t.Error("accepted a short first word")
	}
}

func TestHashChainGeometry(t *testing.T) {
	// The toy instance has rate 2 and digest 2, so rate != 2*digest and
	// chaining has nowhere to put the second word.
	h, err := NewHasher(toyParams(t))
	if err != nil {
		t.Fatal(err)
	}
	_, err = h.HashChain(elems(1, 2), elems(3, 4))
	if !errors.Is(err, ErrChainGeometry) {
		t.Errorf("error = %v, want ErrChainGeometry", err)
	}
}

func TestNewHasherNilParams(t *testing.T) {
	h, err := NewHasher(nil)
	if err != nil {
		t.Fatal(err)
	}
	if h.Params() != Default() {
		t.Error("nil params did not select the published instance")
	}
}

func TestHashConcurrent(t *testing.T) {
	want, err := Hash([]uint64{1, 2, 3, 4, 5, 6, 7, 8})
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				got, err := Hash([]uint64{1, 2, 3, 4, 5, 6, 7, 8})
				if err != nil {
					t.Error(err)
					return
				}
				for j := range want {
					if got[j] != want[j] {
						t.Errorf("digest[%d] = %d, want %d", j, got[j], want[j])
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkHashOneBlock(b *testing.B) {
	input := []uint64{1, 2, 3, 4, 5, 6, 7, 8}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Hash(input); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPermutation(b *testing.B) {
	perm := NewPermutation(nil)
	state := sequentialState(perm.Width())
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		perm.Apply(state)
	}
}
