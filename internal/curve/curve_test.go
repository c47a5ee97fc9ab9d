package curve

import (
	"math/big"
	"testing"

	"github.com/codahale/gubbins/assert"
	"github.com/google/go-cmp/cmp"
)

var bigIntComparer = cmp.Comparer(func(a, b *big.Int) bool {
	return a.Cmp(b) == 0
})

func TestScalarBaseMulIsG(t *testing.T) {
	t.Parallel()

	one := new(Scalar)
	one.SetInt(1)

	g := ScalarBaseMul(one)

	assert.Equal(t, "G", G().Compressed(), g.Compressed())
}

func TestAddCommutes(t *testing.T) {
	t.Parallel()

	a, err := RandomScalar()
	if err != nil {
		t.Fatal(err)
	}

	b, err := RandomScalar()
	if err != nil {
		t.Fatal(err)
	}

	A := ScalarBaseMul(a)
	B := ScalarBaseMul(b)

	assert.Equal(t, "A+B == B+A", A.Add(B).Compressed(), B.Add(A).Compressed())
}

func TestMulDistributesOverAdd(t *testing.T) {
	t.Parallel()

	x, err := RandomScalar()
	if err != nil {
		t.Fatal(err)
	}

	a, err := RandomScalar()
	if err != nil {
		t.Fatal(err)
	}

	b, err := RandomScalar()
	if err != nil {
		t.Fatal(err)
	}

	lhs := ScalarBaseMul(a).Add(ScalarBaseMul(b)).Mul(x)
	rhs := ScalarBaseMul(a).Mul(x).Add(ScalarBaseMul(b).Mul(x))

	assert.Equal(t, "x(A+B) == xA+xB", lhs.Compressed(), rhs.Compressed())
}

func TestNegateCancels(t *testing.T) {
	t.Parallel()

	a, err := RandomScalar()
	if err != nil {
		t.Fatal(err)
	}

	A := ScalarBaseMul(a)
	sum := A.Add(A.Negate())

	assert.Equal(t, "A + -A is infinity", true, sum.IsInfinity())
}

func TestDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	a, err := RandomScalar()
	if err != nil {
		t.Fatal(err)
	}

	A := ScalarBaseMul(a)

	compressed := A.Compressed()

	decoded, err := DecodePoint(compressed[:])
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "round trip", true, A.Equal(decoded))
}

func TestDecodeInvalidPoint(t *testing.T) {
	t.Parallel()

	garbage := make([]byte, PointSize)
	for i := range garbage {
		garbage[i] = 0xAB
	}

	if _, err := DecodePoint(garbage); err == nil {
		t.Fatal("expected an error decoding an invalid point")
	}
}

func TestDecodeWrongLength(t *testing.T) {
	t.Parallel()

	if _, err := DecodePoint(make([]byte, PointSize-1)); err == nil {
		t.Fatal("expected an error decoding a short point")
	}
}

func TestScalarFromBytesReducesOversizedInput(t *testing.T) {
	t.Parallel()

	big64 := make([]byte, 64)
	for i := range big64 {
		big64[i] = 0xFF
	}

	s := ScalarFromBytes(big64)

	assert.Equal(t, "reduced scalar is not zero", false, ScalarIsZero(s))

	want := new(big.Int).SetBytes(big64)
	want.Mod(want, N())

	got := s.Bytes()
	assert.Equal(t, "64-byte input reduces to the full big.Int mod n, not a truncation", want, new(big.Int).SetBytes(got[:]), bigIntComparer)
}

func TestScalarFromBytesReducesTwoNPlusOne(t *testing.T) {
	t.Parallel()

	n := N()
	v := new(big.Int).Add(new(big.Int).Mul(n, big.NewInt(2)), big.NewInt(1))

	buf := make([]byte, 64)
	v.FillBytes(buf)

	s := ScalarFromBytes(buf)
	got := s.Bytes()

	assert.Equal(t, "2n+1 reduces to 1", big.NewInt(1), new(big.Int).SetBytes(got[:]), bigIntComparer)
}

func TestRandomScalarIsNonZero(t *testing.T) {
	t.Parallel()

	for i := 0; i < 16; i++ {
		s, err := RandomScalar()
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, "random scalar is not zero", false, ScalarIsZero(s))
	}
}
