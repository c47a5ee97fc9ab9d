// Package curve is the only package in this module that touches the
// secp256k1 library directly. It narrows github.com/decred/dcrd/dcrec/secp256k1
// down to the handful of group and field operations the J-PAKE engine and
// its Schnorr proofs need: scalar sampling and arithmetic mod n, scalar
// multiplication and point addition, and the 33-byte compressed SEC1
// encoding used on the wire.
//
// Every other package in this module operates on Scalar and Point values
// and never imports secp256k1 itself.
package curve

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
)

const (
	// ScalarSize is the length in bytes of a scalar's big-endian encoding.
	ScalarSize = 32
	// PointSize is the length in bytes of a point's compressed SEC1 encoding.
	PointSize = 33
)

// ErrOffCurve is returned when a byte string does not decode to a valid
// point on secp256k1.
var ErrOffCurve = errors.New("curve: not a valid compressed secp256k1 point")

// Scalar is an integer modulo the order of the secp256k1 base point.
type Scalar = secp256k1.ModNScalar

// Point is a point on secp256k1, held internally in Jacobian coordinates.
type Point struct {
	j secp256k1.JacobianPoint
}

// G returns the fixed secp256k1 base point.
func G() Point {
	one := new(Scalar)
	one.SetInt(1)

	return ScalarBaseMul(one)
}

// orderHex is the order of the secp256k1 base point, in hex. The v4
// package works entirely in terms of ModNScalar/FieldVal and no longer
// exposes an elliptic.Curve-style Params value to read this from, so it is
// recorded here directly from SEC 2, section 2.4.1.
const orderHex = "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"

// N returns the order of the secp256k1 base point, the modulus for all
// scalar arithmetic in this module.
func N() *big.Int {
	n, ok := new(big.Int).SetString(orderHex, 16)
	if !ok {
		panic("curve: malformed order constant")
	}

	return n
}

// RandomScalar draws a cryptographically secure, uniformly random scalar in
// [1, n). It must not be used in any context where the caller could supply
// or observe the randomness source; this module deliberately offers no way
// to seed it.
func RandomScalar() (*Scalar, error) {
	pk, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, errors.Wrap(err, "curve: generate random scalar")
	}

	s := pk.Key

	return &s, nil
}

// ScalarFromBytes interprets b as a big-endian integer and reduces it
// modulo n. b may be shorter or longer than 32 bytes; RFC 8236 explicitly
// permits reducing an oversized s.
//
// ModNScalar.SetByteSlice only ever reads the first (most-significant) 32
// bytes of its input, so for b longer than 32 bytes it must not be handed
// b directly: that would truncate the low-order bytes away instead of
// reducing the full integer mod n. Reduce through math/big first and feed
// SetByteSlice the already-reduced 32-byte result.
func ScalarFromBytes(b []byte) *Scalar {
	s := new(Scalar)

	if len(b) <= ScalarSize {
		s.SetByteSlice(b)
		return s
	}

	v := new(big.Int).SetBytes(b)
	v.Mod(v, N())

	reduced := make([]byte, ScalarSize)
	v.FillBytes(reduced)
	s.SetByteSlice(reduced)

	return s
}

// ScalarIsZero reports whether s is zero modulo n.
func ScalarIsZero(s *Scalar) bool {
	return s.IsZero()
}

// ScalarZero destroys a scalar's value in place.
func ScalarZero(s *Scalar) {
	if s != nil {
		s.Zero()
	}
}

// ScalarAdd returns a + b mod n.
func ScalarAdd(a, b *Scalar) *Scalar {
	r := new(Scalar)
	r.Add2(a, b)

	return r
}

// ScalarSub returns a - b mod n.
func ScalarSub(a, b *Scalar) *Scalar {
	neg := *b
	neg.Negate()

	return ScalarAdd(a, &neg)
}

// ScalarMul returns a * b mod n.
func ScalarMul(a, b *Scalar) *Scalar {
	r := new(Scalar)
	r.Mul2(a, b)

	return r
}

// ScalarBaseMul returns G*k.
func ScalarBaseMul(k *Scalar) Point {
	var j secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(k, &j)

	return Point{j: j}
}

// Mul returns pt*k.
func (pt Point) Mul(k *Scalar) Point {
	src := pt.j

	var dst secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(k, &src, &dst)

	return Point{j: dst}
}

// Add returns pt + other.
func (pt Point) Add(other Point) Point {
	a, b := pt.j, other.j

	var dst secp256k1.JacobianPoint
	secp256k1.AddNonConst(&a, &b, &dst)

	return Point{j: dst}
}

// Negate returns -pt.
func (pt Point) Negate() Point {
	a := pt.j
	a.ToAffine()
	a.Y.Negate(1).Normalize()

	return Point{j: a}
}

// IsInfinity reports whether pt is the point at infinity, the curve
// group's identity element.
func (pt Point) IsInfinity() bool {
	a := pt.j
	a.ToAffine()

	return a.X.IsZero() && a.Y.IsZero()
}

// Equal reports whether pt and other are the same point, comparing in
// affine coordinates. Jacobian representations of the same point can
// differ, so projective coordinates must never be compared directly.
func (pt Point) Equal(other Point) bool {
	a, b := pt.j, other.j
	a.ToAffine()
	b.ToAffine()

	return a.X.Equals(&b.X) && a.Y.Equals(&b.Y)
}

// Compressed returns the 33-byte compressed SEC1 encoding of pt. The point
// at infinity has no valid compressed encoding and must never reach this
// call; callers must check IsInfinity first.
func (pt Point) Compressed() [PointSize]byte {
	a := pt.j
	a.ToAffine()

	pk := secp256k1.NewPublicKey(&a.X, &a.Y)

	var out [PointSize]byte
	copy(out[:], pk.SerializeCompressed())

	return out
}

// DecodePoint decodes the 33-byte compressed SEC1 encoding of a point. It
// returns ErrOffCurve if b is not a valid compressed point on secp256k1.
func DecodePoint(b []byte) (Point, error) {
	if len(b) != PointSize {
		return Point{}, ErrOffCurve
	}

	pk, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return Point{}, errors.Wrap(ErrOffCurve, err.Error())
	}

	var j secp256k1.JacobianPoint
	pk.AsJacobian(&j)

	return Point{j: j}, nil
}
