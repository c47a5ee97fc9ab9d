// Package schnorr implements the non-interactive Schnorr zero-knowledge
// proof of knowledge of a discrete logarithm, per RFC 8235, made
// non-interactive via the Fiat-Shamir transform with SHA3-256.
//
// The proof binds a prover identity and an optional ordered list of context
// strings into the challenge, which is what lets the J-PAKE engine tell
// "Alice's proof" apart from a replay of the same proof under a different
// identity or session context.
package schnorr

import (
	"io"

	"golang.org/x/crypto/sha3"

	"github.com/jpake-go/jpake/internal/curve"
	"github.com/jpake-go/jpake/internal/jpakeerr"
)

// ProofSize is the length in bytes of an encoded proof:
// [VLen=33][V: 33][rLen=32][r: 32].
const ProofSize = 1 + curve.PointSize + 1 + curve.ScalarSize

// Proof is an opaque, length-prefixed, fixed-size encoding of a proof of
// knowledge. Its internal structure is fixed by protocol and must not be
// interpreted by callers outside this package.
type Proof [ProofSize]byte

// ParseProof checks that b is exactly ProofSize bytes long and copies it
// into a Proof. It does not inspect the length prefixes; Verify does.
func ParseProof(b []byte) (Proof, error) {
	var p Proof

	if len(b) != ProofSize {
		return p, jpakeerr.New(jpakeerr.VerificationError,
			"invalid proof, must be 33 + 32 + 2 bytes long")
	}

	copy(p[:], b)

	return p, nil
}

// Prove generates a non-interactive proof that the prover knows x such
// that gx = g*x. userID binds the prover's identity into the proof;
// otherInfo binds an ordered list of session context strings. The fresh
// proof is self-verified before being returned, as a defence against a
// faulty curve library silently producing a broken proof.
func Prove(userID string, x *curve.Scalar, gx, g curve.Point, otherInfo []string) (Proof, error) {
	var out Proof

	v, err := curve.RandomScalar()
	if err != nil {
		return out, jpakeerr.Wrap(jpakeerr.Internal, "schnorr: failed to draw nonce", err)
	}

	V := g.Mul(v)

	c, err := challenge(userID, gx, V, otherInfo)
	if err != nil {
		return out, err
	}

	r := curve.ScalarSub(v, curve.ScalarMul(x, c))

	out[0] = curve.PointSize
	Vb := V.Compressed()
	copy(out[1:1+curve.PointSize], Vb[:])
	out[1+curve.PointSize] = curve.ScalarSize
	rb := r.Bytes()
	copy(out[2+curve.PointSize:], rb[:])

	ok, err := Verify(userID, gx, out, g, otherInfo)
	if err != nil {
		return out, err
	}

	if !ok {
		return out, jpakeerr.New(jpakeerr.Internal, "schnorr: freshly generated proof failed self-verification")
	}

	return out, nil
}

// Verify checks a proof that the holder of the secret scalar behind gx
// knows it, under the given generator g, prover identity, and context.
//
// If V fails to decode as a curve point, Verify returns (false, nil)
// rather than an error: this is the single case in this module where a
// malformed input is reported as a negative result instead of a failure,
// so that callers can surface one uniform "verification failed" outcome
// without leaking the distinction between "off-curve" and "algebraically
// invalid".
func Verify(peerUserID string, gx Point, proof Proof, g Point, otherInfo []string) (bool, error) {
	if proof[0] != curve.PointSize || proof[1+curve.PointSize] != curve.ScalarSize {
		return false, jpakeerr.New(jpakeerr.VerificationError,
			"invalid proof, V must be 33 bytes and r must be 32 bytes")
	}

	V, err := curve.DecodePoint(proof[1 : 1+curve.PointSize])
	if err != nil {
		return false, nil
	}

	r := curve.ScalarFromBytes(proof[2+curve.PointSize:])

	c, err := challenge(peerUserID, gx, V, otherInfo)
	if err != nil {
		return false, err
	}

	rhs := g.Mul(r).Add(gx.Mul(c))

	return V.Equal(rhs), nil
}

// Point is re-exported so callers of this package don't need to import
// internal/curve directly just to name the type.
type Point = curve.Point

// challenge computes c = H(gx || V || userID || otherInfo...) mod n, with
// every field length-prefixed by a single byte, in the exact order RFC
// 8235's Fiat-Shamir construction and this module's wire format require.
func challenge(userID string, gx, V Point, otherInfo []string) (*curve.Scalar, error) {
	h := sha3.New256()

	gxb := gx.Compressed()
	if err := writeLengthPrefixed(h, gxb[:]); err != nil {
		return nil, err
	}

	Vb := V.Compressed()
	if err := writeLengthPrefixed(h, Vb[:]); err != nil {
		return nil, err
	}

	if err := writeLengthPrefixed(h, []byte(userID)); err != nil {
		return nil, err
	}

	for _, info := range otherInfo {
		if err := writeLengthPrefixed(h, []byte(info)); err != nil {
			return nil, err
		}
	}

	return curve.ScalarFromBytes(h.Sum(nil)), nil
}

func writeLengthPrefixed(w io.Writer, b []byte) error {
	if len(b) > 255 {
		return jpakeerr.New(jpakeerr.InvalidArgument, "field exceeds 255 bytes")
	}

	if _, err := w.Write([]byte{byte(len(b))}); err != nil {
		return err
	}

	_, err := w.Write(b)

	return err
}
