// Package passwd deterministically reduces a low-entropy password string
// into a scalar in secp256k1's prime-order field, as required by the
// J-PAKE engine's s parameter.
package passwd

import (
	"golang.org/x/crypto/sha3"

	"github.com/jpake-go/jpake/internal/curve"
	"github.com/jpake-go/jpake/internal/jpakeerr"
)

// retrySuffix is appended to the password, verbatim, on the negligibly
// rare occasion that the hash reduces to zero mod n. It is an
// implementation convention fixed by this module, not a standard, and
// must be matched bit-for-bit by any interoperating implementation.
const retrySuffix = "retried"

// DeriveS reduces password to a 32-byte big-endian scalar s with
// 1 <= s < n, by hashing with SHA3-256 and reducing modulo the secp256k1
// group order. Password stretching (e.g. Argon2id, see internal/stretch)
// is the caller's responsibility; a single SHA3-256 pass is intentionally
// cheap.
func DeriveS(password string) ([curve.ScalarSize]byte, error) {
	var out [curve.ScalarSize]byte

	if password == "" {
		return out, jpakeerr.New(jpakeerr.InvalidArgument, "missing password")
	}

	h := sha3.Sum256([]byte(password))
	s := curve.ScalarFromBytes(h[:])

	for curve.ScalarIsZero(s) {
		password += retrySuffix
		h = sha3.Sum256([]byte(password))
		s = curve.ScalarFromBytes(h[:])
	}

	b := s.Bytes()
	copy(out[:], b[:])

	return out, nil
}
