// Package jpake implements Password Authenticated Key Exchange by Juggling
// over secp256k1, per RFC 8236, using the non-interactive Schnorr
// zero-knowledge proof of RFC 8235 as its building block.
//
// Two parties who share a low-entropy password each derive a strong,
// high-entropy shared key, such that an adversary who only observes or
// tampers with the messages exchanged learns nothing exploitable about the
// password beyond one online guess per attempted session, and cannot force
// the parties onto a key of the adversary's choosing.
//
// This package covers the protocol engine only. It does not perform any
// I/O: callers are responsible for transporting Round1Result, Round2Result,
// and the three-pass messages between parties, and for stretching weak
// passwords (see the internal/stretch helper, wired in through Stretch)
// before calling DeriveS.
//
// This package is not constant-time and offers no protection against
// timing side-channels, does not support more than two parties, and fixes
// the curve to secp256k1; none of that is configurable.
package jpake

import (
	"github.com/jpake-go/jpake/internal/curve"
)

// ScalarSize is the length in bytes of a scalar's big-endian encoding,
// including the password scalar s and the 32-byte shared key this package
// derives.
const ScalarSize = curve.ScalarSize

// PointSize is the length in bytes of a point's compressed SEC1 encoding.
const PointSize = curve.PointSize
