package jpake

import (
	"encoding"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/jpake-go/jpake/internal/schnorr"
)

const (
	round1WireSize = 2*PointSize + 2*schnorr.ProofSize // 200 bytes
	round2WireSize = PointSize + schnorr.ProofSize     // 100 bytes
)

// MarshalBinary encodes r as the fixed 200-byte concatenation
// G1 || G2 || ZKPx1 || ZKPx2.
func (r *Round1Result) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, round1WireSize)
	buf = append(buf, r.G1[:]...)
	buf = append(buf, r.G2[:]...)
	buf = append(buf, r.ZKPx1[:]...)
	buf = append(buf, r.ZKPx2[:]...)

	return buf, nil
}

// UnmarshalBinary decodes the result of MarshalBinary.
func (r *Round1Result) UnmarshalBinary(data []byte) error {
	if len(data) != round1WireSize {
		return newErr(InvalidArgument, "round1 message must be 200 bytes")
	}

	copy(r.G1[:], data[:PointSize])
	copy(r.G2[:], data[PointSize:2*PointSize])
	copy(r.ZKPx1[:], data[2*PointSize:2*PointSize+schnorr.ProofSize])
	copy(r.ZKPx2[:], data[2*PointSize+schnorr.ProofSize:])

	return nil
}

// MarshalText encodes r as unpadded base58 text, suitable for pasting into
// a QR code or a chat window.
func (r *Round1Result) MarshalText() ([]byte, error) {
	b, err := r.MarshalBinary()
	if err != nil {
		return nil, err
	}

	return []byte(base58.Encode(b)), nil
}

// UnmarshalText decodes the result of MarshalText.
func (r *Round1Result) UnmarshalText(text []byte) error {
	b, err := base58.Decode(string(text))
	if err != nil {
		return wrapErrf(InvalidArgument, err, "invalid round1 message: not valid base58 (%d bytes)", len(text))
	}

	return r.UnmarshalBinary(b)
}

// String returns r as base58 text.
func (r *Round1Result) String() string {
	text, err := r.MarshalText()
	if err != nil {
		panic(err)
	}

	return string(text)
}

// MarshalBinary encodes r as the fixed 100-byte concatenation
// A || ZKPx2s.
func (r *Round2Result) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, round2WireSize)
	buf = append(buf, r.A[:]...)
	buf = append(buf, r.ZKPx2s[:]...)

	return buf, nil
}

// UnmarshalBinary decodes the result of MarshalBinary.
func (r *Round2Result) UnmarshalBinary(data []byte) error {
	if len(data) != round2WireSize {
		return newErr(InvalidArgument, "round2 message must be 100 bytes")
	}

	copy(r.A[:], data[:PointSize])
	copy(r.ZKPx2s[:], data[PointSize:])

	return nil
}

// MarshalText encodes r as unpadded base58 text.
func (r *Round2Result) MarshalText() ([]byte, error) {
	b, err := r.MarshalBinary()
	if err != nil {
		return nil, err
	}

	return []byte(base58.Encode(b)), nil
}

// UnmarshalText decodes the result of MarshalText.
func (r *Round2Result) UnmarshalText(text []byte) error {
	b, err := base58.Decode(string(text))
	if err != nil {
		return wrapErrf(InvalidArgument, err, "invalid round2 message: not valid base58 (%d bytes)", len(text))
	}

	return r.UnmarshalBinary(b)
}

// String returns r as base58 text.
func (r *Round2Result) String() string {
	text, err := r.MarshalText()
	if err != nil {
		panic(err)
	}

	return string(text)
}

var (
	_ encoding.BinaryMarshaler   = &Round1Result{}
	_ encoding.BinaryUnmarshaler = &Round1Result{}
	_ encoding.TextMarshaler     = &Round1Result{}
	_ encoding.TextUnmarshaler   = &Round1Result{}
	_ fmt.Stringer               = &Round1Result{}

	_ encoding.BinaryMarshaler   = &Round2Result{}
	_ encoding.BinaryUnmarshaler = &Round2Result{}
	_ encoding.TextMarshaler     = &Round2Result{}
	_ encoding.TextUnmarshaler   = &Round2Result{}
	_ fmt.Stringer               = &Round2Result{}
)
