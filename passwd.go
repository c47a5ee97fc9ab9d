package jpake

import (
	"github.com/jpake-go/jpake/internal/passwd"
	"github.com/jpake-go/jpake/internal/stretch"
)

// DeriveS deterministically reduces password to a 32-byte big-endian
// scalar s with 1 <= s < n, the shared value both parties pass to Round2.
// It fails with an InvalidArgument Error if password is empty.
func DeriveS(password string) ([ScalarSize]byte, error) {
	return passwd.DeriveS(password)
}

// StretchParams contains the parameters of the optional Argon2id
// key-stretching step offered by Stretch.
type StretchParams = stretch.Params

// DefaultStretchParams are the Argon2id parameters Stretch uses when
// params is nil.
var DefaultStretchParams = stretch.DefaultParams

// NewStretchSalt generates a fresh random salt for use with Stretch.
func NewStretchSalt() ([]byte, error) {
	return stretch.NewSalt()
}

// Stretch strengthens a low-entropy password with Argon2id before it's
// passed to DeriveS. This package's own guarantees hold regardless of
// password entropy only insofar as the protocol prevents offline search
// given just wire traffic; if the password itself is guessable, callers
// must stretch it first, and must transport the salt alongside the
// protocol messages so the peer can reproduce the same stretched value.
func Stretch(password string, salt []byte, params *StretchParams) (string, error) {
	return stretch.Stretch(password, salt, params)
}
