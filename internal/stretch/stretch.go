// Package stretch offers an optional key-stretching step ahead of
// passwd.DeriveS, for callers whose password may not carry enough entropy
// to resist offline search given only wire traffic. Applying it is the
// caller's responsibility; the J-PAKE engine itself treats s as opaque.
package stretch

import (
	"crypto/rand"
	"encoding/base64"

	"golang.org/x/crypto/argon2"

	"github.com/jpake-go/jpake/internal/jpakeerr"
)

// SaltSize is the length in bytes of a freshly generated salt.
const SaltSize = 16

// Params contains the parameters of the Argon2id key-stretching function.
type Params struct {
	Time, Memory uint32
	Parallelism  uint8
	KeyLen       uint32
}

// DefaultParams are the parameters Stretch uses when params is nil: one
// pass over 64 MiB of memory with four lanes, producing a 32-byte key.
var DefaultParams = Params{
	Time:        1,
	Memory:      64 * 1024,
	Parallelism: 4,
	KeyLen:      32,
}

// NewSalt generates a fresh random salt of SaltSize bytes.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, jpakeerr.Wrap(jpakeerr.Internal, "stretch: failed to generate salt", err)
	}

	return salt, nil
}

// Stretch derives a high-entropy passphrase from a low-entropy password
// and salt using Argon2id, and returns it base64-encoded so it can be
// passed directly to passwd.DeriveS, which expects a string.
func Stretch(password string, salt []byte, params *Params) (string, error) {
	if password == "" {
		return "", jpakeerr.New(jpakeerr.InvalidArgument, "missing password")
	}

	if len(salt) == 0 {
		return "", jpakeerr.New(jpakeerr.InvalidArgument, "missing salt")
	}

	p := DefaultParams
	if params != nil {
		p = *params
	}

	key := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Parallelism, p.KeyLen)

	return base64.RawStdEncoding.EncodeToString(key), nil
}
