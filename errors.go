package jpake

import "github.com/jpake-go/jpake/internal/jpakeerr"

// Kind identifies the category of a failure returned by this package.
type Kind = jpakeerr.Kind

const (
	// InvalidArgument means a caller-supplied value was syntactically or
	// semantically out of range: an empty password, an empty userID, a
	// missing field, a point that doesn't decode, s = 0 mod n, or an
	// identifier exceeding 255 bytes.
	InvalidArgument = jpakeerr.InvalidArgument
	// InvalidState means an operation was invoked outside its permitted
	// source state, e.g. calling Round2 before Round1.
	InvalidState = jpakeerr.InvalidState
	// VerificationError means a cryptographic check failed: a peer's ZKP
	// didn't verify, a peer's identity collided with the local one, a
	// computed generator or received point was the point at infinity.
	VerificationError = jpakeerr.VerificationError
	// Internal means an invariant inside this package was violated. It
	// should never occur.
	Internal = jpakeerr.Internal
)

// Error is the concrete error type returned by every operation in this
// package. No Error carries secret material in its message.
type Error = jpakeerr.Error

// IsKind reports whether err is a *jpake.Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return jpakeerr.Is(err, kind)
}

func newErr(kind Kind, msg string) error {
	return jpakeerr.New(kind, msg)
}

func wrapErr(kind Kind, msg string, cause error) error {
	return jpakeerr.Wrap(kind, msg, cause)
}

func wrapErrf(kind Kind, cause error, format string, args ...interface{}) error {
	return jpakeerr.Wrapf(kind, cause, format, args...)
}
