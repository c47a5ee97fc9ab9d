// Package jpakeerr defines the small error taxonomy shared by every layer of
// the J-PAKE core. It exists as its own package, rather than living at the
// module root, so that internal/schnorr, internal/passwd and internal/stretch
// can construct and inspect these errors without importing the root package that in turn
// imports them.
package jpakeerr

import (
	"errors"
	"fmt"

	"golang.org/x/xerrors"
)

// Kind identifies the category of a failure surfaced by this module.
type Kind int

const (
	// InvalidArgument means a caller-supplied value was syntactically or
	// semantically out of range.
	InvalidArgument Kind = iota
	// InvalidState means an operation was invoked outside its permitted
	// source state.
	InvalidState
	// VerificationError means a cryptographic check failed.
	VerificationError
	// Internal means an invariant inside this module was violated. It
	// should never occur in practice.
	Internal
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case InvalidState:
		return "invalid state"
	case VerificationError:
		return "verification error"
	case Internal:
		return "internal error"
	default:
		return "unknown error"
	}
}

// Error is the concrete error type returned by every public operation in
// this module. It never carries secret material in Msg.
type Error struct {
	Kind  Kind
	Msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.cause)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap returns the underlying cause, if any, allowing errors.Is/As to see
// through this error to whatever the curve library or a nested check
// reported.
func (e *Error) Unwrap() error {
	return e.cause
}

// New returns a new Error of the given kind with no wrapped cause.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap returns a new Error of the given kind that wraps cause.
func Wrap(kind Kind, msg string, cause error) error {
	return &Error{Kind: kind, Msg: msg, cause: cause}
}

// Wrapf is Wrap with a formatted message, built with xerrors so that older
// call sites which predate native %w support still compose correctly.
func Wrapf(kind Kind, cause error, format string, args ...interface{}) error {
	msg := xerrors.Errorf(format, args...).Error()
	return &Error{Kind: kind, Msg: msg, cause: cause}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}

	return false
}
