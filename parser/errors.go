package parser

import "errors"

// Kind is a stable category for programmatic error handling.
//
// These categories are intended to remain stable across versions.
// Callers should branch on Kind rather than matching error strings.
//
// NOTE: Error() strings are intentionally kept human-readable and may evolve.
// Use errors.As to extract *Error for structured handling.
type Kind string

const (
	// KindUnknownSource: the record's source identifier is not the one this
	// parser was built for. No decoder ran.
	KindUnknownSource Kind = "UnknownSource"
	// KindInsufficientData: the buffer is shorter than a required
	// discriminator or structural minimum.
	KindInsufficientData Kind = "InsufficientData"
	// KindDiscriminatorMismatch: the buffer is long enough but its leading
	// bytes do not match the entry's discriminator.
	KindDiscriminatorMismatch Kind = "DiscriminatorMismatch"
	// KindDeserialization: the structural decode rejected the payload.
	KindDeserialization Kind = "DeserializationFailed"
	// KindNoMatch: every registered decoder was tried and none accepted
	// the input.
	KindNoMatch Kind = "NoMatch"
	// KindInvalidData: a post-processing transform (e.g. pretty re-render)
	// failed on otherwise-decoded data.
	KindInvalidData Kind = "InvalidData"
)

// Error is the library's structured error type.
//
// Expected/Actual are populated for UnknownSource so callers can report
// which source a record belonged to without parsing the message text.
//
// Message is intended for humans; do not match on it.
type Error struct {
	Kind     Kind
	Message  string
	Expected string
	Actual   string
	Cause    error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, msg string) error {
	return &Error{Kind: kind, Message: msg}
}

func wrapError(kind Kind, msg string, cause error) error {
	if cause == nil {
		return newError(kind, msg)
	}
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// ErrKind returns the Kind for a structured error, or "" if err does not
// carry one.
func ErrKind(err error) Kind {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Kind
}
