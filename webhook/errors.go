package webhook

import (
	"errors"
	"fmt"
)

// Kind classifies a verification failure so callers can react differently,
// for example logging replay attempts apart from tampering attempts.
type Kind int

const (
	// KindArgument marks a broken call contract, such as missing headers.
	KindArgument Kind = iota + 1

	// KindTimestamp marks a malformed or out-of-window timestamp.
	KindTimestamp

	// KindSignature marks a signature that could not be produced or matched.
	KindSignature
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindArgument:
		return "argument"
	case KindTimestamp:
		return "timestamp"
	case KindSignature:
		return "signature"
	default:
		return "unknown"
	}
}

// Error is the error type returned by signing and verification.
//
// Errors compare equal under errors.Is when they are the same sentinel, or
// when the target is one of the kind sentinels (ErrArgument, ErrTimestamp,
// ErrSignature) and the kinds match.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return "webhook: " + e.Kind.String() + " error"
	}

	return "webhook: " + e.Msg
}

// Is reports whether target is the kind sentinel for e's kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Msg == "" && t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}

	return 0, false
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// wrap attaches cause to sentinel so that both match under errors.Is.
func wrap(sentinel *Error, cause error) error {
	return fmt.Errorf("%w: %w", sentinel, cause)
}

// Kind sentinels. Use errors.Is(err, ErrTimestamp) to match every
// timestamp failure regardless of the exact reason.
var (
	ErrArgument  = &Error{Kind: KindArgument}
	ErrTimestamp = &Error{Kind: KindTimestamp}
	ErrSignature = &Error{Kind: KindSignature}
)

// Argument errors.
var (
	// ErrMissingHeaders is returned when any of the webhook-id,
	// webhook-timestamp or webhook-signature values is absent.
	ErrMissingHeaders = newError(KindArgument, "missing required webhook headers")

	// ErrInvalidSecret is returned when a secret string is not valid
	// base64 or decodes to an empty key.
	ErrInvalidSecret = newError(KindArgument, "invalid secret")

	// ErrInvalidPayload is returned when an authenticated payload cannot be
	// decoded into the requested form.
	ErrInvalidPayload = newError(KindArgument, "invalid payload")
)

// Timestamp errors.
var (
	// ErrInvalidTimestampFormat is returned when the timestamp header is
	// not a base-10 integer.
	ErrInvalidTimestampFormat = newError(KindTimestamp, "invalid timestamp format")

	// ErrTimestampTooOld is returned when the timestamp lies before the
	// tolerance window.
	ErrTimestampTooOld = newError(KindTimestamp, "message timestamp too old")

	// ErrTimestampTooNew is returned when the timestamp lies after the
	// tolerance window.
	ErrTimestampTooNew = newError(KindTimestamp, "message timestamp too new")
)

// Signature errors.
var (
	// ErrInvalidTimestamp is returned by Sign for a non-positive timestamp.
	ErrInvalidTimestamp = newError(KindSignature, "invalid timestamp")

	// ErrNoMatchingSignature is returned when no v1 entry of the signature
	// header matches the expected signature.
	ErrNoMatchingSignature = newError(KindSignature, "no matching signature found")
)

// Configuration errors.
var (
	// ErrInvalidTolerance is returned when Config.Tolerance is negative.
	ErrInvalidTolerance = errors.New("webhook: tolerance must not be negative")

	// ErrNoVerifier is returned when MiddlewareConfig has no Verifier.
	ErrNoVerifier = errors.New("webhook: verifier must not be nil")

	// ErrNoSigner is returned when TransportConfig has no Signers.
	ErrNoSigner = errors.New("webhook: at least one signer is required")
)
