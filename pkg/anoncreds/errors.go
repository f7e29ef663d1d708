package anoncreds

import (
	"errors"
	"fmt"

	"github.com/anoncreds/anoncreds-go/internal/native"
)

// ErrorCode is the numeric result code reported by libanoncreds.
type ErrorCode int64

const (
	ErrorCodeSuccess ErrorCode = iota
	ErrorCodeInput
	ErrorCodeIOError
	ErrorCodeInvalidState
	ErrorCodeUnexpected
	ErrorCodeCredentialRevoked
	ErrorCodeInvalidUserRevocID
	ErrorCodeProofRejected
	ErrorCodeRevocationRegistryFull
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCodeSuccess:                "Success",
	ErrorCodeInput:                  "Input",
	ErrorCodeIOError:                "IOError",
	ErrorCodeInvalidState:           "InvalidState",
	ErrorCodeUnexpected:             "Unexpected",
	ErrorCodeCredentialRevoked:      "CredentialRevoked",
	ErrorCodeInvalidUserRevocID:     "InvalidUserRevocId",
	ErrorCodeProofRejected:          "ProofRejected",
	ErrorCodeRevocationRegistryFull: "RevocationRegistryFull",
}

func (c ErrorCode) String() string {
	if s, ok := errorCodeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("ErrorCode(%d)", int64(c))
}

// ErrorDetailsUnavailable replaces the message of a failed call whose error
// record could not be trusted.
const ErrorDetailsUnavailable = "error details unavailable: the native error slot did not match the failing call"

var (
	// ErrNotBuilt reports that no native loader exists for this platform.
	ErrNotBuilt = native.ErrNotBuilt

	// ErrLibraryLoad reports that the shared object could not be loaded.
	ErrLibraryLoad = errors.New("anoncreds: cannot load libanoncreds")

	// ErrLibraryNotFound reports that no shared object was located. It is
	// always wrapped together with ErrLibraryLoad.
	ErrLibraryNotFound = native.ErrLibraryNotFound

	// ErrLibraryBind reports a shared object that does not export every
	// entry point. It is always wrapped together with ErrLibraryLoad.
	ErrLibraryBind = native.ErrBind

	// ErrLibraryClosed is returned by calls made after Close.
	ErrLibraryClosed = errors.New("anoncreds: library closed")

	// ErrNotRegistered is returned by Default before any instance was
	// attached.
	ErrNotRegistered = errors.New("anoncreds: no native library registered; call anoncreds.Register with an instance from anoncreds.Open or anoncreds.New first")

	// ErrHandleReleased is returned when a released handle is read or
	// passed to a call.
	ErrHandleReleased = errors.New("anoncreds: object handle already released")

	// ErrUnexpectedNull reports a successful call that left a required
	// output empty.
	ErrUnexpectedNull = errors.New("anoncreds: native call succeeded but returned no value")

	// ErrErrorChannelMismatch matches every *Error whose message was
	// replaced by ErrorDetailsUnavailable.
	ErrErrorChannelMismatch = errors.New("anoncreds: error channel mismatch")

	errNilParams = errors.New("anoncreds: nil params")

	// ErrSerialization matches every *SerializationError.
	ErrSerialization = native.ErrSerialization
)

// SerializationError names an argument that could not be converted to its
// native shape. No native call is made when one is returned.
type SerializationError = native.SerializationError

// Error is a failure reported by libanoncreds.
type Error struct {
	Code     ErrorCode
	Message  string
	Function string
	// Mismatch is set when the error slot held another call's record.
	Mismatch bool
}

func (e *Error) Error() string {
	if e.Function == "" {
		return fmt.Sprintf("anoncreds: %s (%d): %s", e.Code, int64(e.Code), e.Message)
	}
	return fmt.Sprintf("anoncreds: %s: %s (%d): %s", e.Function, e.Code, int64(e.Code), e.Message)
}

// Is matches ErrErrorChannelMismatch for placeholder errors and any *Error
// carrying the same code.
func (e *Error) Is(target error) bool {
	if target == ErrErrorChannelMismatch {
		return e.Mismatch
	}
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// CodeOf returns the native result code carried by err, or
// ErrorCodeSuccess when err is not a native failure.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrorCodeSuccess
}

func serializationErr(field, format string, args ...any) error {
	return &SerializationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
