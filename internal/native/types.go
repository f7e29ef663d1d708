package native

import "errors"

// ObjectHandle is the opaque integer naming an object owned by the native
// library. It is a size_t on the C side. Zero means "no object".
type ObjectHandle uintptr

// ErrorCode is the signed result code returned by every fallible entry
// point. Zero is success.
type ErrorCode int64

// Success is the only non-failure result code.
const Success ErrorCode = 0

// EnvLibraryPath overrides shared object discovery.
const EnvLibraryPath = "ANONCREDS_LIBRARY_PATH"

var (
	// ErrNotBuilt reports that no native loader is available for the
	// current platform or that the package was built without cgo.
	ErrNotBuilt = errors.New("anoncreds/internal/native: native bindings not built for this platform")

	// ErrLibraryNotFound reports that no shared object could be located.
	ErrLibraryNotFound = errors.New("anoncreds/internal/native: libanoncreds not found")

	// ErrBind reports that a shared object was loaded but does not export
	// every entry point of the call table.
	ErrBind = errors.New("anoncreds/internal/native: cannot bind libanoncreds")
)
