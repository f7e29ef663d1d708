// Package mocklib provides an in-memory implementation of native.Library for
// tests and examples.
//
// It models the observable behaviour of libanoncreds closely enough to drive
// the full issuance, revocation and presentation flow without the shared
// object: objects live in a handle table, JSON shapes use the native field
// names, and errors go through a single process-wide slot that is consumed
// by GetCurrentError.
//
// # Fault Injection
//
//	lib := mocklib.New()
//	lib.FailNext(native.FnCreateSchema, 17, "boom")
//	lib.InterleaveError(42, "overwritten")  // lands before the next fetch
//	lib.FailErrorFetch(true)                // GetCurrentError itself fails
//
// # Limitations
//
// No cryptography happens here. Signatures, accumulators and proofs are
// opaque placeholders; verification only checks structural consistency,
// nonces, attribute encodings, timestamps and revocation bits. Not suitable
// for production use.
package mocklib
