// Package internalcheck holds source-level policy tests for the binding.
//
// The tests load the module's packages with golang.org/x/tools/go/packages
// and walk their syntax trees. They check that raw memory access stays in
// internal/native, that the facade touches the native library only from
// the call and collect steps of a native call, and that link secrets are
// never handed to a logger or formatter.
//
// # Internal Use Only
//
// This package has no exported API. Applications should use pkg/anoncreds.
package internalcheck
