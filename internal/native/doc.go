// Package native contains the foreign-function boundary to libanoncreds.
//
// # Design Principles
//
// 1. Isolation: ALL code that touches unsafe memory, cgo or the dynamic
//    loader lives in this package. pkg/anoncreds only sees typed layouts,
//    Values and the Library interface.
//
// 2. Fixed layouts: every compound value that crosses the boundary has a
//    pure-Go mirror in layout.go whose field order and widths match the C
//    declarations. Layouts are never negotiated at runtime.
//
// 3. One signature per entry point: calltable.go declares the parameter
//    and return convention of every exported native function. The loader
//    resolves each one with dlsym and calls it through a cgo trampoline
//    declared with the anoncreds.h prototype.
//
// 4. Memory Management: Go memory handed to the library is allocated and
//    pinned by an Arena for exactly one call. Memory handed back by the
//    library (strings, byte buffers) is copied into Go memory and released
//    through the matching anoncreds_*_free function.
//
// 5. Build split: the loader needs cgo on darwin or linux. Any other
//    build gets a stub whose Open returns ErrNotBuilt.
//
// # Threading
//
// libanoncreds reports errors through a single process-wide slot. This
// package does not serialize calls; pkg/anoncreds holds a binding-wide lock
// around every invoke-then-fetch-error sequence.
package native
