package anoncreds

import "github.com/anoncreds/anoncreds-go/internal/native"

// SetOpenLibrary swaps the loader used by Open until the returned func runs.
func SetOpenLibrary(open func(path string) (native.Library, error)) (restore func()) {
	prev := openLibrary
	openLibrary = open
	return func() { openLibrary = prev }
}
