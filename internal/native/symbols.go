package native

import "fmt"

// symbols maps every C symbol of the call table to its address in the
// loaded library.
type symbols map[string]uintptr

// resolveSymbols looks up every entry point of the call table with lookup,
// which is dlsym on the loaded library. A missing symbol or a null address
// fails the whole bind with ErrBind.
func resolveSymbols(lookup func(name string) (uintptr, error)) (symbols, error) {
	names := Names()
	sym := make(symbols, len(names))
	for _, name := range names {
		addr, err := lookup(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrBind, name, err)
		}
		if addr == 0 {
			return nil, fmt.Errorf("%w: %s resolved to a null address", ErrBind, name)
		}
		sym[name] = addr
	}
	return sym, nil
}
