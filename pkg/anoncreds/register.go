package anoncreds

import "sync/atomic"

var registered atomic.Pointer[Anoncreds]

// Register makes a the instance returned by Default. Passing nil clears the
// registration.
func Register(a *Anoncreds) {
	registered.Store(a)
}

// Default returns the registered instance, or ErrNotRegistered.
func Default() (*Anoncreds, error) {
	a := registered.Load()
	if a == nil {
		return nil, ErrNotRegistered
	}
	return a, nil
}
