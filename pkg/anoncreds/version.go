package anoncreds

import "context"

var (
	Version        = "v0.0.0-in-progress"
	NativeFallback = "unknown"
)

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// NativeVersion returns the version reported by the registered library, or
// NativeFallback when none is registered or the call fails.
func NativeVersion() string {
	a, err := Default()
	if err != nil {
		return NativeFallback
	}
	v, err := a.Version(context.Background())
	if err != nil || v == "" {
		return NativeFallback
	}
	return v
}
