//go:build !cgo || !(darwin || linux)

package native

// Open always fails when the package is built without cgo or on a
// platform without a loader.
func Open(path string) (Library, error) {
	return nil, ErrNotBuilt
}
