package anoncreds

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/anoncreds/anoncreds-go/internal/native"
)

// ObjectHandle names an object owned by libanoncreds. It stays valid until
// Release; afterwards every read and every call taking it returns
// ErrHandleReleased. A handle must not be used from several goroutines
// without external synchronization.
type ObjectHandle struct {
	handle   native.ObjectHandle
	owner    *Anoncreds
	released atomic.Bool
}

func (a *Anoncreds) wrap(h native.ObjectHandle) *ObjectHandle {
	a.metrics.HandleCreated()
	return &ObjectHandle{handle: h, owner: a}
}

// Handle returns the native integer. Zero for a nil handle.
func (h *ObjectHandle) Handle() uintptr {
	if h == nil {
		return 0
	}
	return uintptr(h.handle)
}

// NativeHandle lets the argument serializer lower h.
func (h *ObjectHandle) NativeHandle() native.ObjectHandle {
	if h == nil {
		return 0
	}
	return h.handle
}

// Released reports whether Release ran.
func (h *ObjectHandle) Released() bool {
	return h.isReleased()
}

func (h *ObjectHandle) isReleased() bool {
	return h != nil && h.released.Load()
}

func (h *ObjectHandle) String() string {
	if h == nil {
		return "ObjectHandle(nil)"
	}
	if h.isReleased() {
		return fmt.Sprintf("ObjectHandle(%d, released)", h.handle)
	}
	return fmt.Sprintf("ObjectHandle(%d)", h.handle)
}

// ToJSON returns the object's canonical JSON.
func (h *ObjectHandle) ToJSON(ctx context.Context) ([]byte, error) {
	if h == nil || h.owner == nil {
		return nil, fmt.Errorf("anoncreds: nil handle: %w", ErrUnexpectedNull)
	}
	return h.owner.GetJSON(ctx, h)
}

// TypeName returns the native type name, e.g. "Schema".
func (h *ObjectHandle) TypeName(ctx context.Context) (string, error) {
	if h == nil || h.owner == nil {
		return "", fmt.Errorf("anoncreds: nil handle: %w", ErrUnexpectedNull)
	}
	return h.owner.GetTypeName(ctx, h)
}

// Unmarshal decodes the object's JSON into v.
func (h *ObjectHandle) Unmarshal(ctx context.Context, v any) error {
	raw, err := h.ToJSON(ctx)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// Release frees the native object. Releasing twice is a no-op.
func (h *ObjectHandle) Release() {
	if h == nil || h.owner == nil {
		return
	}
	h.owner.release(context.Background(), h)
}

// Close is Release for use with defer and io.Closer.
func (h *ObjectHandle) Close() error {
	h.Release()
	return nil
}

func (a *Anoncreds) release(ctx context.Context, h *ObjectHandle) {
	if !h.released.CompareAndSwap(false, true) {
		a.log.Debug(ctx, "handle already released", "handle", uint64(h.handle))
		return
	}
	if a.closed.Load() {
		return
	}
	callMu.Lock()
	defer callMu.Unlock()
	if a.closed.Load() {
		return
	}
	a.lib.ObjectFree(h.handle)
	a.metrics.HandleReleased()
}
