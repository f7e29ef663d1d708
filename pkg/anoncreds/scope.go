package anoncreds

import (
	"context"
	"sync"
)

// Scope collects handles that must be released together. Close releases
// every tracked handle; Keep removes one from the set so it outlives the
// scope. The usual shape is:
//
//	s := a.NewScope()
//	defer s.Close()
//	schema, err := s.Resolve(ctx, anoncreds.KindSchema, schemaJSON)
type Scope struct {
	owner   *Anoncreds
	mu      sync.Mutex
	handles []*ObjectHandle
}

// NewScope returns an empty scope bound to a.
func (a *Anoncreds) NewScope() *Scope {
	return &Scope{owner: a}
}

// Track adds h to the scope and returns it. Nil is ignored.
func (s *Scope) Track(h *ObjectHandle) *ObjectHandle {
	if h == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handles = append(s.handles, h)
	return h
}

// Keep removes h from the scope and returns it.
func (s *Scope) Keep(h *ObjectHandle) *ObjectHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, tracked := range s.handles {
		if tracked == h {
			s.handles = append(s.handles[:i], s.handles[i+1:]...)
			break
		}
	}
	return h
}

// Len reports the number of tracked handles.
func (s *Scope) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handles)
}

// FromJSON parses v and tracks the new handle.
func (s *Scope) FromJSON(ctx context.Context, kind ObjectKind, v any) (*ObjectHandle, error) {
	h, err := s.owner.FromJSON(ctx, kind, v)
	if err != nil {
		return nil, err
	}
	return s.Track(h), nil
}

// Resolve accepts either an existing handle, returned as is and not
// tracked, or JSON input, parsed into a tracked temporary handle.
func (s *Scope) Resolve(ctx context.Context, kind ObjectKind, v any) (*ObjectHandle, error) {
	switch h := v.(type) {
	case *ObjectHandle:
		if h.isReleased() {
			return nil, ErrHandleReleased
		}
		return h, nil
	case nil:
		return nil, nil
	}
	return s.FromJSON(ctx, kind, v)
}

// Close releases the tracked handles in reverse order. It always returns
// nil and may be called more than once.
func (s *Scope) Close() error {
	s.mu.Lock()
	handles := s.handles
	s.handles = nil
	s.mu.Unlock()
	for i := len(handles) - 1; i >= 0; i-- {
		handles[i].Release()
	}
	return nil
}
