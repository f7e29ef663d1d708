package anoncreds

import (
	"context"
	"io"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/anoncreds/anoncreds-go/internal/native"
	"github.com/anoncreds/anoncreds-go/pkg/anoncreds/logging"
	"github.com/anoncreds/anoncreds-go/pkg/anoncreds/metrics"
)

const tracerName = "github.com/anoncreds/anoncreds-go/pkg/anoncreds"

// Anoncreds is the operation facade over one native library instance. It is
// safe for concurrent use; native calls are serialized internally.
type Anoncreds struct {
	lib     native.Library
	closer  io.Closer
	log     logging.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
	closed  atomic.Bool
}

// Option configures an Anoncreds instance.
type Option func(*Anoncreds)

// WithLogger sets the logger. The default writes through slog.Default().
func WithLogger(l logging.Logger) Option {
	return func(a *Anoncreds) {
		if l != nil {
			a.log = l
		}
	}
}

// WithMetrics records call and handle metrics into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Anoncreds) { a.metrics = m }
}

// WithTracerProvider sets the provider spans are started from. The default
// is the global otel provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(a *Anoncreds) {
		if tp != nil {
			a.tracer = tp.Tracer(tracerName)
		}
	}
}

// New attaches a native library implementation: the loader behind Open,
// the in-memory library used in tests, or a mock. native.Library lives in an
// internal package, so only code inside this module can supply one; other
// callers use Open. An instance built with a nil library returns
// ErrNotRegistered from every call.
func New(lib native.Library, opts ...Option) *Anoncreds {
	a := &Anoncreds{
		lib:    lib,
		log:    logging.New(nil),
		tracer: otel.GetTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(a)
	}
	if c, ok := lib.(io.Closer); ok {
		a.closer = c
	}
	return a
}

// Close unloads the native library when the instance owns it. It waits for
// the call in flight; calls queued behind it return ErrLibraryClosed.
// Handles created by this instance must not be used afterwards. Calling
// Close twice returns ErrLibraryClosed.
func (a *Anoncreds) Close() error {
	if a == nil {
		return nil
	}
	if !a.closed.CompareAndSwap(false, true) {
		return ErrLibraryClosed
	}
	if a.closer == nil {
		return nil
	}
	callMu.Lock()
	defer callMu.Unlock()
	return a.closer.Close()
}

// Version returns the version string of the native library.
func (a *Anoncreds) Version(ctx context.Context) (string, error) {
	var v *byte
	err := a.invoke(ctx, nativeCall{
		op: "Version",
		fn: native.FnVersion,
		call: func() native.ErrorCode {
			v = a.lib.Version()
			return native.Success
		},
	})
	if err != nil {
		return "", err
	}
	return native.GoString(v), nil
}

// SetDefaultLogger routes native log output to the library's default
// logger.
func (a *Anoncreds) SetDefaultLogger(ctx context.Context) error {
	return a.invoke(ctx, nativeCall{
		op:   "SetDefaultLogger",
		fn:   native.FnSetDefaultLogger,
		call: func() native.ErrorCode { return a.lib.SetDefaultLogger() },
	})
}

// GenerateNonce returns a fresh 80-bit decimal nonce.
func (a *Anoncreds) GenerateNonce(ctx context.Context) (string, error) {
	var out **byte
	var nonce string
	err := a.invoke(ctx, nativeCall{
		op:    "GenerateNonce",
		fn:    native.FnGenerateNonce,
		lower: func(l *lowerer) { out = l.ar.OutString() },
		call:  func() native.ErrorCode { return a.lib.GenerateNonce(out) },
		collect: func() (err error) {
			nonce, err = a.takeString(native.FnGenerateNonce, *out)
			return err
		},
	})
	return nonce, err
}
