package anoncreds

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/anoncreds/anoncreds-go/internal/native"
)

// callMu serializes every invoke-then-fetch-error sequence. The native
// error slot is process-wide, so the lock is too.
var callMu sync.Mutex

// nativeCall describes one facade operation. lower runs with callMu held
// and fills arena memory and output slots; call performs the single native
// invocation; collect reads the outputs once call reported success.
type nativeCall struct {
	op      string
	fn      string
	args    []native.Arg
	lower   func(l *lowerer)
	call    func() native.ErrorCode
	collect func() error
}

// ready fails fast for an instance that cannot reach a library. Methods
// that validate input before invoking check it first.
func (a *Anoncreds) ready() error {
	if a == nil || a.lib == nil {
		return ErrNotRegistered
	}
	if a.closed.Load() {
		return ErrLibraryClosed
	}
	return nil
}

// invoke runs c: serialize, lock, lower, call, check the code, consult the
// error channel or collect outputs.
func (a *Anoncreds) invoke(ctx context.Context, c nativeCall) (err error) {
	if err := a.ready(); err != nil {
		return err
	}
	if err := checkHandles(c.args); err != nil {
		return err
	}
	values, err := native.SerializeArguments(c.args...)
	if err != nil {
		return err
	}

	ctx, span := a.tracer.Start(ctx, "anoncreds."+c.op,
		trace.WithAttributes(attribute.String("anoncreds.function", c.fn)))
	defer span.End()

	start := time.Now()
	rc := native.Success
	called := false
	err = func() error {
		callMu.Lock()
		defer callMu.Unlock()
		// Close may have unloaded the library while we waited.
		if a.closed.Load() {
			return ErrLibraryClosed
		}

		ar := native.NewArena()
		defer ar.Release()

		l := &lowerer{ar: ar, values: values}
		if c.lower != nil {
			c.lower(l)
		}
		if l.err != nil {
			return l.err
		}

		called = true
		rc = c.call()
		if rc != native.Success {
			return a.errorFromChannel(ctx, c.fn, rc)
		}
		if c.collect != nil {
			return c.collect()
		}
		return nil
	}()

	if called {
		elapsed := time.Since(start)
		a.metrics.ObserveCall(c.fn, err != nil, elapsed)
		a.log.Debug(ctx, "native call", "function", c.fn, "code", int64(rc), "duration", elapsed)
	}
	if err != nil {
		span.SetAttributes(attribute.Int64("anoncreds.error_code", int64(CodeOf(err))))
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// checkHandles rejects released handles before anything is serialized.
func checkHandles(args []native.Arg) error {
	for _, arg := range args {
		switch v := arg.Value.(type) {
		case *ObjectHandle:
			if v.isReleased() {
				return fmt.Errorf("%s: %w", arg.Name, ErrHandleReleased)
			}
		case []*ObjectHandle:
			for i, h := range v {
				if h.isReleased() {
					return fmt.Errorf("%s[%d]: %w", arg.Name, i, ErrHandleReleased)
				}
			}
		}
	}
	return nil
}

// lowerer reads serialized values and lowers them into the call arena. The
// first failure sticks; later reads return zero values.
type lowerer struct {
	ar     *native.Arena
	values native.Values
	err    error
}

func (l *lowerer) fail(err error) {
	if l.err == nil {
		l.err = err
	}
}

func (l *lowerer) present(name string) (native.Value, bool) {
	v := l.values.Get(name)
	if v.Kind == native.KindNull {
		l.fail(serializationErr(name, "required value missing"))
		return v, false
	}
	return v, l.err == nil
}

// text lowers a required string.
func (l *lowerer) text(name string) *byte {
	v, ok := l.present(name)
	if !ok {
		return nil
	}
	p, err := l.ar.Text(v)
	l.fail(err)
	return p
}

// optText lowers an optional string; absent lowers to a null pointer.
func (l *lowerer) optText(name string) *byte {
	if l.err != nil {
		return nil
	}
	p, err := l.ar.Text(l.values.Get(name))
	l.fail(err)
	return p
}

// secret lowers a required string that is zeroized after the call.
func (l *lowerer) secret(name string) *byte {
	v, ok := l.present(name)
	if !ok {
		return nil
	}
	p, err := l.ar.Secret(v)
	l.fail(err)
	return p
}

func (l *lowerer) bytes(name string) native.ByteBuffer {
	v, ok := l.present(name)
	if !ok {
		return native.ByteBuffer{}
	}
	b, err := l.ar.Bytes(v)
	l.fail(err)
	return b
}

// handle lowers a required handle.
func (l *lowerer) handle(name string) native.ObjectHandle {
	v, ok := l.present(name)
	if !ok {
		return 0
	}
	h, err := l.ar.Handle(v)
	l.fail(err)
	if h == 0 {
		l.fail(serializationErr(name, "required handle is zero"))
	}
	return h
}

// optHandle lowers an optional handle; absent lowers to zero.
func (l *lowerer) optHandle(name string) native.ObjectHandle {
	if l.err != nil {
		return 0
	}
	h, err := l.ar.Handle(l.values.Get(name))
	l.fail(err)
	return h
}

func (l *lowerer) int8(name string) int8 {
	if l.err != nil {
		return 0
	}
	v, err := l.ar.Int8(l.values.Get(name))
	l.fail(err)
	return v
}

// int64 lowers an integer; absent lowers to the absent sentinel.
func (l *lowerer) int64(name string, absent int64) int64 {
	if l.err != nil {
		return 0
	}
	v, err := l.ar.Int64(l.values.Get(name), absent)
	l.fail(err)
	return v
}

func (l *lowerer) strs(name string) native.FfiStrList {
	if l.err != nil {
		return native.FfiStrList{}
	}
	v, err := l.ar.Strings(l.values.Get(name))
	l.fail(err)
	return v
}

func (l *lowerer) ints(name string) native.FfiI32List {
	if l.err != nil {
		return native.FfiI32List{}
	}
	v, err := l.ar.Ints(l.values.Get(name))
	l.fail(err)
	return v
}

func (l *lowerer) handles(name string) native.FfiObjectHandleList {
	if l.err != nil {
		return native.FfiObjectHandleList{}
	}
	v, err := l.ar.Handles(l.values.Get(name))
	l.fail(err)
	return v
}

// takeString copies a native string and frees it. A nil pointer is
// ErrUnexpectedNull.
func (a *Anoncreds) takeString(fn string, p *byte) (string, error) {
	if p == nil {
		return "", fmt.Errorf("%s: %w", fn, ErrUnexpectedNull)
	}
	s := native.GoString(p)
	a.lib.StringFree(p)
	return s, nil
}

// takeOptString is takeString for outputs that may legitimately be null.
func (a *Anoncreds) takeOptString(p *byte) (string, bool) {
	if p == nil {
		return "", false
	}
	s := native.GoString(p)
	a.lib.StringFree(p)
	return s, true
}

// takeBuffer copies a native buffer and frees it.
func (a *Anoncreds) takeBuffer(fn string, b native.ByteBuffer) ([]byte, error) {
	if b.Data == nil {
		return nil, fmt.Errorf("%s: %w", fn, ErrUnexpectedNull)
	}
	out := b.Bytes()
	a.lib.BufferFree(b)
	return out, nil
}

// adopt wraps freshly created native handles. When any of them is zero the
// others are freed and ErrUnexpectedNull is returned.
func (a *Anoncreds) adopt(fn string, hs ...native.ObjectHandle) ([]*ObjectHandle, error) {
	for _, h := range hs {
		if h != 0 {
			continue
		}
		for _, other := range hs {
			if other != 0 {
				a.lib.ObjectFree(other)
			}
		}
		return nil, fmt.Errorf("%s: %w", fn, ErrUnexpectedNull)
	}
	out := make([]*ObjectHandle, len(hs))
	for i, h := range hs {
		out[i] = a.wrap(h)
	}
	return out, nil
}

// adoptOne is adopt for the common single-output case.
func (a *Anoncreds) adoptOne(fn string, h native.ObjectHandle) (*ObjectHandle, error) {
	hs, err := a.adopt(fn, h)
	if err != nil {
		return nil, err
	}
	return hs[0], nil
}
