package mocklib

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/anoncreds/anoncreds-go/internal/native"
)

// Native result codes used by the simulated entry points.
const (
	codeInput              native.ErrorCode = 1
	codeInvalidState       native.ErrorCode = 3
	codeUnexpected         native.ErrorCode = 4
	codeCredentialRevoked  native.ErrorCode = 5
	codeInvalidUserRevocID native.ErrorCode = 6
)

// DefaultVersion is the string returned by Version unless overridden.
const DefaultVersion = "0.2.0-mock"

type failure struct {
	code    native.ErrorCode
	message string
}

func (f *failure) Error() string { return f.message }

func inputErr(format string, args ...any) error {
	return &failure{code: codeInput, message: fmt.Sprintf(format, args...)}
}

type object struct {
	typeName string
	value    any
}

// Library is an in-memory native.Library. The zero value is not usable;
// call New.
type Library struct {
	mu sync.Mutex

	version    string
	versionStr *byte
	next       native.ObjectHandle
	objects    map[native.ObjectHandle]*object

	lastErr    *failure
	interleave *failure
	failFetch  bool
	faults     map[string][]*failure

	strings    map[*byte][]byte
	buffers    map[*uint8][]byte
	badFrees   int
	calls      map[string]int
	loggerSet  bool
	closed     bool
	afterClose int
}

var _ native.Library = (*Library)(nil)

// Option configures a Library.
type Option func(*Library)

// WithVersion overrides the reported native version.
func WithVersion(v string) Option {
	return func(l *Library) { l.version = v }
}

// New returns an empty library.
func New(opts ...Option) *Library {
	l := &Library{
		version: DefaultVersion,
		next:    1,
		objects: make(map[native.ObjectHandle]*object),
		faults:  make(map[string][]*failure),
		strings: make(map[*byte][]byte),
		buffers: make(map[*uint8][]byte),
		calls:   make(map[string]int),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// FailNext makes the next call to fn fail with code and message. Multiple
// calls queue in order.
func (l *Library) FailNext(fn string, code native.ErrorCode, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.faults[fn] = append(l.faults[fn], &failure{code: code, message: message})
}

// InterleaveError overwrites the error slot right before the next
// GetCurrentError, as if another thread had failed in between.
func (l *Library) InterleaveError(code native.ErrorCode, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.interleave = &failure{code: code, message: message}
}

// FailErrorFetch makes GetCurrentError return a nonzero code.
func (l *Library) FailErrorFetch(fail bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failFetch = fail
}

// Calls reports how many times the named entry point ran.
func (l *Library) Calls(fn string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls[fn]
}

// TotalCalls reports the number of entry point invocations of any kind.
func (l *Library) TotalCalls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, c := range l.calls {
		n += c
	}
	return n
}

// LiveObjects reports the number of handles not yet freed.
func (l *Library) LiveObjects() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.objects)
}

// OutstandingStrings reports strings handed out and not yet freed.
func (l *Library) OutstandingStrings() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.strings)
}

// OutstandingBuffers reports buffers handed out and not yet freed.
func (l *Library) OutstandingBuffers() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buffers)
}

// InvalidFrees counts frees of pointers this library never handed out, or
// handed out and freed already.
func (l *Library) InvalidFrees() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.badFrees
}

// Close marks the library unloaded. Entry points keep working so tests can
// count the calls that reach it afterwards.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	return nil
}

// Closed reports whether Close ran.
func (l *Library) Closed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closed
}

// CallsAfterClose counts entry point invocations made after Close.
func (l *Library) CallsAfterClose() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.afterClose
}

// count records one invocation. Callers hold l.mu.
func (l *Library) count(fn string) {
	l.calls[fn]++
	if l.closed {
		l.afterClose++
	}
}

// LoggerInstalled reports whether SetDefaultLogger ran.
func (l *Library) LoggerInstalled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loggerSet
}

// run executes one fallible entry point under the library lock.
func (l *Library) run(fn string, f func() error) native.ErrorCode {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.count(fn)

	if q := l.faults[fn]; len(q) > 0 {
		l.faults[fn] = q[1:]
		l.lastErr = q[0]
		return q[0].code
	}

	if err := f(); err != nil {
		fl, ok := err.(*failure)
		if !ok {
			fl = &failure{code: codeUnexpected, message: err.Error()}
		}
		l.lastErr = fl
		return fl.code
	}
	return native.Success
}

func (l *Library) put(typeName string, v any) native.ObjectHandle {
	h := l.next
	l.next++
	l.objects[h] = &object{typeName: typeName, value: v}
	return h
}

func (l *Library) lookup(h native.ObjectHandle) (*object, error) {
	if h == 0 {
		return nil, inputErr("Invalid object handle: 0")
	}
	obj, ok := l.objects[h]
	if !ok {
		return nil, inputErr("Invalid object handle: %d", h)
	}
	return obj, nil
}

// load resolves h and checks the stored type.
func load[T any](l *Library, h native.ObjectHandle, typeName string) (*T, error) {
	obj, err := l.lookup(h)
	if err != nil {
		return nil, err
	}
	v, ok := obj.value.(*T)
	if !ok || obj.typeName != typeName {
		return nil, inputErr("Invalid object type: expected %s, found %s", typeName, obj.typeName)
	}
	return v, nil
}

// loadOptional is load for handles where zero means absent.
func loadOptional[T any](l *Library, h native.ObjectHandle, typeName string) (*T, error) {
	if h == 0 {
		return nil, nil
	}
	return load[T](l, h, typeName)
}

func (l *Library) allocString(s string) *byte {
	b := append([]byte(s), 0)
	l.strings[&b[0]] = b
	return &b[0]
}

func (l *Library) allocBuffer(b []byte) native.ByteBuffer {
	if len(b) == 0 {
		return native.ByteBuffer{}
	}
	buf := append([]byte(nil), b...)
	l.buffers[&buf[0]] = buf
	return native.ByteBuffer{Len: int64(len(buf)), Data: &buf[0]}
}

func required(p *byte, field string) (string, error) {
	if p == nil {
		return "", inputErr("Invalid pointer for %s", field)
	}
	return native.GoString(p), nil
}

func optional(p *byte) *string {
	if p == nil {
		return nil
	}
	s := native.GoString(p)
	return &s
}

func (l *Library) Version() *byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.count(native.FnVersion)
	// Static, like the native string: never handed to StringFree.
	if l.versionStr == nil {
		b := append([]byte(l.version), 0)
		l.versionStr = &b[0]
	}
	return l.versionStr
}

func (l *Library) SetDefaultLogger() native.ErrorCode {
	return l.run(native.FnSetDefaultLogger, func() error {
		l.loggerSet = true
		return nil
	})
}

type errorRecord struct {
	Code    native.ErrorCode `json:"code"`
	Message *string          `json:"message"`
}

// GetCurrentError consumes the error slot and returns it as JSON. An empty
// slot reports code 0 with a null message.
func (l *Library) GetCurrentError(errorJSON **byte) native.ErrorCode {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.count(native.FnGetCurrentError)

	if l.interleave != nil {
		l.lastErr, l.interleave = l.interleave, nil
	}
	if l.failFetch {
		return codeUnexpected
	}

	rec := errorRecord{}
	if l.lastErr != nil {
		msg := l.lastErr.message
		rec = errorRecord{Code: l.lastErr.code, Message: &msg}
		l.lastErr = nil
	}
	out, _ := json.Marshal(rec)
	*errorJSON = l.allocString(string(out))
	return native.Success
}

func (l *Library) GenerateNonce(nonce **byte) native.ErrorCode {
	return l.run(native.FnGenerateNonce, func() error {
		n, err := randomDecimal(80)
		if err != nil {
			return err
		}
		*nonce = l.allocString(n)
		return nil
	})
}

func (l *Library) BufferFree(buf native.ByteBuffer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.count(native.FnBufferFree)
	if _, ok := l.buffers[buf.Data]; !ok {
		l.badFrees++
		return
	}
	delete(l.buffers, buf.Data)
}

func (l *Library) StringFree(s *byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.count(native.FnStringFree)
	if _, ok := l.strings[s]; !ok {
		l.badFrees++
		return
	}
	delete(l.strings, s)
}

// ObjectFree drops the handle. Unknown handles are ignored, as natively.
func (l *Library) ObjectFree(handle native.ObjectHandle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.count(native.FnObjectFree)
	delete(l.objects, handle)
}

func (l *Library) ObjectGetJSON(handle native.ObjectHandle, result *native.ByteBuffer) native.ErrorCode {
	return l.run(native.FnObjectGetJSON, func() error {
		obj, err := l.lookup(handle)
		if err != nil {
			return err
		}
		out, err := json.Marshal(obj.value)
		if err != nil {
			return err
		}
		*result = l.allocBuffer(out)
		return nil
	})
}

func (l *Library) ObjectGetTypeName(handle native.ObjectHandle, typeName **byte) native.ErrorCode {
	return l.run(native.FnObjectGetTypeName, func() error {
		obj, err := l.lookup(handle)
		if err != nil {
			return err
		}
		*typeName = l.allocString(obj.typeName)
		return nil
	})
}

func (l *Library) FromJSON(kind native.ObjectKind, data native.ByteBuffer, result *native.ObjectHandle) native.ErrorCode {
	fn := kind.FromJSONSymbol()
	return l.run(fn, func() error {
		ctor, ok := constructors[kind]
		if !ok {
			return inputErr("Unsupported object kind %s", kind)
		}
		v, err := ctor.decode(data.Bytes())
		if err != nil {
			return err
		}
		*result = l.put(ctor.typeName, v)
		return nil
	})
}
