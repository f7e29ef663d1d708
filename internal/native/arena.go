package native

import (
	"math"
	"runtime"
)

// Arena owns the Go memory lowered for a single native call. Everything it
// hands out stays pinned until Release, which must run on every exit path.
// An Arena is not safe for concurrent use.
type Arena struct {
	pinner   runtime.Pinner
	secrets  [][]byte
	keep     []any
	released bool
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Release zeroizes secret strings and unpins every allocation. Calling it
// more than once is harmless.
func (a *Arena) Release() {
	if a == nil || a.released {
		return
	}
	for _, s := range a.secrets {
		zeroize(s)
	}
	a.pinner.Unpin()
	a.secrets = nil
	a.keep = nil
	a.released = true
}

func zeroize(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}

func (a *Arena) cstring(s string) []byte {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	a.pinner.Pin(&buf[0])
	a.keep = append(a.keep, buf)
	return buf
}

// CString copies s into pinned, NUL-terminated memory.
func (a *Arena) CString(s string) *byte {
	return &a.cstring(s)[0]
}

// SecretCString is CString for values that must not outlive the call, such
// as link secrets. The copy is zeroized on Release.
func (a *Arena) SecretCString(s string) *byte {
	buf := a.cstring(s)
	a.secrets = append(a.secrets, buf)
	return &buf[0]
}

// Buffer copies b into a pinned ByteBuffer.
func (a *Arena) Buffer(b []byte) ByteBuffer {
	if len(b) == 0 {
		return ByteBuffer{}
	}
	buf := make([]byte, len(b))
	copy(buf, b)
	a.pinner.Pin(&buf[0])
	a.keep = append(a.keep, buf)
	return ByteBuffer{Len: int64(len(buf)), Data: &buf[0]}
}

// StrList lowers strings into a pinned FfiStrList.
func (a *Arena) StrList(ss []string) FfiStrList {
	if len(ss) == 0 {
		return FfiStrList{}
	}
	ptrs := make([]*byte, len(ss))
	for i, s := range ss {
		ptrs[i] = a.CString(s)
	}
	a.pinner.Pin(&ptrs[0])
	a.keep = append(a.keep, ptrs)
	return FfiStrList{Count: uintptr(len(ptrs)), Data: &ptrs[0]}
}

// I32List lowers ints into a pinned FfiI32List.
func (a *Arena) I32List(vs []int32) FfiI32List {
	if len(vs) == 0 {
		return FfiI32List{}
	}
	data := append([]int32(nil), vs...)
	a.pinner.Pin(&data[0])
	a.keep = append(a.keep, data)
	return FfiI32List{Count: uintptr(len(data)), Data: &data[0]}
}

// HandleList lowers handles into a pinned FfiObjectHandleList.
func (a *Arena) HandleList(hs []ObjectHandle) FfiObjectHandleList {
	if len(hs) == 0 {
		return FfiObjectHandleList{}
	}
	data := append([]ObjectHandle(nil), hs...)
	a.pinner.Pin(&data[0])
	a.keep = append(a.keep, data)
	return FfiObjectHandleList{Count: uintptr(len(data)), Data: &data[0]}
}

// CredentialEntries lowers entries into a pinned list.
func (a *Arena) CredentialEntries(es []FfiCredentialEntry) FfiCredentialEntryList {
	if len(es) == 0 {
		return FfiCredentialEntryList{}
	}
	data := append([]FfiCredentialEntry(nil), es...)
	a.pinner.Pin(&data[0])
	a.keep = append(a.keep, data)
	return FfiCredentialEntryList{Count: uintptr(len(data)), Data: &data[0]}
}

// CredentialProves lowers prove directives into a pinned list. Referent
// pointers must come from this arena.
func (a *Arena) CredentialProves(ps []FfiCredentialProve) FfiCredentialProveList {
	if len(ps) == 0 {
		return FfiCredentialProveList{}
	}
	data := append([]FfiCredentialProve(nil), ps...)
	a.pinner.Pin(&data[0])
	a.keep = append(a.keep, data)
	return FfiCredentialProveList{Count: uintptr(len(data)), Data: &data[0]}
}

// NonrevokedOverrides lowers interval overrides into a pinned list.
func (a *Arena) NonrevokedOverrides(ovs []FfiNonrevokedIntervalOverride) FfiNonrevokedIntervalOverrideList {
	if len(ovs) == 0 {
		return FfiNonrevokedIntervalOverrideList{}
	}
	data := append([]FfiNonrevokedIntervalOverride(nil), ovs...)
	a.pinner.Pin(&data[0])
	a.keep = append(a.keep, data)
	return FfiNonrevokedIntervalOverrideList{Count: uintptr(len(data)), Data: &data[0]}
}

// CredRevInfo pins a copy of info. A nil info lowers to a null pointer.
func (a *Arena) CredRevInfo(info *FfiCredRevInfo) *FfiCredRevInfo {
	if info == nil {
		return nil
	}
	c := *info
	a.pinner.Pin(&c)
	a.keep = append(a.keep, &c)
	return &c
}

// OutHandle returns a zeroed, pinned output slot.
func (a *Arena) OutHandle() *ObjectHandle {
	h := new(ObjectHandle)
	a.pinner.Pin(h)
	return h
}

// OutString returns a zeroed, pinned char* output slot.
func (a *Arena) OutString() **byte {
	p := new(*byte)
	a.pinner.Pin(p)
	return p
}

// OutBuffer returns a zeroed, pinned ByteBuffer output slot.
func (a *Arena) OutBuffer() *ByteBuffer {
	b := new(ByteBuffer)
	a.pinner.Pin(b)
	return b
}

// OutInt8 returns a zeroed, pinned int8 output slot.
func (a *Arena) OutInt8() *int8 {
	v := new(int8)
	a.pinner.Pin(v)
	return v
}

func mismatch(v Value, want string) error {
	return serializationErr(v.Field, "expected %s, got %s", want, v.Kind)
}

// Text lowers a text or json value to a C string. Null lowers to nil.
func (a *Arena) Text(v Value) (*byte, error) {
	switch v.Kind {
	case KindNull:
		return nil, nil
	case KindText, KindJSON:
		return a.CString(v.Text), nil
	}
	return nil, mismatch(v, "text")
}

// Secret is Text for secret values.
func (a *Arena) Secret(v Value) (*byte, error) {
	switch v.Kind {
	case KindNull:
		return nil, nil
	case KindText:
		return a.SecretCString(v.Text), nil
	}
	return nil, mismatch(v, "text")
}

// Bytes lowers text, json or bytes to a ByteBuffer.
func (a *Arena) Bytes(v Value) (ByteBuffer, error) {
	switch v.Kind {
	case KindText, KindJSON:
		return a.Buffer([]byte(v.Text)), nil
	case KindBytes:
		return a.Buffer(v.Bytes), nil
	}
	return ByteBuffer{}, mismatch(v, "bytes")
}

// Int8 lowers an int value to int8. Null lowers to zero.
func (a *Arena) Int8(v Value) (int8, error) {
	switch v.Kind {
	case KindNull:
		return 0, nil
	case KindInt:
		if v.Int < math.MinInt8 || v.Int > math.MaxInt8 {
			return 0, serializationErr(v.Field, "value %d does not fit in int8", v.Int)
		}
		return int8(v.Int), nil
	}
	return 0, mismatch(v, "int")
}

// Int64 lowers an int value. Null lowers to absent.
func (a *Arena) Int64(v Value, absent int64) (int64, error) {
	switch v.Kind {
	case KindNull:
		return absent, nil
	case KindInt:
		return v.Int, nil
	}
	return 0, mismatch(v, "int")
}

// Handle lowers an int value to a handle. Null lowers to the zero handle.
func (a *Arena) Handle(v Value) (ObjectHandle, error) {
	switch v.Kind {
	case KindNull:
		return 0, nil
	case KindInt:
		if v.Int < 0 {
			return 0, serializationErr(v.Field, "negative handle %d", v.Int)
		}
		return ObjectHandle(v.Int), nil
	}
	return 0, mismatch(v, "handle")
}

// Strings lowers a string list value. Null lowers to an empty list.
func (a *Arena) Strings(v Value) (FfiStrList, error) {
	switch v.Kind {
	case KindNull:
		return FfiStrList{}, nil
	case KindStrList:
		return a.StrList(v.Strings), nil
	}
	return FfiStrList{}, mismatch(v, "string list")
}

// Handles lowers a handle list value. Null and the empty list lower to an
// empty list.
func (a *Arena) Handles(v Value) (FfiObjectHandleList, error) {
	switch v.Kind {
	case KindNull:
		return FfiObjectHandleList{}, nil
	case KindHandleList:
		return a.HandleList(v.Handles), nil
	case KindStrList:
		if len(v.Strings) == 0 {
			return FfiObjectHandleList{}, nil
		}
	}
	return FfiObjectHandleList{}, mismatch(v, "handle list")
}

// Ints lowers an i32 list value. Null and the empty list lower to an empty
// list.
func (a *Arena) Ints(v Value) (FfiI32List, error) {
	switch v.Kind {
	case KindNull:
		return FfiI32List{}, nil
	case KindI32List:
		return a.I32List(v.Ints), nil
	case KindStrList:
		if len(v.Strings) == 0 {
			return FfiI32List{}, nil
		}
	}
	return FfiI32List{}, mismatch(v, "i32 list")
}
