package native

import "unsafe"

// The structs below mirror the C declarations in anoncreds.h. The cgo
// loader reinterprets them as the C structs in place, so they must keep the
// exact field order and widths. layout_test.go pins sizes and offsets on
// 64-bit targets and TestLayoutsMatchC checks them against the C compiler.

// ByteBuffer mirrors `struct ByteBuffer { int64_t len; uint8_t *data; }`.
type ByteBuffer struct {
	Len  int64
	Data *uint8
}

// FfiStrList mirrors `struct FfiStrList { size_t count; const char **data; }`.
type FfiStrList struct {
	Count uintptr
	Data  **byte
}

// FfiI32List mirrors `struct FfiI32List { size_t count; const int32_t *data; }`.
type FfiI32List struct {
	Count uintptr
	Data  *int32
}

// FfiObjectHandleList mirrors `struct FfiList_ObjectHandle`.
type FfiObjectHandleList struct {
	Count uintptr
	Data  *ObjectHandle
}

// FfiCredRevInfo mirrors `struct FfiCredRevInfo`.
type FfiCredRevInfo struct {
	RegDef        ObjectHandle
	RegDefPrivate ObjectHandle
	StatusList    ObjectHandle
	RegIdx        int64
}

// FfiCredentialEntry mirrors `struct FfiCredentialEntry`.
type FfiCredentialEntry struct {
	Credential ObjectHandle
	Timestamp  int32
	RevState   ObjectHandle
}

// FfiCredentialEntryList mirrors `struct FfiList_FfiCredentialEntry`.
type FfiCredentialEntryList struct {
	Count uintptr
	Data  *FfiCredentialEntry
}

// FfiCredentialProve mirrors `struct FfiCredentialProve`.
type FfiCredentialProve struct {
	EntryIdx    int64
	Referent    *byte
	IsPredicate int8
	Reveal      int8
}

// FfiCredentialProveList mirrors `struct FfiList_FfiCredentialProve`.
type FfiCredentialProveList struct {
	Count uintptr
	Data  *FfiCredentialProve
}

// FfiNonrevokedIntervalOverride mirrors `struct FfiNonrevokedIntervalOverride`.
type FfiNonrevokedIntervalOverride struct {
	RevRegDefID             *byte
	RequestedFromTs         int32
	OverrideRevStatusListTs int32
}

// FfiNonrevokedIntervalOverrideList mirrors
// `struct FfiList_FfiNonrevokedIntervalOverride`.
type FfiNonrevokedIntervalOverrideList struct {
	Count uintptr
	Data  *FfiNonrevokedIntervalOverride
}

// GoString copies a NUL-terminated C string into Go memory. A nil pointer
// yields the empty string.
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// Bytes copies the buffer contents into Go memory. The buffer itself is
// left untouched; releasing it is the caller's job.
func (b ByteBuffer) Bytes() []byte {
	if b.Data == nil || b.Len <= 0 {
		return nil
	}
	out := make([]byte, b.Len)
	copy(out, unsafe.Slice(b.Data, b.Len))
	return out
}

// Strings decodes the list into Go strings.
func (l FfiStrList) Strings() []string {
	if l.Count == 0 || l.Data == nil {
		return nil
	}
	ptrs := unsafe.Slice(l.Data, l.Count)
	out := make([]string, len(ptrs))
	for i, p := range ptrs {
		out[i] = GoString(p)
	}
	return out
}

// Ints decodes the list into a Go slice.
func (l FfiI32List) Ints() []int32 {
	if l.Count == 0 || l.Data == nil {
		return nil
	}
	return append([]int32(nil), unsafe.Slice(l.Data, l.Count)...)
}

// Handles decodes the list into a Go slice.
func (l FfiObjectHandleList) Handles() []ObjectHandle {
	if l.Count == 0 || l.Data == nil {
		return nil
	}
	return append([]ObjectHandle(nil), unsafe.Slice(l.Data, l.Count)...)
}

// Entries decodes the list into a Go slice.
func (l FfiCredentialEntryList) Entries() []FfiCredentialEntry {
	if l.Count == 0 || l.Data == nil {
		return nil
	}
	return append([]FfiCredentialEntry(nil), unsafe.Slice(l.Data, l.Count)...)
}

// Proves decodes the list into a Go slice. Referent pointers still point at
// the caller's memory.
func (l FfiCredentialProveList) Proves() []FfiCredentialProve {
	if l.Count == 0 || l.Data == nil {
		return nil
	}
	return append([]FfiCredentialProve(nil), unsafe.Slice(l.Data, l.Count)...)
}

// Overrides decodes the list into a Go slice.
func (l FfiNonrevokedIntervalOverrideList) Overrides() []FfiNonrevokedIntervalOverride {
	if l.Count == 0 || l.Data == nil {
		return nil
	}
	return append([]FfiNonrevokedIntervalOverride(nil), unsafe.Slice(l.Data, l.Count)...)
}
