package native

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
)

// Kind tags the shape of a serialized argument.
type Kind uint8

const (
	KindNull Kind = iota
	KindInt
	KindText
	KindBytes
	KindStrList
	KindHandleList
	KindI32List
	KindJSON
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindText:
		return "text"
	case KindBytes:
		return "bytes"
	case KindStrList:
		return "string list"
	case KindHandleList:
		return "handle list"
	case KindI32List:
		return "i32 list"
	case KindJSON:
		return "json"
	default:
		return "unknown"
	}
}

// Value is a serialized call argument. Exactly one payload field is
// meaningful for a given Kind; list kinds report Count() equal to the
// number of elements.
type Value struct {
	Field   string
	Kind    Kind
	Int     int64
	Text    string
	Bytes   []byte
	Strings []string
	Handles []ObjectHandle
	Ints    []int32
}

// Count is the element count of a list value and zero otherwise.
func (v Value) Count() int {
	switch v.Kind {
	case KindStrList:
		return len(v.Strings)
	case KindHandleList:
		return len(v.Handles)
	case KindI32List:
		return len(v.Ints)
	default:
		return 0
	}
}

// Handler is implemented by Go types that wrap a native object handle.
type Handler interface {
	NativeHandle() ObjectHandle
}

// ErrSerialization matches every *SerializationError via errors.Is.
var ErrSerialization = errors.New("anoncreds: argument serialization failed")

// SerializationError names the argument that could not be converted. It is
// always raised before any native call is made.
type SerializationError struct {
	Field  string
	Reason string
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("anoncreds: cannot serialize argument %q: %s", e.Field, e.Reason)
}

func (e *SerializationError) Is(target error) bool {
	return target == ErrSerialization
}

func serializationErr(field, format string, args ...any) error {
	return &SerializationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

var (
	handlerType    = reflect.TypeOf((*Handler)(nil)).Elem()
	handleType     = reflect.TypeOf(ObjectHandle(0))
	rawMessageType = reflect.TypeOf(json.RawMessage(nil))
)

// Serialize converts one high-level value into its boundary shape:
//
//	nil / nil pointer          -> null
//	bool                       -> int 0 or 1
//	string                     -> text
//	integer / integral float   -> int
//	ObjectHandle / Handler     -> int
//	[]byte                     -> bytes
//	json.RawMessage            -> json text
//	all-string array           -> string list
//	all-handle array           -> handle list
//	all-number array           -> i32 list
//	other arrays, maps, structs-> canonical json text
//
// Arrays mixing element categories, funcs, channels and complex numbers are
// rejected with a *SerializationError.
func Serialize(field string, v any) (Value, error) {
	if v == nil {
		return Value{Field: field, Kind: KindNull}, nil
	}
	return serializeValue(field, reflect.ValueOf(v))
}

func serializeValue(field string, rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Value{Field: field, Kind: KindNull}, nil
		}
	}

	if rv.Type().Implements(handlerType) {
		h := rv.Interface().(Handler)
		return Value{Field: field, Kind: KindInt, Int: int64(h.NativeHandle())}, nil
	}
	if rv.Type() == handleType {
		return Value{Field: field, Kind: KindInt, Int: int64(rv.Uint())}, nil
	}
	if rv.Type() == rawMessageType {
		if !json.Valid(rv.Bytes()) {
			return Value{}, serializationErr(field, "invalid json")
		}
		return Value{Field: field, Kind: KindJSON, Text: string(rv.Bytes())}, nil
	}

	switch rv.Kind() {
	case reflect.Pointer:
		elem := rv.Elem()
		if isScalar(elem.Kind()) {
			return serializeValue(field, elem)
		}
		return serializeJSON(field, rv.Interface())
	case reflect.Interface:
		return serializeValue(field, rv.Elem())
	case reflect.Bool:
		if rv.Bool() {
			return Value{Field: field, Kind: KindInt, Int: 1}, nil
		}
		return Value{Field: field, Kind: KindInt, Int: 0}, nil
	case reflect.String:
		return Value{Field: field, Kind: KindText, Text: rv.String()}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		n, err := toInt64(field, rv)
		if err != nil {
			return Value{}, err
		}
		return Value{Field: field, Kind: KindInt, Int: n}, nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return Value{Field: field, Kind: KindBytes, Bytes: append([]byte(nil), rv.Bytes()...)}, nil
		}
		return serializeList(field, rv)
	case reflect.Map, reflect.Struct:
		return serializeJSON(field, rv.Interface())
	default:
		return Value{}, serializationErr(field, "unsupported value of type %s", rv.Type())
	}
}

func isScalar(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func toInt64(field string, rv reflect.Value) (int64, error) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, serializationErr(field, "value %d overflows int64", u)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt64 || f < math.MinInt64 {
			return 0, serializationErr(field, "number %v is not an integer", f)
		}
		return int64(f), nil
	}
	return 0, serializationErr(field, "unsupported value of type %s", rv.Type())
}

type category uint8

const (
	catString category = iota + 1
	catHandle
	catNumber
	catOther
)

func classify(rv reflect.Value) (category, reflect.Value) {
	for rv.Kind() == reflect.Interface && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Interface || (rv.Kind() == reflect.Pointer && rv.IsNil()) {
		return catOther, rv
	}
	if rv.Type().Implements(handlerType) || rv.Type() == handleType {
		return catHandle, rv
	}
	switch rv.Kind() {
	case reflect.String:
		return catString, rv
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return catNumber, rv
	}
	return catOther, rv
}

func serializeList(field string, rv reflect.Value) (Value, error) {
	n := rv.Len()
	if n == 0 {
		return Value{Field: field, Kind: KindStrList, Strings: []string{}}, nil
	}

	elems := make([]reflect.Value, n)
	var cat category
	for i := 0; i < n; i++ {
		c, ev := classify(rv.Index(i))
		if i == 0 {
			cat = c
		} else if c != cat {
			return Value{}, serializationErr(field, "array mixes element types at index %d", i)
		}
		elems[i] = ev
	}

	switch cat {
	case catString:
		out := make([]string, n)
		for i, ev := range elems {
			out[i] = ev.String()
		}
		return Value{Field: field, Kind: KindStrList, Strings: out}, nil
	case catHandle:
		out := make([]ObjectHandle, n)
		for i, ev := range elems {
			if ev.Type() == handleType {
				out[i] = ObjectHandle(ev.Uint())
				continue
			}
			out[i] = ev.Interface().(Handler).NativeHandle()
		}
		return Value{Field: field, Kind: KindHandleList, Handles: out}, nil
	case catNumber:
		out := make([]int32, n)
		for i, ev := range elems {
			v, err := toInt64(field, ev)
			if err != nil {
				return Value{}, err
			}
			if v > math.MaxInt32 || v < math.MinInt32 {
				return Value{}, serializationErr(field, "element %d (%d) does not fit in int32", i, v)
			}
			out[i] = int32(v)
		}
		return Value{Field: field, Kind: KindI32List, Ints: out}, nil
	default:
		return serializeJSON(field, rv.Interface())
	}
}

func serializeJSON(field string, v any) (Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return Value{}, serializationErr(field, "json encoding: %v", err)
	}
	return Value{Field: field, Kind: KindJSON, Text: string(b)}, nil
}

// Arg is one named call argument.
type Arg struct {
	Name  string
	Value any
}

// A is shorthand for Arg{Name: name, Value: v}.
func A(name string, v any) Arg {
	return Arg{Name: name, Value: v}
}

// Values holds serialized arguments keyed by name.
type Values struct {
	order  []string
	byName map[string]Value
}

// SerializeArguments serializes every argument in order and stops at the
// first failure.
func SerializeArguments(args ...Arg) (Values, error) {
	vs := Values{order: make([]string, 0, len(args)), byName: make(map[string]Value, len(args))}
	for _, a := range args {
		v, err := Serialize(a.Name, a.Value)
		if err != nil {
			return Values{}, err
		}
		if _, dup := vs.byName[a.Name]; !dup {
			vs.order = append(vs.order, a.Name)
		}
		vs.byName[a.Name] = v
	}
	return vs, nil
}

// Get returns the named value, or a null value when it was never supplied.
func (vs Values) Get(name string) Value {
	if v, ok := vs.byName[name]; ok {
		return v
	}
	return Value{Field: name, Kind: KindNull}
}

// Names lists the argument names in declaration order.
func (vs Values) Names() []string {
	return append([]string(nil), vs.order...)
}
