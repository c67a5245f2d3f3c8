package value

import (
	"fmt"
	"maps"
	"slices"

	"github.com/Marly3/libshv/errs"
)

// Type is the discriminator of a Value's payload. It is a distinct variant
// per row of the ChainPack value model, not a wire tag — see package wire
// for the on-the-wire byte encoding.
type Type uint8

const (
	// Invalid is the sentinel zero value of Type. A Value holding it was
	// never constructed through one of this package's constructors and
	// cannot be serialized; attempting to do so is an ErrInvalidValue.
	Invalid Type = iota
	Null
	Bool
	Int
	UInt
	Double
	Decimal
	Blob
	String
	DateTime
	List
	Map
	IMap
	Array
)

func (t Type) String() string {
	switch t {
	case Invalid:
		return "Invalid"
	case Null:
		return "Null"
	case Bool:
		return "Bool"
	case Int:
		return "Int"
	case UInt:
		return "UInt"
	case Double:
		return "Double"
	case Decimal:
		return "Decimal"
	case Blob:
		return "Blob"
	case String:
		return "String"
	case DateTime:
		return "DateTime"
	case List:
		return "List"
	case Map:
		return "Map"
	case IMap:
		return "IMap"
	case Array:
		return "Array"
	default:
		return "Unknown"
	}
}

// Value is the in-memory tagged value the chainpack codec round-trips.
//
// Only the fields relevant to Type() are meaningful; the rest are zero.
// Construct one through the New* functions rather than a struct literal.
type Value struct {
	typ Type

	boolVal   bool
	intVal    int64
	uintVal   uint64
	doubleVal float64
	decMant   int64
	decExp    int64
	dtInstant int64 // milliseconds since Unix epoch, UTC
	dtOffset  int8  // tz display hint, units of 15 minutes, range [-64,63]
	blobVal   []byte
	strVal    string
	listVal   []Value
	mapVal    map[string]Value
	imapVal   map[uint64]Value
	arrElem   Type
	arrVal    []Value

	meta Metadata
}

// Type returns the value's variant discriminator.
func (v Value) Type() Type { return v.typ }

// IsValid reports whether v was constructed through one of this package's
// constructors (as opposed to being the zero Value).
func (v Value) IsValid() bool { return v.typ != Invalid }

// Meta returns the value's metadata map. A Value with no metadata returns
// a nil Metadata, which behaves as an empty map for reads.
func (v Value) Meta() Metadata { return v.meta }

// WithMeta returns a copy of v carrying the given metadata. Passing an
// empty or nil Metadata clears it.
func (v Value) WithMeta(meta Metadata) Value {
	v.meta = meta
	return v
}

// NewNull returns the Null value.
func NewNull() Value { return Value{typ: Null} }

// NewBool returns a Bool value.
func NewBool(b bool) Value { return Value{typ: Bool, boolVal: b} }

// NewInt returns a signed Int value. Int and UInt are disjoint variants
// even when numerically equal; see Value.Equal.
func NewInt(n int64) Value { return Value{typ: Int, intVal: n} }

// NewUInt returns an unsigned UInt value.
func NewUInt(n uint64) Value { return Value{typ: UInt, uintVal: n} }

// NewDouble returns a Double (IEEE-754 binary64) value.
func NewDouble(f float64) Value { return Value{typ: Double, doubleVal: f} }

// NewDecimal returns a Decimal value from a mantissa and a base-10 exponent.
func NewDecimal(mantissa, exponent int64) Value {
	return Value{typ: Decimal, decMant: mantissa, decExp: exponent}
}

// NewBlob returns a Blob value. The given slice is not retained; it is
// copied so the caller can reuse or mutate it afterward.
func NewBlob(b []byte) Value {
	return Value{typ: Blob, blobVal: slices.Clone(b)}
}

// NewString returns a String value.
func NewString(s string) Value { return Value{typ: String, strVal: s} }

// NewDateTime returns a DateTime value. instantMs is milliseconds since
// the Unix epoch in UTC; offset is a display-only hint in units of 15
// minutes, range [-64,63], and never alters the encoded instant.
func NewDateTime(instantMs int64, offset int8) Value {
	return Value{typ: DateTime, dtInstant: instantMs, dtOffset: offset}
}

// NewList returns a List value. The given slice is copied.
func NewList(items []Value) Value {
	return Value{typ: List, listVal: slices.Clone(items)}
}

// NewMap returns a Map value (string keys). The given map is copied.
func NewMap(m map[string]Value) Value {
	return Value{typ: Map, mapVal: maps.Clone(m)}
}

// NewIMap returns an IMap value (non-negative integer keys). The given map
// is copied.
func NewIMap(m map[uint64]Value) Value {
	return Value{typ: IMap, imapVal: maps.Clone(m)}
}

// NewArray returns an Array value. Every element of items must share the
// elemType variant (§3.3); a mismatch returns ErrTypeMismatch.
func NewArray(elemType Type, items []Value) (Value, error) {
	for i, it := range items {
		if it.typ != elemType {
			return Value{}, fmt.Errorf("%w: array element %d has type %s, want %s", errs.ErrTypeMismatch, i, it.typ, elemType)
		}
	}

	return Value{typ: Array, arrElem: elemType, arrVal: slices.Clone(items)}, nil
}

// Bool returns the payload of a Bool value. The second result is false if
// v is not a Bool.
func (v Value) Bool() (bool, bool) { return v.boolVal, v.typ == Bool }

// Int returns the payload of an Int value. The second result is false if
// v is not an Int.
func (v Value) Int() (int64, bool) { return v.intVal, v.typ == Int }

// UInt returns the payload of a UInt value. The second result is false if
// v is not a UInt.
func (v Value) UInt() (uint64, bool) { return v.uintVal, v.typ == UInt }

// Double returns the payload of a Double value. The second result is
// false if v is not a Double.
func (v Value) Double() (float64, bool) { return v.doubleVal, v.typ == Double }

// Decimal returns the mantissa and exponent of a Decimal value. The third
// result is false if v is not a Decimal.
func (v Value) Decimal() (mantissa, exponent int64, ok bool) {
	return v.decMant, v.decExp, v.typ == Decimal
}

// Blob returns the payload of a Blob value. The returned slice is a copy.
// The second result is false if v is not a Blob.
func (v Value) Blob() ([]byte, bool) { return slices.Clone(v.blobVal), v.typ == Blob }

// String returns the payload of a String value. The second result is
// false if v is not a String.
func (v Value) String() (string, bool) { return v.strVal, v.typ == String }

// DateTime returns the instant (ms since Unix epoch, UTC) and tz-offset
// display hint of a DateTime value. The third result is false if v is not
// a DateTime.
func (v Value) DateTime() (instantMs int64, offset int8, ok bool) {
	return v.dtInstant, v.dtOffset, v.typ == DateTime
}

// List returns the elements of a List value. The returned slice is a
// copy. The second result is false if v is not a List.
func (v Value) List() ([]Value, bool) { return slices.Clone(v.listVal), v.typ == List }

// Map returns the entries of a Map value. The returned map is a copy. The
// second result is false if v is not a Map.
func (v Value) Map() (map[string]Value, bool) { return maps.Clone(v.mapVal), v.typ == Map }

// IMap returns the entries of an IMap value. The returned map is a copy.
// The second result is false if v is not an IMap.
func (v Value) IMap() (map[uint64]Value, bool) { return maps.Clone(v.imapVal), v.typ == IMap }

// ArrayElemType returns the declared element variant of an Array value.
// The second result is false if v is not an Array.
func (v Value) ArrayElemType() (Type, bool) { return v.arrElem, v.typ == Array }

// ArrayElems returns the elements of an Array value. The returned slice
// is a copy. The second result is false if v is not an Array.
func (v Value) ArrayElems() ([]Value, bool) { return slices.Clone(v.arrVal), v.typ == Array }

// Clone returns a deep copy of v, including its metadata subtree.
func (v Value) Clone() Value {
	c := v
	c.blobVal = slices.Clone(v.blobVal)

	if v.listVal != nil {
		c.listVal = make([]Value, len(v.listVal))
		for i, item := range v.listVal {
			c.listVal[i] = item.Clone()
		}
	}

	if v.mapVal != nil {
		c.mapVal = make(map[string]Value, len(v.mapVal))
		for k, item := range v.mapVal {
			c.mapVal[k] = item.Clone()
		}
	}

	if v.imapVal != nil {
		c.imapVal = make(map[uint64]Value, len(v.imapVal))
		for k, item := range v.imapVal {
			c.imapVal[k] = item.Clone()
		}
	}

	if v.arrVal != nil {
		c.arrVal = make([]Value, len(v.arrVal))
		for i, item := range v.arrVal {
			c.arrVal[i] = item.Clone()
		}
	}

	if v.meta != nil {
		c.meta = v.meta.Clone()
	}

	return c
}

// Equal reports whether v and o have the same Type, the same payload, and
// the same metadata. An Int and a UInt carrying the same numeric value
// are never equal (§3.3, §9).
func (v Value) Equal(o Value) bool {
	if v.typ != o.typ {
		return false
	}

	if !v.meta.Equal(o.meta) {
		return false
	}

	switch v.typ {
	case Invalid, Null:
		return true
	case Bool:
		return v.boolVal == o.boolVal
	case Int:
		return v.intVal == o.intVal
	case UInt:
		return v.uintVal == o.uintVal
	case Double:
		return v.doubleVal == o.doubleVal
	case Decimal:
		return v.decMant == o.decMant && v.decExp == o.decExp
	case Blob:
		return slices.Equal(v.blobVal, o.blobVal)
	case String:
		return v.strVal == o.strVal
	case DateTime:
		return v.dtInstant == o.dtInstant && v.dtOffset == o.dtOffset
	case List:
		return equalValueSlices(v.listVal, o.listVal)
	case Map:
		return equalValueMaps(v.mapVal, o.mapVal)
	case IMap:
		return equalValueIMaps(v.imapVal, o.imapVal)
	case Array:
		return v.arrElem == o.arrElem && equalValueSlices(v.arrVal, o.arrVal)
	default:
		return false
	}
}

func equalValueSlices(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}

func equalValueMaps(a, b map[string]Value) bool {
	if len(a) != len(b) {
		return false
	}

	for k, av := range a {
		bv, ok := b[k]
		if !ok || !av.Equal(bv) {
			return false
		}
	}

	return true
}

func equalValueIMaps(a, b map[uint64]Value) bool {
	if len(a) != len(b) {
		return false
	}

	for k, av := range a {
		bv, ok := b[k]
		if !ok || !av.Equal(bv) {
			return false
		}
	}

	return true
}
