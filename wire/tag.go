package wire

import (
	"fmt"

	"github.com/Marly3/libshv/errs"
	"github.com/Marly3/libshv/value"
)

// Tag is a single on-the-wire tag byte.
type Tag byte

// Payload-bearing type tags (§6.1).
const (
	Null          Tag = 128
	UInt          Tag = 129
	Int           Tag = 130
	Double        Tag = 131
	Bool          Tag = 132
	Blob          Tag = 133
	String        Tag = 134
	DateTimeEpoch Tag = 135 // deprecated, read-only (§1, §9)
	List          Tag = 136
	Map           Tag = 137
	IMap          Tag = 138
	MetaIMap      Tag = 139
	Decimal       Tag = 140
	DateTime      Tag = 141
)

// Singleton/framing sentinel tags (§4.8).
const (
	False       Tag = 253
	True        Tag = 254
	Termination Tag = 255
)

// ArrayFlag is bit 6 of a type tag; when set, the tag introduces a
// length-prefixed homogeneous Array payload of the unflagged type (§6.1).
const ArrayFlag = 0x40

// TinyIntBase is where the tiny-form Int range begins: bytes 0x40..0x7F
// decode as Int(n & 0x3F).
const TinyIntBase = 0x40

// TinyMax is the largest value representable in a tiny UInt/Int form.
const TinyMax = 0x3F

// TagFor returns the non-array payload tag for t. Array and Invalid have
// no standalone tag and return ErrTypeMismatch.
func TagFor(t value.Type) (Tag, error) {
	switch t {
	case value.Null:
		return Null, nil
	case value.UInt:
		return UInt, nil
	case value.Int:
		return Int, nil
	case value.Double:
		return Double, nil
	case value.Bool:
		return Bool, nil
	case value.Blob:
		return Blob, nil
	case value.String:
		return String, nil
	case value.DateTime:
		return DateTime, nil
	case value.List:
		return List, nil
	case value.Map:
		return Map, nil
	case value.IMap:
		return IMap, nil
	case value.Decimal:
		return Decimal, nil
	default:
		return 0, fmt.Errorf("%w: type %s has no standalone wire tag", errs.ErrTypeMismatch, t)
	}
}

// ArrayTagFor returns the tag (with ArrayFlag set) for an Array whose
// declared element variant is elemType.
//
// DateTime is special-cased: the original ChainPack encoder tags a
// DateTime array with the deprecated DateTimeEpoch bit pattern rather
// than DateTime, for historic wire compatibility (§9, SPEC_FULL.md F.3).
func ArrayTagFor(elemType value.Type) (Tag, error) {
	if elemType == value.DateTime {
		return DateTimeEpoch | ArrayFlag, nil
	}

	t, err := TagFor(elemType)
	if err != nil {
		return 0, err
	}

	return t | ArrayFlag, nil
}

// TypeFor returns the value.Type a (non-array) payload tag decodes to.
// MetaIMap and the framing sentinels have no corresponding value.Type and
// return ErrInvalidTag; DateTimeEpoch maps to DateTime (§1, §9).
func TypeFor(t Tag) (value.Type, error) {
	switch t {
	case Null:
		return value.Null, nil
	case UInt:
		return value.UInt, nil
	case Int:
		return value.Int, nil
	case Double:
		return value.Double, nil
	case Bool:
		return value.Bool, nil
	case Blob:
		return value.Blob, nil
	case String:
		return value.String, nil
	case DateTime, DateTimeEpoch:
		return value.DateTime, nil
	case List:
		return value.List, nil
	case Map:
		return value.Map, nil
	case IMap:
		return value.IMap, nil
	case Decimal:
		return value.Decimal, nil
	default:
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidTag, t)
	}
}
