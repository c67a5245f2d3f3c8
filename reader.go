package chainpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/Marly3/libshv/errs"
	"github.com/Marly3/libshv/value"
	"github.com/Marly3/libshv/wire"
)

// Reader decodes ChainPack frames into value.Value trees (§4.4). Like
// Writer, a Reader holds no per-call state and is safe for concurrent
// use, each goroutine on its own Unmarshal call (§5).
type Reader struct {
	maxDepth int
}

// NewReader builds a Reader from the given options.
func NewReader(opts ...Option) (*Reader, error) {
	c, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Reader{maxDepth: c.maxDepth}, nil
}

// Unmarshal decodes exactly one ChainPack value from br. Trailing bytes
// after the value are rejected: framing more than one value per call is
// a transport concern, out of scope for this codec (§1).
func (r *Reader) Unmarshal(br *bytes.Reader) (value.Value, error) {
	v, err := r.readValue(br, 0)
	if err != nil {
		return value.Value{}, err
	}

	if br.Len() != 0 {
		return value.Value{}, fmt.Errorf("%w: %d trailing byte(s) after value", errs.ErrInvalidValue, br.Len())
	}

	return v, nil
}

// readValue implements §4.4's top-level read: consume an optional
// metadata block, then a tag byte, dispatching on it.
func (r *Reader) readValue(br io.ByteScanner, depth int) (value.Value, error) {
	if depth > r.maxDepth {
		return value.Value{}, fmt.Errorf("%w: depth %d exceeds limit %d", errs.ErrDepthExceeded, depth, r.maxDepth)
	}

	meta, err := r.readMetadata(br, depth+1)
	if err != nil {
		return value.Value{}, err
	}

	v, err := r.readPlainValue(br, depth)
	if err != nil {
		return value.Value{}, err
	}

	if !meta.Empty() {
		v = v.WithMeta(meta)
	}

	return v, nil
}

// readPlainValue reads a tag byte and its payload, without first
// checking for a metadata block. Used by readValue after its own
// metadata step, and for values nested inside a metadata block, which
// carry no metadata of their own (§3.3).
func (r *Reader) readPlainValue(br io.ByteScanner, depth int) (value.Value, error) {
	t, err := br.ReadByte()
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %v", errs.ErrUnexpectedEOF, err) //nolint:errorlint
	}

	switch {
	case t < 0x80:
		if t&wire.TinyIntBase != 0 {
			return value.NewInt(int64(t & wire.TinyMax)), nil
		}

		return value.NewUInt(uint64(t & wire.TinyMax)), nil
	case wire.Tag(t) == wire.True:
		return value.NewBool(true), nil
	case wire.Tag(t) == wire.False:
		return value.NewBool(false), nil
	}

	isArray := t&wire.ArrayFlag != 0
	coreTag := wire.Tag(t &^ wire.ArrayFlag)

	coreType, err := wire.TypeFor(coreTag)
	if err != nil {
		return value.Value{}, err
	}

	if isArray {
		return r.readArray(br, coreType, depth)
	}

	return r.readPayloadForType(br, coreType, depth)
}

// readPlainValueOfType reads a payload-only encoding (no tag byte) of
// the given type, for Array elements (§4.6: "no per-element tag byte").
func (r *Reader) readPlainValueOfType(br io.ByteScanner, t value.Type, depth int) (value.Value, error) {
	return r.readPayloadForType(br, t, depth)
}

// readPayloadForType reads the payload body for a known, already
// consumed (or implied, for Array elements) type tag.
func (r *Reader) readPayloadForType(br io.ByteScanner, t value.Type, depth int) (value.Value, error) {
	if depth > r.maxDepth {
		return value.Value{}, fmt.Errorf("%w: depth %d exceeds limit %d", errs.ErrDepthExceeded, depth, r.maxDepth)
	}

	switch t {
	case value.Null:
		return value.NewNull(), nil
	case value.Bool:
		b, err := br.ReadByte()
		if err != nil {
			return value.Value{}, fmt.Errorf("%w: %v", errs.ErrUnexpectedEOF, err) //nolint:errorlint
		}

		return value.NewBool(b != 0), nil
	case value.UInt:
		n, err := readUInt(br)
		if err != nil {
			return value.Value{}, err
		}

		return value.NewUInt(n), nil
	case value.Int:
		n, err := readInt(br)
		if err != nil {
			return value.Value{}, err
		}

		return value.NewInt(n), nil
	case value.Double:
		f, err := readDouble(br)
		if err != nil {
			return value.Value{}, err
		}

		return value.NewDouble(f), nil
	case value.Decimal:
		m, e, err := readDecimal(br)
		if err != nil {
			return value.Value{}, err
		}

		return value.NewDecimal(m, e), nil
	case value.Blob:
		b, err := readBlob(br)
		if err != nil {
			return value.Value{}, err
		}

		return value.NewBlob(b), nil
	case value.String:
		s, err := readString(br)
		if err != nil {
			return value.Value{}, err
		}

		return value.NewString(s), nil
	case value.DateTime:
		instant, offset, err := readDateTime(br)
		if err != nil {
			return value.Value{}, err
		}

		return value.NewDateTime(instant, offset), nil
	case value.List:
		items, err := r.readList(br, depth)
		if err != nil {
			return value.Value{}, err
		}

		return value.NewList(items), nil
	case value.Map:
		m, err := r.readMap(br, depth)
		if err != nil {
			return value.Value{}, err
		}

		return value.NewMap(m), nil
	case value.IMap:
		m, err := r.readIMap(br, depth)
		if err != nil {
			return value.Value{}, err
		}

		return value.NewIMap(m), nil
	default:
		return value.Value{}, fmt.Errorf("%w: no payload reader for type %s", errs.ErrTypeMismatch, t)
	}
}
