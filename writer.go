package chainpack

import (
	"fmt"

	"github.com/Marly3/libshv/errs"
	"github.com/Marly3/libshv/internal/pool"
	"github.com/Marly3/libshv/value"
	"github.com/Marly3/libshv/wire"
)

// Writer encodes value.Value trees into ChainPack frames (§4.5). A
// Writer holds no per-call state beyond its configuration and is safe
// for concurrent use by multiple goroutines, each on its own Marshal
// call (§5).
type Writer struct {
	maxDepth int
	bufPool  *pool.ByteBufferPool
}

// NewWriter builds a Writer from the given options.
func NewWriter(opts ...Option) (*Writer, error) {
	c, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Writer{maxDepth: c.maxDepth, bufPool: pool.NewByteBufferPool(c.bufferSize)}, nil
}

// Marshal encodes v into a freshly allocated ChainPack frame.
func (w *Writer) Marshal(v value.Value) ([]byte, error) {
	bb := w.bufPool.Get()
	defer w.bufPool.Put(bb)

	out, err := w.appendValue(bb.B, v, 0)
	if err != nil {
		return nil, err
	}

	result := make([]byte, len(out))
	copy(result, out)

	return result, nil
}

// appendValue writes v's metadata block (if any), then its tag and
// payload, following the "optimize-into-tag" fast path of §4.5.
func (w *Writer) appendValue(buf []byte, v value.Value, depth int) ([]byte, error) {
	if depth > w.maxDepth {
		return nil, fmt.Errorf("%w: depth %d exceeds limit %d", errs.ErrDepthExceeded, depth, w.maxDepth)
	}

	buf, err := w.appendMetadata(buf, v.Meta(), depth+1)
	if err != nil {
		return nil, err
	}

	return w.appendPlainValue(buf, v, depth)
}

// appendPlainValue writes v's tag and payload only, skipping any
// metadata block. Used for v itself after appendValue has already
// handled the metadata step, and for values nested inside a metadata
// block, which carry no metadata of their own (§3.3).
func (w *Writer) appendPlainValue(buf []byte, v value.Value, depth int) ([]byte, error) {
	if tiny, ok := tinyForm(v); ok {
		return append(buf, tiny), nil
	}

	switch v.Type() {
	case value.Null:
		return append(buf, byte(wire.Null)), nil
	case value.Bool:
		b, _ := v.Bool()
		if b {
			return append(buf, byte(wire.True)), nil
		}

		return append(buf, byte(wire.False)), nil
	case value.Array:
		elemType, _ := v.ArrayElemType()

		tag, err := wire.ArrayTagFor(elemType)
		if err != nil {
			return nil, err
		}

		buf = append(buf, byte(tag))

		return w.appendArray(buf, v, depth)
	case value.Invalid:
		return nil, fmt.Errorf("%w: cannot serialize the invalid sentinel variant", errs.ErrInvalidValue)
	default:
		tag, err := wire.TagFor(v.Type())
		if err != nil {
			return nil, err
		}

		buf = append(buf, byte(tag))

		return w.appendPayload(buf, v, depth)
	}
}

// tinyForm reports whether v qualifies for the single-byte tiny-int
// fast path (§4.4): UInt in [0,63] as n, Int in [0,63] as 0x40|n.
func tinyForm(v value.Value) (byte, bool) {
	switch v.Type() {
	case value.UInt:
		n, _ := v.UInt()
		if n <= wire.TinyMax {
			return byte(n), true
		}
	case value.Int:
		n, _ := v.Int()
		if n >= 0 && n <= wire.TinyMax {
			return wire.TinyIntBase | byte(n), true
		}
	}

	return 0, false
}

// appendPayloadForType writes v's payload-only encoding — no tag byte,
// and for Null/Bool no fast-path special-casing either — for use as an
// Array element writer (§4.6: "no per-element tag byte"). It is the
// write-side counterpart of readPayloadForType.
func (w *Writer) appendPayloadForType(buf []byte, v value.Value, depth int) ([]byte, error) {
	switch v.Type() {
	case value.Null:
		return buf, nil
	case value.Bool:
		b, _ := v.Bool()
		if b {
			return append(buf, 1), nil
		}

		return append(buf, 0), nil
	default:
		return w.appendPayload(buf, v, depth)
	}
}

// appendPayload dispatches on v's type to write the payload that
// follows a non-tiny, non-Array, non-Null, non-Bool tag byte (§4.6).
func (w *Writer) appendPayload(buf []byte, v value.Value, depth int) ([]byte, error) {
	switch v.Type() {
	case value.UInt:
		n, _ := v.UInt()
		return appendUInt(buf, n), nil
	case value.Int:
		n, _ := v.Int()
		return appendInt(buf, n), nil
	case value.Double:
		f, _ := v.Double()
		return appendDouble(buf, f), nil
	case value.Decimal:
		m, e, _ := v.Decimal()
		return appendDecimal(buf, m, e), nil
	case value.Blob:
		b, _ := v.Blob()
		return appendBlob(buf, b), nil
	case value.String:
		s, _ := v.String()
		return appendString(buf, s), nil
	case value.DateTime:
		instant, offset, _ := v.DateTime()
		return appendDateTime(buf, instant, offset), nil
	case value.List:
		items, _ := v.List()
		return w.appendList(buf, items, depth)
	case value.Map:
		m, _ := v.Map()
		return w.appendMap(buf, m, depth)
	case value.IMap:
		m, _ := v.IMap()
		return w.appendIMap(buf, m, depth)
	default:
		return nil, fmt.Errorf("%w: no payload writer for type %s", errs.ErrTypeMismatch, v.Type())
	}
}
