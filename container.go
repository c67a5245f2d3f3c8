package chainpack

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"slices"
	"unicode/utf8"

	"github.com/Marly3/libshv/errs"
	"github.com/Marly3/libshv/shvtime"
	"github.com/Marly3/libshv/value"
	"github.com/Marly3/libshv/varint"
	"github.com/Marly3/libshv/wire"
)

// appendUInt, appendInt, appendDouble, appendDecimal, appendBlob,
// appendString and appendDateTime write the payload-only encodings of
// §4.6 for the scalar variants; the container variants (List, Map,
// IMap, Array) get their own appendX methods below since they recurse
// through the Writer's depth-tracked value dispatch.

func appendUInt(buf []byte, n uint64) []byte { return varint.AppendUint(buf, n) }

func appendInt(buf []byte, n int64) []byte { return varint.AppendInt(buf, n) }

func appendDouble(buf []byte, f float64) []byte {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], math.Float64bits(f))

	return append(buf, tmp[:]...)
}

func appendDecimal(buf []byte, mantissa, exponent int64) []byte {
	buf = varint.AppendInt(buf, mantissa)
	return varint.AppendInt(buf, exponent)
}

func appendBlob(buf []byte, b []byte) []byte {
	buf = varint.AppendUint(buf, uint64(len(b)))
	return append(buf, b...)
}

func appendString(buf []byte, s string) []byte {
	buf = varint.AppendUint(buf, uint64(len(s)))
	return append(buf, s...)
}

func appendDateTime(buf []byte, instantMs int64, offset int8) []byte {
	return varint.AppendInt(buf, shvtime.Pack(instantMs, offset))
}

// appendList writes each element via appendValue (so nested metadata on
// an element is respected), then TERMINATION (§4.6).
func (w *Writer) appendList(buf []byte, items []value.Value, depth int) ([]byte, error) {
	var err error

	for _, item := range items {
		buf, err = w.appendValue(buf, item, depth+1)
		if err != nil {
			return nil, err
		}
	}

	return append(buf, byte(wire.Termination)), nil
}

// appendMap writes each (string, value) entry — the key via the Blob
// codec, the value via appendValue — then TERMINATION. Keys are written
// in sorted order: the wire format itself imposes no ordering (§5), but
// a deterministic iteration order gives byte-identical output for a
// given map, which package metacache relies on for its cache keys.
func (w *Writer) appendMap(buf []byte, m map[string]value.Value, depth int) ([]byte, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	var err error

	for _, k := range keys {
		buf = appendString(buf, k)

		buf, err = w.appendValue(buf, m[k], depth+1)
		if err != nil {
			return nil, err
		}
	}

	return append(buf, byte(wire.Termination)), nil
}

// appendIMap writes each (uint64, value) entry — the key UInt-encoded,
// the value via appendValue — then TERMINATION.
func (w *Writer) appendIMap(buf []byte, m map[uint64]value.Value, depth int) ([]byte, error) {
	return w.appendIMapBody(buf, m, depth, w.appendValue)
}

// appendIMapBody is the shared IMap-shaped body writer used both by the
// ordinary IMap codec above and by the metadata block (§4.7), which
// writes its entries as plain values (no nested metadata, §3.3) via
// appendPlainValue instead of appendValue.
func (w *Writer) appendIMapBody(buf []byte, m map[uint64]value.Value, depth int, writeEntry func([]byte, value.Value, int) ([]byte, error)) ([]byte, error) {
	keys := make([]uint64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	var err error

	for _, k := range keys {
		buf = appendUInt(buf, k)

		buf, err = writeEntry(buf, m[k], depth)
		if err != nil {
			return nil, err
		}
	}

	return append(buf, byte(wire.Termination)), nil
}

// appendArray writes the element count, then each element's
// payload-only encoding in the declared element variant — no per
// element tag byte, since the tag already carries it (§4.6).
func (w *Writer) appendArray(buf []byte, v value.Value, depth int) ([]byte, error) {
	items, _ := v.ArrayElems()

	buf = appendUInt(buf, uint64(len(items)))

	var err error

	for _, item := range items {
		buf, err = w.appendPayloadForType(buf, item, depth+1)
		if err != nil {
			return nil, err
		}
	}

	return buf, nil
}

// readUInt, readInt, readDouble, readDecimal, readBlob, readString and
// readDateTime mirror the append* functions above on the decode side.

func readUInt(br io.ByteReader) (uint64, error) {
	n, _, err := varint.ReadUint(br)
	return n, err
}

func readInt(br io.ByteReader) (int64, error) {
	return varint.ReadInt(br)
}

func readDouble(br io.ByteReader) (float64, error) {
	var tmp [8]byte

	for i := range tmp {
		b, err := br.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("%w: %v", errs.ErrUnexpectedEOF, err) //nolint:errorlint
		}

		tmp[i] = b
	}

	return math.Float64frombits(binary.BigEndian.Uint64(tmp[:])), nil
}

func readDecimal(br io.ByteReader) (mantissa, exponent int64, err error) {
	mantissa, err = varint.ReadInt(br)
	if err != nil {
		return 0, 0, err
	}

	exponent, err = varint.ReadInt(br)
	if err != nil {
		return 0, 0, err
	}

	return mantissa, exponent, nil
}

func readBlob(br io.ByteReader) ([]byte, error) {
	n, err := readUInt(br)
	if err != nil {
		return nil, err
	}

	out := make([]byte, n)

	for i := range out {
		b, err := br.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrUnexpectedEOF, err) //nolint:errorlint
		}

		out[i] = b
	}

	return out, nil
}

func readString(br io.ByteReader) (string, error) {
	b, err := readBlob(br)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: string payload is not valid UTF-8", errs.ErrInvalidUTF8)
	}

	return string(b), nil
}

func readDateTime(br io.ByteReader) (instantMs int64, offset int8, err error) {
	d, err := varint.ReadInt(br)
	if err != nil {
		return 0, 0, err
	}

	instantMs, offset = shvtime.Unpack(d)

	return instantMs, offset, nil
}

// readList reads elements via readValue (so each element's own
// metadata is consumed) until TERMINATION (§4.6).
func (r *Reader) readList(br io.ByteScanner, depth int) ([]value.Value, error) {
	var items []value.Value

	for {
		done, err := r.consumeTermination(br)
		if err != nil {
			return nil, err
		}

		if done {
			return items, nil
		}

		item, err := r.readValue(br, depth+1)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}
}

// readMap reads (string, value) entries until TERMINATION.
func (r *Reader) readMap(br io.ByteScanner, depth int) (map[string]value.Value, error) {
	m := map[string]value.Value{}

	for {
		done, err := r.consumeTermination(br)
		if err != nil {
			return nil, err
		}

		if done {
			return m, nil
		}

		key, err := readString(br)
		if err != nil {
			return nil, err
		}

		v, err := r.readValue(br, depth+1)
		if err != nil {
			return nil, err
		}

		m[key] = v
	}
}

// readIMap reads (uint64, value) entries until TERMINATION.
func (r *Reader) readIMap(br io.ByteScanner, depth int) (map[uint64]value.Value, error) {
	return r.readIMapBody(br, depth, r.readValue)
}

// readIMapBody is the shared decode counterpart of appendIMapBody; the
// metadata block passes readPlainValue so metadata entries are not
// themselves scanned for a leading MetaIMap block (§3.3, §4.7).
func (r *Reader) readIMapBody(br io.ByteScanner, depth int, readEntry func(io.ByteScanner, int) (value.Value, error)) (map[uint64]value.Value, error) {
	m := map[uint64]value.Value{}

	for {
		done, err := r.consumeTermination(br)
		if err != nil {
			return nil, err
		}

		if done {
			return m, nil
		}

		key, err := readUInt(br)
		if err != nil {
			return nil, err
		}

		v, err := readEntry(br, depth)
		if err != nil {
			return nil, err
		}

		m[key] = v
	}
}

// readArray reads the element count, then that many payload-only
// encodings of elemType, and assembles an Array value.
func (r *Reader) readArray(br io.ByteScanner, elemType value.Type, depth int) (value.Value, error) {
	n, err := readUInt(br)
	if err != nil {
		return value.Value{}, err
	}

	items := make([]value.Value, n)

	for i := range items {
		items[i], err = r.readPlainValueOfType(br, elemType, depth+1)
		if err != nil {
			return value.Value{}, err
		}
	}

	return value.NewArray(elemType, items)
}

// consumeTermination peeks the next byte; if it is TERMINATION it is
// consumed and consumeTermination reports done=true, otherwise the byte
// is pushed back for the caller to read normally.
func (r *Reader) consumeTermination(br io.ByteScanner) (done bool, err error) {
	b, err := br.ReadByte()
	if err != nil {
		return false, fmt.Errorf("%w: %v", errs.ErrUnexpectedEOF, err) //nolint:errorlint
	}

	if wire.Tag(b) == wire.Termination {
		return true, nil
	}

	if err := br.UnreadByte(); err != nil {
		return false, fmt.Errorf("%w: %v", errs.ErrUnexpectedEOF, err) //nolint:errorlint
	}

	return false, nil
}
