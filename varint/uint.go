package varint

import (
	"fmt"
	"io"
	"math/bits"

	"github.com/Marly3/libshv/errs"
)

// MaxBytes is the largest number of bytes a single UInt may occupy on the
// wire (§4.1): 18 bytes, an 18×8 = 144-bit envelope.
const MaxBytes = 18

// BytesNeeded returns the number of bytes the UInt codec uses to encode a
// value whose magnitude has the given bit length, per the writer formula
// in §4.1: for bitLen ≤ 28, ⌊(bitLen-1)/7⌋+1; otherwise ⌊(bitLen-1)/8⌋+2.
//
// Go's integer division truncates toward zero, matching the reference
// implementation's use of trunc rather than floor (this matters only at
// bitLen == 0, i.e. encoding zero, where floor division would wrongly
// yield 0 bytes instead of 1 — see DESIGN.md).
func BytesNeeded(bitLen int) int {
	if bitLen <= 28 {
		return (bitLen-1)/7 + 1
	}

	return (bitLen-1)/8 + 2
}

// ExpandBitLen returns the position of the sign bit the Int codec embeds
// for a magnitude of the given (sign-inclusive) bit length — one position
// below the highest payload bit the UInt form would use for that many
// bytes (§4.2).
func ExpandBitLen(bitLen int) int {
	byteCnt := BytesNeeded(bitLen)
	if bitLen <= 28 {
		return byteCnt*(8-1) - 1
	}

	return (byteCnt-1)*8 - 1
}

// AppendUint appends the UInt-codec encoding of n to buf and returns the
// extended slice.
func AppendUint(buf []byte, n uint64) []byte {
	return AppendUintBits(buf, n, bits.Len64(n))
}

// AppendUintBits appends the raw byte-packing step shared by the UInt and
// Int codecs: num is packed into BytesNeeded(bitLen) bytes, big-endian,
// with the head byte's high-order prefix bits set per the row the byte
// count falls into (§4.1).
//
// Callers needing signed encoding (package varint's own Int codec) embed
// a sign bit into num and pass the sign-inclusive bitLen; this function
// itself is agnostic to that meaning.
func AppendUintBits(buf []byte, num uint64, bitLen int) []byte {
	byteCnt := BytesNeeded(bitLen)

	b := make([]byte, byteCnt)
	n := num

	for i := byteCnt - 1; i >= 0; i-- {
		b[i] = byte(n)
		n >>= 8
	}

	head := int(b[0])
	if bitLen <= 28 {
		mask := (0xf0 << (4 - byteCnt)) & 0xff
		head &^= mask
		mask = (mask << 1) & 0xff
		head |= mask
	} else {
		head = 0xf0 | (byteCnt - 5)
	}

	b[0] = byte(head)

	return append(buf, b...)
}

// ReadUint decodes a UInt-codec value from r, returning the value and the
// declared payload bit length (needed by the Int codec to locate its sign
// bit). Returns ErrUnexpectedEOF if r runs out of bytes, or ErrOverflow if
// the decoded magnitude does not fit in 64 bits.
func ReadUint(r io.ByteReader) (uint64, int, error) {
	head, err := readByte(r)
	if err != nil {
		return 0, 0, err
	}

	var (
		bytesToRead int
		num         uint64
		bitLen      int
	)

	switch {
	case head&0x80 == 0:
		bytesToRead, num, bitLen = 0, uint64(head&0x7f), 7
	case head&0x40 == 0:
		bytesToRead, num, bitLen = 1, uint64(head&0x3f), 6+8
	case head&0x20 == 0:
		bytesToRead, num, bitLen = 2, uint64(head&0x1f), 5+2*8
	case head&0x10 == 0:
		bytesToRead, num, bitLen = 3, uint64(head&0x0f), 4+3*8
	default:
		bytesToRead = int(head&0x0f) + 4
		bitLen = bytesToRead * 8
	}

	for range bytesToRead {
		b, err := readByte(r)
		if err != nil {
			return 0, 0, err
		}

		if num&0xff00000000000000 != 0 {
			return 0, 0, fmt.Errorf("%w: UInt value exceeds 64 bits", errs.ErrOverflow)
		}

		num = num<<8 | uint64(b)
	}

	return num, bitLen, nil
}

func readByte(r io.ByteReader) (byte, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errs.ErrUnexpectedEOF, err) //nolint:errorlint
	}

	return b, nil
}
