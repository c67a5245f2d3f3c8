package varint

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestUInt_RoundTrip_RangeCoverage checks the actual encoded length of the UInt codec for
// the range-coverage values named in §8.2. These were re-derived from the
// reference implementation (original_source/python/chainpack/rpcvalue.py)
// rather than taken verbatim from the distilled spec's prose table, which
// has an off-by-one inconsistency around the row1/row2/row4 boundaries —
// see DESIGN.md.
func TestUInt_RoundTrip_RangeCoverage(t *testing.T) {
	cases := []struct {
		n             uint64
		expectedBytes int
	}{
		{0, 1},
		{1, 1},
		{63, 1},
		{64, 1},
		{127, 1},
		{128, 2},
		{1 << 7, 2},
		{1 << 13, 2},
		{1 << 14, 3},
		{1 << 21, 4},
		{1 << 28, 5},
		{1<<28 + 1, 5},
		{1<<64 - 1, 9},
	}

	for _, tc := range cases {
		buf := AppendUint(nil, tc.n)
		require.Lenf(t, buf, tc.expectedBytes, "n=%d", tc.n)

		got, _, err := ReadUint(bytes.NewReader(buf))
		require.NoError(t, err)
		require.Equal(t, tc.n, got)
	}
}

func TestUInt_ReadUint_UnexpectedEOF(t *testing.T) {
	// a 2-byte-declared header with no trailing byte.
	_, _, err := ReadUint(bytes.NewReader([]byte{0x80}))
	require.Error(t, err)
}

func TestUInt_ReadUint_Overflow(t *testing.T) {
	// head 0xff with nnnn=0xf declares 19 trailing bytes, all non-zero:
	// the magnitude cannot fit in 64 bits.
	buf := append([]byte{0xff}, bytes.Repeat([]byte{0x01}, 19)...)
	_, _, err := ReadUint(bytes.NewReader(buf))
	require.Error(t, err)
}

func TestBytesNeeded_ZeroBitLen(t *testing.T) {
	require.Equal(t, 1, BytesNeeded(0))
}
