package varint

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInt_RoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 63, -63, 64, -64, 1 << 30, -(1 << 30)}

	for _, n := range cases {
		buf := AppendInt(nil, n)
		got, err := ReadInt(bytes.NewReader(buf))
		require.NoError(t, err)
		require.Equalf(t, n, got, "n=%d", n)
	}
}

func TestInt_NegativeDiffersFromAbsolute(t *testing.T) {
	pos := AppendInt(nil, 64)
	neg := AppendInt(nil, -64)
	require.NotEqual(t, pos, neg)
}

func TestInt_MinInt64_RoundTrips(t *testing.T) {
	const minInt64 = -1 << 63

	buf := AppendInt(nil, minInt64)
	got, err := ReadInt(bytes.NewReader(buf))
	require.NoError(t, err)
	require.Equal(t, int64(minInt64), got)
}
