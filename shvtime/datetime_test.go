package shvtime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDateTime_RoundTrip_TzOffsets(t *testing.T) {
	offsets := []int8{MinOffset, -1, 0, 1, MaxOffset}
	instant := EpochMsec + 1000*86400

	for _, offset := range offsets {
		packed := Pack(instant, offset)
		gotInstant, gotOffset := Unpack(packed)
		require.Equalf(t, instant, gotInstant, "offset=%d", offset)
		require.Equalf(t, offset, gotOffset, "offset=%d", offset)
	}
}

func TestDateTime_ZeroOffsetOmitsTzFlag(t *testing.T) {
	packed := Pack(EpochMsec, 0)
	require.Zero(t, packed&1, "tz flag bit must be clear when offset == 0")
}

func TestDateTime_TzMinus4_MatchesWorkedExample(t *testing.T) {
	// §8.3 scenario 5: DateTime(2018-02-02T00:00:00Z, tz=-4).
	instant := EpochMsec + 86400*1000 // one day after the SHV epoch

	packed := Pack(instant, -4)

	// Recover the raw tz field the way Unpack does, before it's converted
	// back to a signed offset, to check it equals the worked example's 0x7C.
	d := packed >> 2
	field := d & 0x7f
	require.Equal(t, int64(0x7c), field)

	gotInstant, gotOffset := Unpack(packed)
	require.Equal(t, instant, gotInstant)
	require.Equal(t, int8(-4), gotOffset)
}

func TestDateTime_HasMillisFlag(t *testing.T) {
	withMs := Pack(EpochMsec+1, 0)
	withoutMs := Pack(EpochMsec+1000, 0)

	require.Zero(t, withMs&2, "sub-second instant must not set the no-millis flag")
	require.NotZero(t, withoutMs&2, "whole-second instant must set the no-millis flag")

	gotInstant, _ := Unpack(withMs)
	require.Equal(t, EpochMsec+1, gotInstant)

	gotInstant, _ = Unpack(withoutMs)
	require.Equal(t, EpochMsec+1000, gotInstant)
}
