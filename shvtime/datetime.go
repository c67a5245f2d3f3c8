// Package shvtime packs and unpacks ChainPack DateTime values (§4.3): an
// instant (milliseconds since the Unix epoch, UTC) and a tz-offset
// display hint, combined into the single signed integer the wire format's
// Int codec carries.
package shvtime

// EpochMsec is the SHV epoch (2018-02-01 00:00:00 UTC) in milliseconds
// since the Unix epoch — the DateTime codec's offset origin.
const EpochMsec int64 = 1_517_529_600_000

// MinOffset and MaxOffset bound the tz-offset display hint, in units of
// 15 minutes (§3.1).
const (
	MinOffset int8 = -64
	MaxOffset int8 = 63
)

// Pack encodes instantMs (ms since Unix epoch, UTC) and a tz-offset hint
// into the signed integer the Int codec writes to the wire.
//
// The tz offset never alters instantMs; it is carried verbatim as a
// 7-bit field only when non-zero (§3.3, §4.3).
func Pack(instantMs int64, offset int8) int64 {
	out := instantMs - EpochMsec

	hasMs := out%1000 != 0
	if !hasMs {
		out /= 1000 // exact, since out is a multiple of 1000 here
	}

	if offset != 0 {
		out <<= 7
		out |= int64(tzField(offset))
	}

	out <<= 2
	if offset != 0 {
		out |= 1
	}

	if !hasMs {
		out |= 2
	}

	return out
}

// Unpack reverses Pack given the signed integer decoded by the Int codec.
func Unpack(d int64) (instantMs int64, offset int8) {
	hasTz := d&1 != 0
	hasNotMsec := d&2 != 0
	d >>= 2

	if hasTz {
		field := d & 0x7f
		if field&(1<<6) != 0 {
			field -= 128
		}

		offset = int8(field) //nolint:gosec
		d >>= 7
	}

	if hasNotMsec {
		d *= 1000
	}

	return d + EpochMsec, offset
}

// tzField packs a signed offset in [-64,63] into the 7-bit sign-and-
// magnitude-like field the wire format embeds after the instant.
func tzField(offset int8) int {
	tz := int(offset)
	if tz < 0 {
		return (1 << 6) | ((^(-1 - tz)) & 0x3f)
	}

	return tz
}
