package chainpack

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Marly3/libshv/value"
)

func TestMarshal_TinyUInt(t *testing.T) {
	data, err := Marshal(value.NewUInt(5))
	require.NoError(t, err)
	require.Equal(t, []byte{0x05}, data)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	require.True(t, value.NewUInt(5).Equal(got))
}

func TestMarshal_TinyInt(t *testing.T) {
	data, err := Marshal(value.NewInt(5))
	require.NoError(t, err)
	require.Equal(t, []byte{0x45}, data)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	require.True(t, value.NewInt(5).Equal(got))
	require.False(t, value.NewUInt(5).Equal(got), "Int(5) must not equal UInt(5)")
}

func TestMarshal_Bool(t *testing.T) {
	data, err := Marshal(value.NewBool(true))
	require.NoError(t, err)
	require.Equal(t, []byte{0xFE}, data)

	data, err = Marshal(value.NewBool(false))
	require.NoError(t, err)
	require.Equal(t, []byte{0xFD}, data)
}

func TestRoundTrip_IMapMixedValues(t *testing.T) {
	m := map[uint64]value.Value{
		127: value.NewList([]value.Value{value.NewInt(11), value.NewInt(12), value.NewInt(13)}),
		128: value.NewInt(2),
		129: value.NewInt(3),
	}
	in := value.NewIMap(m)

	data, err := Marshal(in)
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	require.True(t, in.Equal(got))
}

func TestRoundTrip_DateTimeWithTz(t *testing.T) {
	instant := int64(1_517_529_600_000) + 86400*1000
	in := value.NewDateTime(instant, -4)

	data, err := Marshal(in)
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	require.True(t, in.Equal(got))
}

func TestRoundTrip_MetaAnnotatedList(t *testing.T) {
	meta := value.Metadata{
		1: value.NewUInt(1),
		2: value.NewUInt(2),
		3: value.NewString("foo"),
		4: mustArray(t, value.Int, []value.Value{value.NewInt(1), value.NewInt(2), value.NewInt(3)}),
	}

	in := value.NewList([]value.Value{
		value.NewInt(17), value.NewInt(18), value.NewInt(19),
	}).WithMeta(meta)

	data, err := Marshal(in)
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	require.True(t, in.Equal(got))
}

func TestRoundTrip_ArrayPreservesElementType(t *testing.T) {
	arr := mustArray(t, value.String, []value.Value{value.NewString("a"), value.NewString("b")})

	data, err := Marshal(arr)
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)

	elemType, ok := got.ArrayElemType()
	require.True(t, ok)
	require.Equal(t, value.String, elemType)
	require.True(t, arr.Equal(got))
}

func TestRoundTrip_DateTimeArrayUsesDeprecatedTagAliasing(t *testing.T) {
	arr := mustArray(t, value.DateTime, []value.Value{
		value.NewDateTime(1_517_529_600_000, 0),
		value.NewDateTime(1_517_529_601_000, 4),
	})

	data, err := Marshal(arr)
	require.NoError(t, err)
	require.Equal(t, byte(135|0x40), data[0], "DateTime array tag must alias the deprecated DateTimeEpoch tag")

	got, err := Unmarshal(data)
	require.NoError(t, err)
	require.True(t, arr.Equal(got))
}

func TestMetadataMerge_SplitAcrossTwoBlocksEqualsOneBlock(t *testing.T) {
	w, err := NewWriter()
	require.NoError(t, err)

	single := value.NewInt(7).WithMeta(value.Metadata{1: value.NewUInt(1), 2: value.NewUInt(2)})

	data, err := w.Marshal(single)
	require.NoError(t, err)

	// Hand-build the equivalent of two consecutive MetaIMap blocks
	// (§8.1 idempotence-of-merge property): block1{1:1}, block2{2:2}, tag, payload.
	block1, err := w.MarshalMetadataBody(value.Metadata{1: value.NewUInt(1)})
	require.NoError(t, err)

	block2, err := w.MarshalMetadataBody(value.Metadata{2: value.NewUInt(2)})
	require.NoError(t, err)

	var split []byte
	split = append(split, byte(139))
	split = append(split, block1...)
	split = append(split, byte(139))
	split = append(split, block2...)
	split = append(split, 0x47) // tiny Int(7)

	r, err := NewReader()
	require.NoError(t, err)

	got1, err := Unmarshal(data)
	require.NoError(t, err)

	got2, err := r.Unmarshal(bytes.NewReader(split))
	require.NoError(t, err)

	require.True(t, got1.Equal(got2))
}

func TestWriter_InvalidValueFails(t *testing.T) {
	_, err := Marshal(value.Value{})
	require.Error(t, err)
}

func TestReader_DepthExceeded(t *testing.T) {
	r, err := NewReader(WithMaxDepth(1))
	require.NoError(t, err)

	w, err := NewWriter()
	require.NoError(t, err)

	nested := value.NewList([]value.Value{
		value.NewList([]value.Value{
			value.NewList([]value.Value{value.NewInt(1)}),
		}),
	})

	data, err := w.Marshal(nested)
	require.NoError(t, err)

	_, err = r.Unmarshal(bytes.NewReader(data))
	require.Error(t, err)
}

func mustArray(t *testing.T, elemType value.Type, items []value.Value) value.Value {
	t.Helper()

	v, err := value.NewArray(elemType, items)
	require.NoError(t, err)

	return v
}
