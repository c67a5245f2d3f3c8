package wire

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Marly3/libshv/value"
)

func TestArrayTagFor_DateTimeAliasesDeprecatedTag(t *testing.T) {
	tag, err := ArrayTagFor(value.DateTime)
	require.NoError(t, err)
	require.Equal(t, DateTimeEpoch|ArrayFlag, tag)
}

func TestArrayTagFor_OrdinaryTypeSetsArrayFlag(t *testing.T) {
	tag, err := ArrayTagFor(value.Int)
	require.NoError(t, err)
	require.Equal(t, Int|ArrayFlag, tag)
}

func TestTypeFor_DateTimeEpochMapsToDateTime(t *testing.T) {
	typ, err := TypeFor(DateTimeEpoch)
	require.NoError(t, err)
	require.Equal(t, value.DateTime, typ)

	typ, err = TypeFor(DateTime)
	require.NoError(t, err)
	require.Equal(t, value.DateTime, typ)
}

func TestTypeFor_UnknownTagFails(t *testing.T) {
	_, err := TypeFor(MetaIMap)
	require.Error(t, err)
}
