package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Marly3/libshv/value"
)

func TestOf_StableAcrossConstructionOrder(t *testing.T) {
	a := value.Metadata{1: value.NewUInt(1), 2: value.NewString("x")}
	b := value.Metadata{2: value.NewString("x"), 1: value.NewUInt(1)}

	fa, err := Of(a)
	require.NoError(t, err)

	fb, err := Of(b)
	require.NoError(t, err)

	require.Equal(t, fa, fb)
}

func TestOf_DiffersOnDifferentContent(t *testing.T) {
	a := value.Metadata{1: value.NewUInt(1)}
	b := value.Metadata{1: value.NewUInt(2)}

	fa, err := Of(a)
	require.NoError(t, err)

	fb, err := Of(b)
	require.NoError(t, err)

	require.NotEqual(t, fa, fb)
}
