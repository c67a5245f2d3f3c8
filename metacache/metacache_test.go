package metacache

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Marly3/libshv/value"
)

func TestBody_CachesAcrossCalls(t *testing.T) {
	c, err := New(4)
	require.NoError(t, err)

	meta := value.Metadata{1: value.NewUInt(1), 2: value.NewString("x")}

	first, err := c.Body(meta)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	second, err := c.Body(value.Metadata{2: value.NewString("x"), 1: value.NewUInt(1)})
	require.NoError(t, err)
	require.Equal(t, 1, c.Len(), "an equal metadata map must hit the same cache entry")

	require.Equal(t, first, second)
}

func TestBody_EmptyMetadataReturnsNil(t *testing.T) {
	c, err := New(4)
	require.NoError(t, err)

	body, err := c.Body(nil)
	require.NoError(t, err)
	require.Nil(t, body)
	require.Equal(t, 0, c.Len())
}
