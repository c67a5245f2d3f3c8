package value

import (
	"errors"
	"testing"

	"github.com/Marly3/libshv/errs"
	"github.com/stretchr/testify/require"
)

func TestIntUIntAreDisjoint(t *testing.T) {
	i := NewInt(5)
	u := NewUInt(5)

	require.False(t, i.Equal(u))
	require.Equal(t, Int, i.Type())
	require.Equal(t, UInt, u.Type())
}

func TestNewArray_RejectsMixedElements(t *testing.T) {
	_, err := NewArray(Int, []Value{NewInt(1), NewString("oops")})
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrTypeMismatch))
}

func TestNewArray_Valid(t *testing.T) {
	arr, err := NewArray(Int, []Value{NewInt(1), NewInt(2), NewInt(3)})
	require.NoError(t, err)

	elemType, ok := arr.ArrayElemType()
	require.True(t, ok)
	require.Equal(t, Int, elemType)

	elems, ok := arr.ArrayElems()
	require.True(t, ok)
	require.Len(t, elems, 3)
}

func TestValue_Clone_IsDeep(t *testing.T) {
	inner := NewList([]Value{NewInt(1), NewInt(2)})
	outer := NewMap(map[string]Value{"a": inner}).WithMeta(Metadata{1: NewString("tag")})

	clone := outer.Clone()
	require.True(t, outer.Equal(clone))

	// the clone's nested containers must not share backing storage with
	// the original, since Clone is a deep copy by contract (§3.4).
	clone.mapVal["a"].listVal[0] = NewInt(999)
	require.Equal(t, int64(1), outer.mapVal["a"].listVal[0].intVal)
}

func TestMetadata_Merge_LaterWins(t *testing.T) {
	a := Metadata{1: NewInt(1), 2: NewInt(2)}
	b := Metadata{2: NewInt(20), 3: NewInt(3)}

	merged := a.Merge(b)
	require.True(t, merged.Equal(Metadata{1: NewInt(1), 2: NewInt(20), 3: NewInt(3)}))
}

func TestMetadata_EmptyIsDefault(t *testing.T) {
	v := NewNull()
	require.True(t, v.Meta().Empty())
}
