package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sawickiap/MinScriptLang-sub001/token"
)

func someplace() token.Place { return token.Place{Row: 1, Column: 1} }

func TestTruthy(t *testing.T) {
	require.False(t, Null.Truthy())
	require.False(t, Number(0).Truthy())
	require.True(t, Number(1).Truthy())
	require.False(t, String("").Truthy())
	require.True(t, String("x").Truthy())
	require.True(t, ObjectValue(NewObject()).Truthy())
	require.True(t, ArrayValue(NewArray()).Truthy())
}

func TestEqualByVariant(t *testing.T) {
	require.True(t, Number(1).Equal(Number(1)))
	require.False(t, Number(1).Equal(Number(2)))
	require.True(t, String("a").Equal(String("a")))
	require.False(t, String("a").Equal(String("b")))
	require.True(t, Null.Equal(Null))
	require.False(t, Null.Equal(Number(0)))

	o1, o2 := NewObject(), NewObject()
	require.True(t, ObjectValue(o1).Equal(ObjectValue(o1)))
	require.False(t, ObjectValue(o1).Equal(ObjectValue(o2)))
}

func TestStringCopyOnAssignSemantics(t *testing.T) {
	obj := NewObject()
	s := String("hello")
	obj.Set("s", s)

	t2, _ := obj.Get("s")
	t2.Str.SetCharAt(someplace(), 0, String("H"))

	stored, _ := obj.Get("s")
	require.Equal(t, "hello", stored.Str.Data(), "storing a string must deep-copy it")
	require.Equal(t, "Hello", t2.Str.Data())
}

func TestObjectSetNullRemovesKey(t *testing.T) {
	obj := NewObject()
	obj.Set("a", Number(1))
	require.Equal(t, 1, obj.Count())
	obj.Set("a", Null)
	require.Equal(t, 0, obj.Count())
	_, ok := obj.Get("a")
	require.False(t, ok)
}

func TestArrayInsertAndRemove(t *testing.T) {
	arr := NewArray()
	arr.Append(Number(1))
	arr.Append(Number(3))
	require.NoError(t, arr.Insert(someplace(), 1, Number(2)))
	require.Equal(t, 3, arr.Len())

	v, err := arr.Get(someplace(), 1)
	require.NoError(t, err)
	require.Equal(t, 2.0, v.Num)

	removed, err := arr.Remove(someplace(), 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, removed.Num)
	require.Equal(t, 2, arr.Len())
}

func TestArrayOutOfBoundsIsError(t *testing.T) {
	arr := NewArray()
	_, err := arr.Get(someplace(), 0)
	require.Error(t, err)
}

func TestToInt64SaturatesAndHandlesNaN(t *testing.T) {
	require.Equal(t, int64(0), ToInt64(nanValue()))
	require.Equal(t, int64(5), ToInt64(5.0))
	require.Equal(t, int64(math.MaxInt64), ToInt64(1e300))
	require.Equal(t, int64(math.MinInt64), ToInt64(-1e300))
}

func nanValue() float64 {
	var zero float64
	return zero / zero
}
