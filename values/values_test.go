package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber_Truthy(t *testing.T) {
	assert.True(t, Number(1).Truthy())
	assert.False(t, Number(0).Truthy())
	nan := Number(0)
	nan = Number(nanValue())
	assert.False(t, nan.Truthy())
}

func nanValue() float64 {
	var zero float64
	return zero / zero
}

func TestNumber_String(t *testing.T) {
	assert.Equal(t, "42", Number(42).String())
	assert.Equal(t, "3.5", Number(3.5).String())
}

func TestTruthiness(t *testing.T) {
	assert.True(t, String("x").Truthy())
	assert.False(t, String("").Truthy())
	assert.False(t, Null{}.Truthy())
	assert.False(t, Undefined{}.Truthy())
	assert.True(t, Boolean(true).Truthy())
	assert.False(t, Boolean(false).Truthy())
	assert.True(t, NewArray(Number(1)).Truthy())
	assert.False(t, NewArray().Truthy())
	assert.True(t, NewObject().With("a", Number(1)).Truthy())
	assert.False(t, NewObject().Truthy())
}

func TestArray_AliasingSharesMutation(t *testing.T) {
	a := NewArray(Number(1), Number(2))
	b := a // copies the handle, not the backing store
	b.Push(Number(3))
	assert.Equal(t, 3, a.Len())
	v, ok := a.Get(2)
	assert.True(t, ok)
	assert.Equal(t, Number(3), v)
}

func TestArray_SameIdentity(t *testing.T) {
	a := NewArray(Number(1))
	b := a
	c := NewArray(Number(1))
	assert.True(t, a.SameIdentity(b))
	assert.False(t, a.SameIdentity(c))
}

func TestObject_WithIsValueSemantic(t *testing.T) {
	o := NewObject().With("x", Number(1))
	o2 := o.With("x", Number(2))
	v, _ := o.Get("x")
	assert.Equal(t, Number(1), v)
	v2, _ := o2.Get("x")
	assert.Equal(t, Number(2), v2)
}

func TestObject_KeysPreserveInsertionOrder(t *testing.T) {
	o := NewObject().With("b", Number(1)).With("a", Number(2))
	assert.Equal(t, []string{"b", "a"}, o.Keys())
}
