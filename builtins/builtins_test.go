package builtins

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"tinyjs/scope"
	"tinyjs/values"
)

func TestInstall_RegistersGlobalNamespaces(t *testing.T) {
	sc := scope.New()
	Install(sc)
	for _, name := range []string{"console", "intrinsics", "Object", "Math", "JSON"} {
		_, ok := sc.Get(name)
		assert.True(t, ok, "expected %s to be installed", name)
	}
}

func TestConsoleLog_RequiresExactlyOneArgument(t *testing.T) {
	var buf bytes.Buffer
	log := consoleLogTo(&buf)
	_, err := log(nil)
	assert.Error(t, err)
	_, err = log([]values.Value{values.Number(1), values.Number(2)})
	assert.Error(t, err)
}

func TestConsoleLog_PrintsCanonicalStringification(t *testing.T) {
	var buf bytes.Buffer
	log := consoleLogTo(&buf)
	_, err := log([]values.Value{values.Number(7)})
	assert.NoError(t, err)
	assert.Equal(t, "7\n", buf.String())
}

func TestCanonicalString_TagsContainersAndCallables(t *testing.T) {
	assert.Equal(t, "[object]", canonicalString(values.NewObject()))
	assert.Equal(t, "[array]", canonicalString(values.NewArray()))
	assert.Equal(t, "[function]", canonicalString(values.Function{Name: "f"}))
	assert.Equal(t, "[native function]", canonicalString(native("f", nil)))
	assert.Equal(t, "7", canonicalString(values.Number(7)))
	assert.Equal(t, "hi", canonicalString(values.String("hi")))
}

func TestIntrinsicsTypeof_ReturnsKindName(t *testing.T) {
	v, err := intrinsicsTypeof([]values.Value{values.NewArray()})
	assert.NoError(t, err)
	assert.Equal(t, values.String("array"), v)
}

func TestObjectKeys_ReturnsInsertionOrder(t *testing.T) {
	obj := values.NewObject().With("a", values.Number(1)).With("b", values.Number(2))
	v, err := objectKeys([]values.Value{obj})
	assert.NoError(t, err)
	arr := v.(values.Array)
	assert.Equal(t, 2, arr.Len())
	first, _ := arr.Get(0)
	assert.Equal(t, values.String("a"), first)
}

func TestMathMax_TakesVariadicArguments(t *testing.T) {
	v, err := mathMax([]values.Value{values.Number(1), values.Number(9), values.Number(3)})
	assert.NoError(t, err)
	assert.Equal(t, values.Number(9), v)
}

func TestMathSqrt_RequiresNumber(t *testing.T) {
	_, err := mathSqrt([]values.Value{values.String("nope")})
	assert.Error(t, err)
}

func TestArrayProperty_LengthAndPush(t *testing.T) {
	arr := values.NewArray(values.Number(1), values.Number(2))
	length, ok := ArrayProperty(arr, "length")
	assert.True(t, ok)
	assert.Equal(t, values.Number(2), length)

	pushFn, ok := ArrayProperty(arr, "push")
	assert.True(t, ok)
	result, err := pushFn.(values.NativeFunction).Call([]values.Value{values.Number(3)})
	assert.NoError(t, err)
	assert.Equal(t, values.Number(3), result)
	assert.Equal(t, 3, arr.Len())
}

func TestArrayJoin_UsesCanonicalElementStrings(t *testing.T) {
	arr := values.NewArray(values.Number(1), values.Number(2), values.Number(3))
	joinFn, _ := ArrayProperty(arr, "join")
	result, err := joinFn.(values.NativeFunction).Call([]values.Value{values.String(",")})
	assert.NoError(t, err)
	assert.Equal(t, values.String("1,2,3"), result)
}

func TestArraySlice_ClampsToBounds(t *testing.T) {
	arr := values.NewArray(values.Number(1), values.Number(2), values.Number(3))
	sliceFn, _ := ArrayProperty(arr, "slice")
	result, err := sliceFn.(values.NativeFunction).Call([]values.Value{values.Number(1), values.Number(99)})
	assert.NoError(t, err)
	sliced := result.(values.Array)
	assert.Equal(t, 2, sliced.Len())
}

func TestStringProperty_LengthAndSplit(t *testing.T) {
	length, ok := StringProperty(values.String("abc"), "length")
	assert.True(t, ok)
	assert.Equal(t, values.Number(3), length)

	splitFn, ok := StringProperty(values.String("a,b,c"), "split")
	assert.True(t, ok)
	result, err := splitFn.(values.NativeFunction).Call([]values.Value{values.String(",")})
	assert.NoError(t, err)
	arr := result.(values.Array)
	assert.Equal(t, 3, arr.Len())
}

func TestStringProperty_UnknownNameIsNotFound(t *testing.T) {
	_, ok := StringProperty(values.String("abc"), "nope")
	assert.False(t, ok)
}

func TestNumberProperty_ToFixed(t *testing.T) {
	fn, ok := NumberProperty(values.Number(3.14159), "toFixed")
	assert.True(t, ok)
	result, err := fn.(values.NativeFunction).Call([]values.Value{values.Number(2)})
	assert.NoError(t, err)
	assert.Equal(t, values.String("3.14"), result)
}

func TestJSONStringify_EscapesAndNests(t *testing.T) {
	obj := values.NewObject().With("name", values.String("x"))
	v, err := jsonStringify([]values.Value{obj})
	assert.NoError(t, err)
	assert.Equal(t, `{"name":"x"}`, string(v.(values.String)))
}
