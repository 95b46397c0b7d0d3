package value

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{NullKind, "null"},
		{BoolKind, "bool"},
		{NumberKind, "number"},
		{StringKind, "string"},
		{ObjectKind, "object"},
		{ArrayKind, "array"},
		{Kind(99), "<unknown kind>"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestKindTextRoundTrip(t *testing.T) {
	for _, k := range []Kind{NullKind, BoolKind, NumberKind, StringKind, ObjectKind, ArrayKind} {
		text, err := k.MarshalText()
		require.NoError(t, err)
		var back Kind
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, k, back)
	}

	var k Kind
	assert.Error(t, k.UnmarshalText([]byte("integer")))
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, NullKind, Null().Kind)
	assert.True(t, Bool(true).Bool)
	assert.Equal(t, 4.5, Number(4.5).Num)
	assert.Equal(t, "hi", String("hi").Str)

	obj := Object(nil)
	require.Equal(t, ObjectKind, obj.Kind)
	assert.NotNil(t, obj.Fields, "Object(nil) must yield a usable empty object")

	arr := Array()
	require.Equal(t, ArrayKind, arr.Kind)
	assert.NotNil(t, arr.Elems, "Array() must yield a usable empty array")
}

func TestIsNull(t *testing.T) {
	var nilValue *Value
	assert.True(t, nilValue.IsNull())
	assert.True(t, Null().IsNull())
	assert.True(t, (&Value{}).IsNull(), "zero Value is null")
	assert.False(t, Bool(false).IsNull())
	assert.False(t, String("").IsNull())
}

func TestSortedKeys(t *testing.T) {
	obj := Object(map[string]*Value{
		"zebra": Null(),
		"apple": Null(),
		"mango": Null(),
	})
	assert.Equal(t, []string{"apple", "mango", "zebra"}, obj.SortedKeys())
	assert.Equal(t, []string{}, String("not an object").SortedKeys())
	var nilValue *Value
	assert.Equal(t, []string{}, nilValue.SortedKeys())
}

func TestCloneIsIndependent(t *testing.T) {
	orig := Object(map[string]*Value{
		"name": String("widget"),
		"tags": Array(String("a"), String("b")),
		"spec": Object(map[string]*Value{"count": Number(3)}),
	})

	clone := orig.Clone()
	require.True(t, Equal(orig, clone))

	// Mutating the clone must leave the original untouched at every level.
	clone.Fields["name"] = String("gadget")
	clone.Fields["tags"].Elems[0] = String("z")
	clone.Fields["spec"].Fields["count"] = Number(4)

	assert.Equal(t, "widget", orig.Fields["name"].Str)
	assert.Equal(t, "a", orig.Fields["tags"].Elems[0].Str)
	assert.Equal(t, 3.0, orig.Fields["spec"].Fields["count"].Num)
}

func TestCloneNil(t *testing.T) {
	var nilValue *Value
	clone := nilValue.Clone()
	require.NotNil(t, clone)
	assert.Equal(t, NullKind, clone.Kind)
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Value
		expected bool
	}{
		{"nulls", Null(), Null(), true},
		{"nil is null", nil, Null(), true},
		{"bools equal", Bool(true), Bool(true), true},
		{"bools differ", Bool(true), Bool(false), false},
		{"numbers equal", Number(1.5), Number(1.5), true},
		{"numbers differ", Number(1), Number(2), false},
		{"strings equal", String("a"), String("a"), true},
		{"kind mismatch", String("1"), Number(1), false},
		{"false is not null", Bool(false), Null(), false},
		{"zero is not null", Number(0), Null(), false},
		{
			"objects ignore key order",
			Object(map[string]*Value{"a": Number(1), "b": Number(2)}),
			Object(map[string]*Value{"b": Number(2), "a": Number(1)}),
			true,
		},
		{
			"objects differ on key set",
			Object(map[string]*Value{"a": Number(1)}),
			Object(map[string]*Value{"a": Number(1), "b": Number(2)}),
			false,
		},
		{
			"arrays are order sensitive",
			Array(Number(1), Number(2)),
			Array(Number(2), Number(1)),
			false,
		},
		{
			"arrays equal",
			Array(Number(1), Array(String("x"))),
			Array(Number(1), Array(String("x"))),
			true,
		},
		{
			"nested objects",
			Object(map[string]*Value{"o": Object(map[string]*Value{"k": Null()})}),
			Object(map[string]*Value{"o": Object(map[string]*Value{"k": Null()})}),
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Equal(tt.a, tt.b))
			assert.Equal(t, tt.expected, Equal(tt.b, tt.a), "Equal must be symmetric")
		})
	}
}

func TestMarshalSortsObjectKeys(t *testing.T) {
	v := Object(map[string]*Value{
		"zulu":  Number(1),
		"alpha": Number(2),
		"mike":  Number(3),
	})
	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":2,"mike":3,"zulu":1}`, string(data))
}

func TestJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"null", `null`},
		{"bool", `true`},
		{"number", `42.5`},
		{"string", `"hello ~ world"`},
		{"empty object", `{}`},
		{"empty array", `[]`},
		{"nested", `{"a":[1,{"b":null},"c"],"d":{"e":false}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse([]byte(tt.text))
			require.NoError(t, err)
			data, err := json.Marshal(v)
			require.NoError(t, err)
			assert.Equal(t, tt.text, string(data))
		})
	}
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"unterminated":`))
	assert.Error(t, err)
}

func TestFromGo(t *testing.T) {
	raw := map[string]any{
		"name":  "widget",
		"count": 3,
		"ratio": 0.5,
		"big":   uint64(7),
		"ok":    true,
		"none":  nil,
		"tags":  []any{"a", "b"},
	}
	v, err := FromGo(raw)
	require.NoError(t, err)
	require.Equal(t, ObjectKind, v.Kind)
	assert.Equal(t, StringKind, v.Fields["name"].Kind)
	assert.Equal(t, 3.0, v.Fields["count"].Num)
	assert.Equal(t, 0.5, v.Fields["ratio"].Num)
	assert.Equal(t, 7.0, v.Fields["big"].Num)
	assert.True(t, v.Fields["ok"].Bool)
	assert.True(t, v.Fields["none"].IsNull())
	require.Equal(t, ArrayKind, v.Fields["tags"].Kind)
	assert.Len(t, v.Fields["tags"].Elems, 2)
}

func TestFromGoMapAnyAny(t *testing.T) {
	v, err := FromGo(map[any]any{"key": "val"})
	require.NoError(t, err)
	assert.Equal(t, "val", v.Fields["key"].Str)

	_, err = FromGo(map[any]any{42: "val"})
	assert.Error(t, err, "non-string map keys are not JSON-representable")
}

func TestFromGoRejectsNonJSON(t *testing.T) {
	_, err := FromGo(struct{ X int }{1})
	assert.Error(t, err)

	_, err = FromGo([]any{make(chan int)})
	assert.Error(t, err)
}

func TestInterfaceRoundTrip(t *testing.T) {
	v := Object(map[string]*Value{
		"s": String("x"),
		"n": Number(1),
		"a": Array(Bool(true), Null()),
	})
	back, err := FromGo(v.Interface())
	require.NoError(t, err)
	assert.True(t, Equal(v, back))
}

func TestValueString(t *testing.T) {
	v := Object(map[string]*Value{"a": Number(1)})
	assert.Equal(t, `{"a":1}`, v.String())
	var nilValue *Value
	assert.Equal(t, "null", nilValue.String())
}
