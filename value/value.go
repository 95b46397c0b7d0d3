// Package value defines the JSON value model shared by the pointer, differ,
// and patch packages.
//
// A Value is an explicit tagged union over the six JSON kinds (null, bool,
// number, string, object, array) rather than a bare any, so every consumer
// can switch exhaustively on Kind instead of performing runtime type tests.
//
// Values are freely shareable for concurrent reads. The patch engine never
// mutates caller-supplied Values; it clones before applying.
package value

import (
	"fmt"

	"github.com/erraggy/patchtools/internal/maputil"
)

// Kind identifies which JSON kind a Value holds.
type Kind int

const (
	// NullKind is the JSON null.
	NullKind Kind = iota
	// BoolKind is a JSON boolean.
	BoolKind
	// NumberKind is a JSON number, stored as float64 (the form the stdlib
	// and yaml codecs produce for untyped documents).
	NumberKind
	// StringKind is a JSON string.
	StringKind
	// ObjectKind is a JSON object with string keys.
	ObjectKind
	// ArrayKind is a JSON array.
	ArrayKind
)

// String returns the kind name as used in error messages and text encodings.
func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BoolKind:
		return "bool"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case ObjectKind:
		return "object"
	case ArrayKind:
		return "array"
	default:
		return "<unknown kind>"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(d []byte) error {
	kinds := map[string]Kind{
		"null":   NullKind,
		"bool":   BoolKind,
		"number": NumberKind,
		"string": StringKind,
		"object": ObjectKind,
		"array":  ArrayKind,
	}
	kk, ok := kinds[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

// Value is a single JSON value. Exactly one payload field is meaningful,
// selected by Kind; the zero Value is JSON null.
type Value struct {
	Kind Kind

	Bool   bool
	Num    float64
	Str    string
	Fields map[string]*Value
	Elems  []*Value
}

// Null returns a JSON null.
func Null() *Value {
	return &Value{Kind: NullKind}
}

// Bool returns a JSON boolean.
func Bool(b bool) *Value {
	return &Value{Kind: BoolKind, Bool: b}
}

// Number returns a JSON number.
func Number(f float64) *Value {
	return &Value{Kind: NumberKind, Num: f}
}

// String returns a JSON string.
func String(s string) *Value {
	return &Value{Kind: StringKind, Str: s}
}

// Object returns a JSON object holding the given fields. A nil map yields
// an empty object.
func Object(fields map[string]*Value) *Value {
	if fields == nil {
		fields = map[string]*Value{}
	}
	return &Value{Kind: ObjectKind, Fields: fields}
}

// Array returns a JSON array holding the given elements.
func Array(elems ...*Value) *Value {
	if elems == nil {
		elems = []*Value{}
	}
	return &Value{Kind: ArrayKind, Elems: elems}
}

// IsNull reports whether v is JSON null. A nil *Value counts as null so
// callers can treat absent and null uniformly.
func (v *Value) IsNull() bool {
	return v == nil || v.Kind == NullKind
}

// SortedKeys returns the object's keys in ascending order. It returns an
// empty slice for non-object values.
func (v *Value) SortedKeys() []string {
	if v == nil || v.Kind != ObjectKind {
		return []string{}
	}
	return maputil.SortedKeys(v.Fields)
}

// Clone returns a structural deep copy of v. Scalars copy by value; objects
// and arrays are rebuilt node by node. Clone never round-trips through a
// text codec, so any in-memory Value clones losslessly.
func (v *Value) Clone() *Value {
	if v == nil {
		return Null()
	}
	switch v.Kind {
	case NullKind:
		return Null()
	case BoolKind:
		return Bool(v.Bool)
	case NumberKind:
		return Number(v.Num)
	case StringKind:
		return String(v.Str)
	case ObjectKind:
		fields := make(map[string]*Value, len(v.Fields))
		for k, f := range v.Fields {
			fields[k] = f.Clone()
		}
		return &Value{Kind: ObjectKind, Fields: fields}
	case ArrayKind:
		elems := make([]*Value, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = e.Clone()
		}
		return &Value{Kind: ArrayKind, Elems: elems}
	default:
		// Unreachable for values built through this package.
		return Null()
	}
}

// Equal reports deep structural equality: objects are equal iff they have
// the same key sets with pairwise-equal values irrespective of order,
// arrays iff they have the same length with pairwise-equal elements, and
// scalars by kind and value. A nil *Value equals JSON null.
func Equal(a, b *Value) bool {
	if a == nil {
		a = Null()
	}
	if b == nil {
		b = Null()
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case NullKind:
		return true
	case BoolKind:
		return a.Bool == b.Bool
	case NumberKind:
		return a.Num == b.Num
	case StringKind:
		return a.Str == b.Str
	case ObjectKind:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for k, av := range a.Fields {
			bv, ok := b.Fields[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	case ArrayKind:
		if len(a.Elems) != len(b.Elems) {
			return false
		}
		for i := range a.Elems {
			if !Equal(a.Elems[i], b.Elems[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String returns the value as compact JSON, for error messages and debug
// output.
func (v *Value) String() string {
	data, err := v.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<invalid value: %v>", err)
	}
	return string(data)
}
