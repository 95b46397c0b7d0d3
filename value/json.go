package value

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON implements json.Marshaler. Object keys are emitted in sorted
// order so the same Value always marshals to the same bytes.
func (v *Value) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	switch v.Kind {
	case NullKind:
		return []byte("null"), nil
	case BoolKind:
		return json.Marshal(v.Bool)
	case NumberKind:
		return json.Marshal(v.Num)
	case StringKind:
		return json.Marshal(v.Str)
	case ObjectKind:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, k := range v.SortedKeys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			field, err := v.Fields[k].MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(field)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	case ArrayKind:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, e := range v.Elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			elem, err := e.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(elem)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("value: cannot marshal kind %d", int(v.Kind))
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := FromGo(raw)
	if err != nil {
		return err
	}
	*v = *parsed
	return nil
}

// Parse decodes JSON text into a Value.
func Parse(data []byte) (*Value, error) {
	v := &Value{}
	if err := v.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return v, nil
}
