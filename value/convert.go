package value

import "fmt"

// FromGo converts a decoded-JSON Go value (the shapes produced by
// encoding/json and yaml unmarshaling into any) to a Value. It accepts nil,
// bool, string, all integer and float widths, map[string]any, map[any]any
// with string keys, and []any. Anything else is not JSON-representable and
// returns an error.
func FromGo(raw any) (*Value, error) {
	switch t := raw.(type) {
	case nil:
		return Null(), nil
	case *Value:
		if t == nil {
			return Null(), nil
		}
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case float64:
		return Number(t), nil
	case float32:
		return Number(float64(t)), nil
	case int:
		return Number(float64(t)), nil
	case int8:
		return Number(float64(t)), nil
	case int16:
		return Number(float64(t)), nil
	case int32:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case uint:
		return Number(float64(t)), nil
	case uint8:
		return Number(float64(t)), nil
	case uint16:
		return Number(float64(t)), nil
	case uint32:
		return Number(float64(t)), nil
	case uint64:
		return Number(float64(t)), nil
	case map[string]*Value:
		return Object(t), nil
	case map[string]any:
		fields := make(map[string]*Value, len(t))
		for k, f := range t {
			fv, err := FromGo(f)
			if err != nil {
				return nil, err
			}
			fields[k] = fv
		}
		return &Value{Kind: ObjectKind, Fields: fields}, nil
	case map[any]any:
		// yaml decoders produce this shape for mappings with non-scalar or
		// mixed keys; only string keys are JSON-representable.
		fields := make(map[string]*Value, len(t))
		for k, f := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("value: non-string map key %v (%T)", k, k)
			}
			fv, err := FromGo(f)
			if err != nil {
				return nil, err
			}
			fields[ks] = fv
		}
		return &Value{Kind: ObjectKind, Fields: fields}, nil
	case []*Value:
		return Array(t...), nil
	case []any:
		elems := make([]*Value, len(t))
		for i, e := range t {
			ev, err := FromGo(e)
			if err != nil {
				return nil, err
			}
			elems[i] = ev
		}
		return &Value{Kind: ArrayKind, Elems: elems}, nil
	default:
		return nil, fmt.Errorf("value: %T is not JSON-representable", raw)
	}
}

// Interface converts v back to the plain Go shapes produced by decoding
// JSON into any: nil, bool, float64, string, map[string]any, and []any.
func (v *Value) Interface() any {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case NullKind:
		return nil
	case BoolKind:
		return v.Bool
	case NumberKind:
		return v.Num
	case StringKind:
		return v.Str
	case ObjectKind:
		fields := make(map[string]any, len(v.Fields))
		for k, f := range v.Fields {
			fields[k] = f.Interface()
		}
		return fields
	case ArrayKind:
		elems := make([]any, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = e.Interface()
		}
		return elems
	default:
		return nil
	}
}
