package patch

import (
	"encoding/json"
	"fmt"

	"github.com/erraggy/patchtools/patcherrors"
	"github.com/erraggy/patchtools/pointer"
	"github.com/erraggy/patchtools/value"
)

// Op is an RFC 6902 operation kind.
type Op string

const (
	// OpAdd inserts a value at the target location.
	OpAdd Op = "add"
	// OpRemove deletes the value at the target location.
	OpRemove Op = "remove"
	// OpReplace swaps the value at the target location.
	OpReplace Op = "replace"
	// OpMove relocates the value at "from" to the target location.
	OpMove Op = "move"
	// OpCopy duplicates the value at "from" to the target location.
	OpCopy Op = "copy"
	// OpTest asserts the value at the target location equals the operand.
	OpTest Op = "test"
)

// Valid reports whether o is one of the six RFC 6902 operation kinds.
func (o Op) Valid() bool {
	switch o {
	case OpAdd, OpRemove, OpReplace, OpMove, OpCopy, OpTest:
		return true
	default:
		return false
	}
}

// needsValue reports whether the wire form requires a "value" member.
func (o Op) needsValue() bool {
	return o == OpAdd || o == OpReplace || o == OpTest
}

// needsFrom reports whether the wire form requires a "from" member.
func (o Op) needsFrom() bool {
	return o == OpMove || o == OpCopy
}

// Operation is a single RFC 6902 patch operation. Operations are immutable
// once constructed; build them with the NewX constructors or by decoding
// wire form, not by mutating fields.
type Operation struct {
	// Op is the operation kind.
	Op Op
	// Path is the target location.
	Path pointer.Pointer
	// From is the source location for move and copy.
	From pointer.Pointer
	// Value is the operand for add, replace, and test. A JSON null operand
	// is a present NullKind Value, distinct from an absent operand.
	Value *value.Value

	// hasValue distinguishes a decoded null operand from a missing "value"
	// member.
	hasValue bool
}

// NewAdd returns an add operation.
func NewAdd(path pointer.Pointer, v *value.Value) Operation {
	return Operation{Op: OpAdd, Path: path, Value: v, hasValue: true}
}

// NewRemove returns a remove operation.
func NewRemove(path pointer.Pointer) Operation {
	return Operation{Op: OpRemove, Path: path}
}

// NewReplace returns a replace operation.
func NewReplace(path pointer.Pointer, v *value.Value) Operation {
	return Operation{Op: OpReplace, Path: path, Value: v, hasValue: true}
}

// NewMove returns a move operation.
func NewMove(from, to pointer.Pointer) Operation {
	return Operation{Op: OpMove, Path: to, From: from}
}

// NewCopy returns a copy operation.
func NewCopy(from, to pointer.Pointer) Operation {
	return Operation{Op: OpCopy, Path: to, From: from}
}

// NewTest returns a test operation.
func NewTest(path pointer.Pointer, v *value.Value) Operation {
	return Operation{Op: OpTest, Path: path, Value: v, hasValue: true}
}

// HasValue reports whether the operation carries an operand, including a
// null operand.
func (o Operation) HasValue() bool {
	return o.hasValue
}

// String returns the operation in compact wire form, for logs and errors.
func (o Operation) String() string {
	data, err := o.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<invalid operation: %v>", err)
	}
	return string(data)
}

// wireOperation is the RFC 6902 JSON shape of an operation.
type wireOperation struct {
	Op    Op              `json:"op"`
	Path  string          `json:"path"`
	From  string          `json:"from,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (o Operation) MarshalJSON() ([]byte, error) {
	w := wireOperation{Op: o.Op, Path: o.Path.String()}
	if o.Op.needsFrom() {
		w.From = o.From.String()
	}
	if o.hasValue {
		data, err := o.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		w.Value = data
	}
	return json.Marshal(w)
}

// rawOperation mirrors the wire form with pointers so that absent members
// are distinguishable from zero values during validation.
type rawOperation struct {
	Op    *string         `json:"op"`
	Path  *string         `json:"path"`
	From  *string         `json:"from"`
	Value json.RawMessage `json:"value"`
}

// UnmarshalJSON implements json.Unmarshaler. Malformed operation records
// (missing op, missing path, missing value or from for a kind that requires
// them, unrecognized op) fail fast with a PatchError before any application
// is attempted.
func (o *Operation) UnmarshalJSON(data []byte) error {
	var raw rawOperation
	if err := json.Unmarshal(data, &raw); err != nil {
		return &patcherrors.PatchError{Message: "malformed operation record", Cause: err}
	}
	if raw.Op == nil {
		return &patcherrors.PatchError{Message: `operation is missing required member "op"`}
	}
	op := Op(*raw.Op)
	if !op.Valid() {
		return &patcherrors.PatchError{Op: *raw.Op, Message: "unrecognized operation"}
	}
	if raw.Path == nil {
		return &patcherrors.PatchError{Op: *raw.Op, Message: `operation is missing required member "path"`}
	}
	path, err := pointer.Parse(*raw.Path)
	if err != nil {
		return &patcherrors.PatchError{Op: *raw.Op, Path: *raw.Path, Message: "invalid path", Cause: err}
	}

	dec := Operation{Op: op, Path: path}

	if op.needsFrom() {
		if raw.From == nil {
			return &patcherrors.PatchError{
				Op: *raw.Op, Path: *raw.Path,
				Message: fmt.Sprintf("%s operation is missing required member %q", op, "from"),
			}
		}
		from, err := pointer.Parse(*raw.From)
		if err != nil {
			return &patcherrors.PatchError{Op: *raw.Op, Path: *raw.Path, Message: "invalid from", Cause: err}
		}
		dec.From = from
	}

	if op.needsValue() {
		if raw.Value == nil {
			return &patcherrors.PatchError{
				Op: *raw.Op, Path: *raw.Path,
				Message: fmt.Sprintf("%s operation is missing required member %q", op, "value"),
			}
		}
		v := &value.Value{}
		if err := v.UnmarshalJSON(raw.Value); err != nil {
			return &patcherrors.PatchError{Op: *raw.Op, Path: *raw.Path, Message: "invalid value", Cause: err}
		}
		dec.Value = v
		dec.hasValue = true
	}

	*o = dec
	return nil
}
