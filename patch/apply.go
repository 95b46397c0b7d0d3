package patch

import (
	"slices"

	"github.com/erraggy/patchtools/patcherrors"
	"github.com/erraggy/patchtools/pointer"
	"github.com/erraggy/patchtools/value"
)

// syntheticRootKey is the reserved key under which the working document is
// wrapped during application. Wrapping makes every operation, including one
// that replaces or removes the document root, a mutation of a child of some
// object, so root targets share the ordinary code path.
const syntheticRootKey = "document"

// Applier applies patches to documents.
type Applier struct {
	// Strict enables the existence/absence preconditions on
	// add/remove/replace targets. In lenient mode those preconditions relax
	// into idempotent best-effort behavior: remove of an absent target is a
	// no-op and replace of an absent target degrades to an add. Move, copy,
	// and test always require their source to exist.
	Strict bool

	// Logger receives per-operation Debug traces. Nil disables logging.
	Logger Logger
}

// NewApplier creates a new Applier with strict semantics.
func NewApplier() *Applier {
	return &Applier{Strict: true}
}

// Apply applies p to doc in strict mode and returns the resulting document.
// doc is never mutated.
func Apply(doc *value.Value, p Patch) (*value.Value, error) {
	return NewApplier().Apply(doc, p)
}

// Apply sequentially applies each operation of p to a deep copy of doc and
// returns the final value. Any failure aborts the whole call: no partial
// application is ever observable, and doc itself is never mutated.
func (a *Applier) Apply(doc *value.Value, p Patch) (*value.Value, error) {
	log := a.Logger
	if log == nil {
		log = nopLogger{}
	}

	root := value.Object(map[string]*value.Value{
		syntheticRootKey: doc.Clone(),
	})

	for i := range p {
		op := &p[i]
		if err := a.applyOne(root, op); err != nil {
			log.Debug("patch application aborted", "index", i, "op", string(op.Op), "path", op.Path.String())
			return nil, err
		}
		log.Debug("applied operation", "index", i, "op", string(op.Op), "path", op.Path.String())
	}

	// A patch that removed the document root leaves the synthetic root
	// empty; the result is then the null document.
	result, ok := root.Fields[syntheticRootKey]
	if !ok {
		return value.Null(), nil
	}
	return result, nil
}

// rooted re-addresses p under the synthetic root key.
func rooted(p pointer.Pointer) pointer.Pointer {
	return pointer.Pointer{syntheticRootKey}.Child(p...)
}

func (a *Applier) applyOne(root *value.Value, op *Operation) error {
	switch op.Op {
	case OpAdd:
		return a.add(root, rooted(op.Path), op, op.Value)
	case OpRemove:
		return a.remove(root, rooted(op.Path), op)
	case OpReplace:
		// Remove-then-add under the same strictness: strict mode requires
		// the target to exist; lenient mode degrades to a plain add.
		if err := a.remove(root, rooted(op.Path), op); err != nil {
			return err
		}
		return a.add(root, rooted(op.Path), op, op.Value)
	case OpMove:
		src, err := rooted(op.From).Resolve(root)
		if err != nil {
			return &patcherrors.PatchError{
				Op: string(op.Op), Path: op.From.String(),
				Message: "move source does not exist", Cause: err,
			}
		}
		moved := src.Clone()
		if err := a.remove(root, rooted(op.From), op); err != nil {
			return err
		}
		return a.add(root, rooted(op.Path), op, moved)
	case OpCopy:
		src, err := rooted(op.From).Resolve(root)
		if err != nil {
			return &patcherrors.PatchError{
				Op: string(op.Op), Path: op.From.String(),
				Message: "copy source does not exist", Cause: err,
			}
		}
		return a.add(root, rooted(op.Path), op, src.Clone())
	case OpTest:
		actual, err := rooted(op.Path).Resolve(root)
		if err != nil {
			return &patcherrors.PatchError{
				Op: string(op.Op), Path: op.Path.String(),
				Message: "test target does not exist", Cause: err,
			}
		}
		if !value.Equal(actual, op.Value) {
			return &patcherrors.TestFailedError{
				Path:     op.Path.String(),
				Expected: op.Value,
				Actual:   actual.Clone(),
			}
		}
		return nil
	default:
		return &patcherrors.PatchError{
			Op: string(op.Op), Path: op.Path.String(),
			Message: "unknown operation",
		}
	}
}

// add inserts v at path. The path is already rooted, so it always has at
// least one segment and a resolvable parent container.
func (a *Applier) add(root *value.Value, path pointer.Pointer, op *Operation, v *value.Value) error {
	parent, last, err := a.site(root, path, op)
	if err != nil {
		return err
	}

	switch parent.Kind {
	case value.ObjectKind:
		// Replace never trips this: its remove half already cleared the key.
		if _, exists := parent.Fields[last]; exists && a.Strict {
			return &patcherrors.PatchError{
				Op: string(op.Op), Path: op.Path.String(),
				Message: "key already exists: " + last,
			}
		}
		parent.Fields[last] = v.Clone()
		return nil
	case value.ArrayKind:
		if last == pointer.EndOfArray {
			parent.Elems = append(parent.Elems, v.Clone())
			return nil
		}
		idx, err := pointer.Index(last)
		if err != nil {
			return &patcherrors.PatchError{
				Op: string(op.Op), Path: op.Path.String(),
				Message: "invalid array index", Cause: err,
			}
		}
		if idx > len(parent.Elems) {
			return &patcherrors.PatchError{
				Op: string(op.Op), Path: op.Path.String(),
				Message: "array index out of bounds",
			}
		}
		parent.Elems = slices.Insert(parent.Elems, idx, v.Clone())
		return nil
	default:
		return &patcherrors.PatchError{
			Op: string(op.Op), Path: op.Path.String(),
			Message: "cannot add to " + parent.Kind.String(),
		}
	}
}

// remove deletes the value at path. In lenient mode an absent target is a
// no-op.
func (a *Applier) remove(root *value.Value, path pointer.Pointer, op *Operation) error {
	parent, last, err := a.site(root, path, op)
	if err != nil {
		return err
	}

	switch parent.Kind {
	case value.ObjectKind:
		if _, exists := parent.Fields[last]; !exists {
			if a.Strict {
				return &patcherrors.PatchError{
					Op: string(op.Op), Path: op.Path.String(),
					Message: "no such key: " + last,
				}
			}
			return nil
		}
		delete(parent.Fields, last)
		return nil
	case value.ArrayKind:
		idx, err := pointer.Index(last)
		if err != nil {
			return &patcherrors.PatchError{
				Op: string(op.Op), Path: op.Path.String(),
				Message: "invalid array index", Cause: err,
			}
		}
		if idx >= len(parent.Elems) {
			if a.Strict {
				return &patcherrors.PatchError{
					Op: string(op.Op), Path: op.Path.String(),
					Message: "array index out of bounds",
				}
			}
			return nil
		}
		parent.Elems = slices.Delete(parent.Elems, idx, idx+1)
		return nil
	default:
		return &patcherrors.PatchError{
			Op: string(op.Op), Path: op.Path.String(),
			Message: "cannot remove from " + parent.Kind.String(),
		}
	}
}

// site resolves the mutation site for path: the parent container and the
// final segment naming the target within it.
func (a *Applier) site(root *value.Value, path pointer.Pointer, op *Operation) (*value.Value, string, error) {
	parentPath, err := path.Parent()
	if err != nil {
		return nil, "", &patcherrors.PatchError{
			Op: string(op.Op), Path: op.Path.String(),
			Message: "operation has no target", Cause: err,
		}
	}
	parent, err := parentPath.Resolve(root)
	if err != nil {
		return nil, "", &patcherrors.PatchError{
			Op: string(op.Op), Path: op.Path.String(),
			Message: "target parent does not exist", Cause: err,
		}
	}
	return parent, path.Last(), nil
}
