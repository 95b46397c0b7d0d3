// Package differ computes RFC 6902 patches between two values.
//
// Import path: github.com/erraggy/patchtools/differ
//
// Diff produces an ordered operation sequence such that applying it to the
// old value with the patch package in strict mode yields a value
// structurally equal to the new value:
//
//	p, err := differ.Diff(oldDoc, newDoc)
//	if err != nil {
//	    return err
//	}
//	result, err := patch.Apply(oldDoc, p)
//
// The algorithm is a single recursive pass. Objects diff per key over the
// union of both key sets; equal-length arrays diff element-wise; an array
// whose length changed is replaced wholesale rather than aligned
// element-by-element, so the output is correct but not guaranteed globally
// minimal. Object keys are visited in sorted order, making the output fully
// deterministic.
package differ

import (
	"fmt"
	"strconv"

	"github.com/erraggy/patchtools/internal/maputil"
	"github.com/erraggy/patchtools/patch"
	"github.com/erraggy/patchtools/patcherrors"
	"github.com/erraggy/patchtools/pointer"
	"github.com/erraggy/patchtools/value"
)

// Differ computes patches between values.
type Differ struct {
	// Logger receives a Debug trace for each emitted operation. Nil disables
	// logging.
	Logger patch.Logger
}

// New creates a new Differ with default settings.
func New() *Differ {
	return &Differ{}
}

// Diff computes, with a default Differ, the operations transforming oldV
// into newV.
func Diff(oldV, newV *value.Value) (patch.Patch, error) {
	return New().Diff(oldV, newV)
}

// Diff computes the operations transforming oldV into newV. Structurally
// equal inputs produce an empty sequence. Diffing fails atomically: any
// internal fault is reported as a single DiffError with no partial result.
func (d *Differ) Diff(oldV, newV *value.Value) (p patch.Patch, err error) {
	defer func() {
		if r := recover(); r != nil {
			p = nil
			err = &patcherrors.DiffError{
				Message: fmt.Sprintf("internal fault while diffing: %v", r),
			}
		}
	}()

	if oldV == nil {
		oldV = value.Null()
	}
	if newV == nil {
		newV = value.Null()
	}
	return d.diff(oldV, newV, pointer.Pointer{}), nil
}

// diff recursively compares the pair of values addressed by at.
func (d *Differ) diff(oldV, newV *value.Value, at pointer.Pointer) patch.Patch {
	switch {
	case oldV.Kind == value.NullKind && newV.Kind == value.NullKind:
		return nil

	case oldV.Kind == value.NullKind || newV.Kind == value.NullKind:
		// Null swaps wholesale; it is never diffed structurally.
		return d.emit(patch.NewReplace(at, newV.Clone()))

	case oldV.Kind == value.ObjectKind && newV.Kind == value.ObjectKind:
		return d.diffObjects(oldV, newV, at)

	case oldV.Kind == value.ArrayKind && newV.Kind == value.ArrayKind:
		return d.diffArrays(oldV, newV, at)

	default:
		if !value.Equal(oldV, newV) {
			return d.emit(patch.NewReplace(at, newV.Clone()))
		}
		return nil
	}
}

// diffObjects diffs two objects over the union of their key sets: keys in
// both recurse, old-only keys emit a remove, new-only keys emit an add.
func (d *Differ) diffObjects(oldV, newV *value.Value, at pointer.Pointer) patch.Patch {
	union := make(map[string]struct{}, len(oldV.Fields)+len(newV.Fields))
	for k := range oldV.Fields {
		union[k] = struct{}{}
	}
	for k := range newV.Fields {
		union[k] = struct{}{}
	}

	var ops patch.Patch
	for _, k := range maputil.SortedKeys(union) {
		oldField, inOld := oldV.Fields[k]
		newField, inNew := newV.Fields[k]
		switch {
		case inOld && inNew:
			ops = append(ops, d.diff(oldField, newField, at.Child(k))...)
		case inOld:
			ops = append(ops, d.emit(patch.NewRemove(at.Child(k)))...)
		default:
			ops = append(ops, d.emit(patch.NewAdd(at.Child(k), newField.Clone()))...)
		}
	}
	return ops
}

// diffArrays diffs two arrays. A length change replaces the whole array;
// equal lengths recurse per index in ascending order.
func (d *Differ) diffArrays(oldV, newV *value.Value, at pointer.Pointer) patch.Patch {
	if len(oldV.Elems) != len(newV.Elems) {
		return d.emit(patch.NewReplace(at, newV.Clone()))
	}
	var ops patch.Patch
	for i := range oldV.Elems {
		ops = append(ops, d.diff(oldV.Elems[i], newV.Elems[i], at.Child(strconv.Itoa(i)))...)
	}
	return ops
}

// emit wraps a single operation as a Patch, tracing it when a Logger is set.
func (d *Differ) emit(op patch.Operation) patch.Patch {
	if d.Logger != nil {
		d.Logger.Debug("emitting operation", "op", string(op.Op), "path", op.Path.String())
	}
	return patch.Patch{op}
}
