// Package patcherrors provides structured error types for patchtools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - PointerError: malformed RFC 6901 pointer text, unresolvable paths,
//     invalid array indices, and parent-of-root requests
//   - PatchError: the single generic structural/validation failure for
//     patch decoding and application (duplicate key, missing key, index
//     out of bounds, wrong container kind, unknown operation, ...)
//   - TestFailedError: a "test" operation's assertion did not hold
//   - DiffError: an internal fault while computing a diff
//
// # Usage with errors.Is
//
//	result, err := patch.Apply(doc, ops)
//	if err != nil {
//	    if errors.Is(err, patcherrors.ErrTestFailed) {
//	        // Precondition no longer holds; refetch and retry.
//	    }
//	}
package patcherrors

import (
	"errors"
	"fmt"

	"github.com/erraggy/patchtools/value"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrPointer indicates a pointer could not be parsed or resolved.
	ErrPointer = errors.New("pointer error")

	// ErrPatch indicates a structural or validation failure while decoding
	// or applying a patch.
	ErrPatch = errors.New("patch error")

	// ErrTestFailed indicates a "test" operation's assertion did not hold.
	ErrTestFailed = errors.New("test operation failed")

	// ErrDiff indicates an internal fault while computing a diff.
	ErrDiff = errors.New("diff error")
)

// PointerError represents a failure to parse an RFC 6901 pointer or to
// resolve one against a document.
type PointerError struct {
	// Pointer is the pointer text, when known
	Pointer string
	// Segment is the offending segment, when the failure is segment-specific
	Segment string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *PointerError) Error() string {
	msg := "pointer error"
	if e.Pointer != "" {
		msg += fmt.Sprintf(" at %q", e.Pointer)
	}
	if e.Segment != "" {
		msg += fmt.Sprintf(" (segment %q)", e.Segment)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *PointerError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *PointerError) Is(target error) bool {
	return target == ErrPointer
}

// PatchError represents a structural or validation failure while decoding
// or applying a patch. Callers are expected to treat any PatchError as
// "the patch or input was invalid"; finer-grained causes (such as a
// PointerError) remain reachable through the error chain.
type PatchError struct {
	// Op is the operation kind being decoded or applied, when known
	Op string
	// Path is the pointer text the operation targeted, when known
	Path string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *PatchError) Error() string {
	msg := "patch error"
	if e.Op != "" {
		msg += " in " + e.Op
	}
	if e.Path != "" {
		msg += fmt.Sprintf(" at %q", e.Path)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *PatchError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *PatchError) Is(target error) bool {
	return target == ErrPatch
}

// TestFailedError reports that a "test" operation's assertion did not hold.
// It carries the failed operation's target and both values so callers can
// branch on it (for example, retry with fresh data) distinctly from a
// malformed-input failure.
type TestFailedError struct {
	// Path is the pointer text of the failed test operation
	Path string
	// Expected is the value the operation asserted
	Expected *value.Value
	// Actual is the value found in the document
	Actual *value.Value
}

// Error returns a human-readable error message.
func (e *TestFailedError) Error() string {
	return fmt.Sprintf("test operation failed at %q: expected %s, found %s",
		e.Path, e.Expected, e.Actual)
}

// Unwrap returns nil as TestFailedError has no underlying cause.
func (e *TestFailedError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *TestFailedError) Is(target error) bool {
	return target == ErrTestFailed
}

// DiffError represents an internal fault while computing a diff. Diffing
// fails atomically: no partial operation sequence is ever returned
// alongside a DiffError.
type DiffError struct {
	// Path is the pointer text where diffing failed, when known
	Path string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *DiffError) Error() string {
	msg := "diff error"
	if e.Path != "" {
		msg += fmt.Sprintf(" at %q", e.Path)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *DiffError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *DiffError) Is(target error) bool {
	return target == ErrDiff
}
