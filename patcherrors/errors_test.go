package patcherrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/patchtools/value"
)

func TestPointerError(t *testing.T) {
	cause := errors.New("boom")
	err := &PointerError{Pointer: "/a/b", Segment: "b", Message: "no such key", Cause: cause}

	assert.ErrorIs(t, err, ErrPointer)
	assert.NotErrorIs(t, err, ErrPatch)
	assert.ErrorIs(t, err, cause)

	msg := err.Error()
	assert.Contains(t, msg, `"/a/b"`)
	assert.Contains(t, msg, `segment "b"`)
	assert.Contains(t, msg, "no such key")
	assert.Contains(t, msg, "boom")
}

func TestPointerErrorMinimal(t *testing.T) {
	err := &PointerError{Message: "bad text"}
	assert.Equal(t, "pointer error: bad text", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestPatchError(t *testing.T) {
	err := &PatchError{Op: "add", Path: "/x", Message: "key already exists"}

	assert.ErrorIs(t, err, ErrPatch)
	assert.NotErrorIs(t, err, ErrTestFailed)

	msg := err.Error()
	assert.Contains(t, msg, "in add")
	assert.Contains(t, msg, `"/x"`)
	assert.Contains(t, msg, "key already exists")
}

func TestPatchErrorChainsPointerCause(t *testing.T) {
	inner := &PointerError{Pointer: "/a", Message: "no such key"}
	outer := &PatchError{Op: "remove", Path: "/a", Message: "target parent does not exist", Cause: inner}

	assert.ErrorIs(t, outer, ErrPatch)
	assert.ErrorIs(t, outer, ErrPointer, "the pointer cause must stay reachable through the chain")

	var perr *PointerError
	require.True(t, errors.As(outer, &perr))
	assert.Equal(t, "/a", perr.Pointer)
}

func TestTestFailedError(t *testing.T) {
	err := &TestFailedError{
		Path:     "/status",
		Expected: value.String("ready"),
		Actual:   value.String("pending"),
	}

	assert.ErrorIs(t, err, ErrTestFailed)
	assert.NotErrorIs(t, err, ErrPatch)
	assert.Nil(t, err.Unwrap())

	msg := err.Error()
	assert.Contains(t, msg, `"/status"`)
	assert.Contains(t, msg, `"ready"`)
	assert.Contains(t, msg, `"pending"`)
}

func TestDiffError(t *testing.T) {
	err := &DiffError{Message: "internal fault while diffing: boom"}
	assert.ErrorIs(t, err, ErrDiff)
	assert.Contains(t, err.Error(), "boom")
}

func TestWrappedErrorsSurviveFmt(t *testing.T) {
	err := fmt.Errorf("loading patch: %w", &PatchError{Message: "malformed patch document"})
	assert.ErrorIs(t, err, ErrPatch)

	var perr *PatchError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "malformed patch document", perr.Message)
}
