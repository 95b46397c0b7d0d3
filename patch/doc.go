// Package patch implements RFC 6902 JSON Patch: the operation model, its
// JSON wire form, and a deterministic application engine.
//
// Import path: github.com/erraggy/patchtools/patch
//
// # Operations
//
// A [Patch] is an ordered sequence of [Operation] values, each one of the
// six RFC 6902 verbs: add, remove, replace, move, copy, test. Operations
// apply strictly in order; each observes the cumulative effect of all
// prior operations in the same sequence, not the original document.
//
// # Applying
//
// [Apply] applies a patch in strict mode. For lenient semantics or
// per-operation logging, configure an [Applier]:
//
//	a := patch.NewApplier()
//	a.Strict = false
//	result, err := a.Apply(doc, p)
//
// Application never mutates the input document: the engine deep-copies it
// first, and any failure aborts the whole call, so callers never observe a
// partially patched document.
//
// # Strict mode
//
// Strict mode (the default) enforces existence/absence preconditions:
// add fails on an existing object key, remove fails on an absent key or
// out-of-range index, and replace requires its target to exist. Lenient
// mode relaxes these into idempotent best-effort behavior. Move, copy, and
// test require their source to exist in both modes.
//
// # Failures
//
// Structural and validation failures are reported as
// [patcherrors.PatchError]. A failed test assertion is reported distinctly
// as [patcherrors.TestFailedError], carrying the failed operation's target
// and both values, so callers can branch on it:
//
//	result, err := patch.Apply(doc, p)
//	if errors.Is(err, patcherrors.ErrTestFailed) {
//	    // Precondition no longer holds; refetch and retry.
//	}
package patch
