package patch

import (
	"encoding/json"
	"errors"

	"github.com/erraggy/patchtools/patcherrors"
)

// Patch is an ordered sequence of operations. Operations are applied
// strictly in order; each observes the cumulative effect of all prior
// operations in the same sequence.
type Patch []Operation

// Decode parses RFC 6902 wire form: a JSON array of operation objects.
// Every operation record is validated before any application is attempted.
func Decode(data []byte) (Patch, error) {
	var p Patch
	if err := json.Unmarshal(data, &p); err != nil {
		var perr *patcherrors.PatchError
		if errors.As(err, &perr) {
			return nil, perr
		}
		return nil, &patcherrors.PatchError{Message: "malformed patch document", Cause: err}
	}
	return p, nil
}
