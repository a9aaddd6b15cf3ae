package sat

import (
	"math/bits"

	"github.com/pkg/errors"
)

// Sentinel errors the core can return. All are fatal from the caller's
// perspective: there is no local recovery, only a diagnostic and an abort.
// Propagation conflicts are not represented here — they are ordinary
// control-flow events inside Solve, not errors.
var (
	ErrBadInput    = errors.New("bad input")
	ErrOverflow    = errors.New("variable count exceeds encoding limit")
	ErrOutOfMemory = errors.New("allocation failure")
	ErrIO          = errors.New("i/o error")
)

// checkVarLimit enforces that numVars leaves headroom for the internal
// 2*numVars literal encoding on the native int width.
func checkVarLimit(numVars int) error {
	limit := 1 << (bits.UintSize - 3)
	if numVars >= limit {
		return errors.Wrapf(ErrOverflow, "variable count %d exceeds limit %d", numVars, limit)
	}
	return nil
}
