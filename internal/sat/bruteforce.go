package sat

import (
	"context"

	"github.com/npbench/npbench/pkg/npbench"
)

// timeoutCheckMask throttles context checks to one per 1024 candidates;
// evaluating one candidate is cheap, so the worst-case deadline overrun
// stays bounded.
const timeoutCheckMask = 1023

// Bruteforce enumerates all 2^n assignments in increasing numeric order of
// their n-bit encoding (bit v-1 holds variable v) and returns the first one
// satisfying every clause. It reports StatusUnsat when the space is
// exhausted and StatusTimeout, with no assignment, when ctx expires first.
func Bruteforce(ctx context.Context, f *Formula) (Assignment, npbench.Status) {
	n := f.NumVars
	if n == 0 {
		// Single trivial assignment; a 3-CNF over zero variables has
		// no clauses to violate.
		if f.Satisfies(nil) {
			return Assignment{}, npbench.StatusSat
		}
		return nil, npbench.StatusUnsat
	}

	if n > 62 {
		// 2^n overflows the loop counter and could never be
		// enumerated within any realistic deadline anyway.
		return nil, npbench.StatusTimeout
	}

	a := make(Assignment, n)
	for i := uint64(0); i < 1<<uint(n); i++ {
		if i&timeoutCheckMask == 0 && ctx.Err() != nil {
			return nil, npbench.StatusTimeout
		}
		for v := 0; v < n; v++ {
			a[v] = (i>>uint(v))&1 == 1
		}
		if f.Satisfies(a) {
			out := make(Assignment, n)
			copy(out, a)
			return out, npbench.StatusSat
		}
	}
	return nil, npbench.StatusUnsat
}
