package npbench

// Sense states which direction a problem optimizes, which in turn decides
// the orientation of the accuracy ratio.
type Sense int

const (
	// Maximize: larger solution values are better (satisfied clause
	// counts, clique sizes).
	Maximize Sense = iota
	// Minimize: smaller solution values are better (cover sizes, color
	// counts, selected set counts).
	Minimize
)

// Accuracy scores a heuristic value against the exact optimum as a
// percentage.
//
// For Maximize problems the ratio is heuristic/optimal, defined as 100 when
// the optimum is zero. For Minimize problems the ratio is optimal/heuristic,
// defined as 100 when the heuristic value is zero. Callers are responsible
// for only invoking this when the exact optimum is actually known; when the
// exact solver timed out the score is undefined and must be reported as
// absent (see RunMetrics.Accuracy).
func Accuracy(sense Sense, heuristic, optimal int) float64 {
	switch sense {
	case Maximize:
		if optimal == 0 {
			return 100
		}
		return float64(heuristic) / float64(optimal) * 100
	default:
		if heuristic == 0 {
			return 100
		}
		return float64(optimal) / float64(heuristic) * 100
	}
}

// KnownAccuracy computes Accuracy only when the exact status certifies the
// optimum; otherwise it returns nil, which marshals to JSON null.
func KnownAccuracy(sense Sense, heuristic, optimal int, exact Status) *float64 {
	if !exact.Exact() {
		return nil
	}
	a := Accuracy(sense, heuristic, optimal)
	return &a
}
