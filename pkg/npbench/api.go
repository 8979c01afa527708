// Package npbench holds the public contracts shared by every solver in this
// repository: run statuses, the per-run metrics record, and the accuracy
// scoring used to compare a heuristic's answer against an exact optimum.
package npbench

import "time"

// Status describes the outcome of a single solver invocation.
//
// Exact solvers report StatusOptimal (or StatusSat/StatusUnsat for
// satisfiability), and StatusTimeout when the deadline elapsed before the
// search space was exhausted. A solution accompanying StatusTimeout is at
// best a bound, never a verified optimum. Heuristics report StatusComplete,
// or StatusPartial when they stopped without covering their goal.
type Status string

const (
	StatusOptimal    Status = "OPTIMAL"
	StatusSat        Status = "SAT"
	StatusUnsat      Status = "UNSAT"
	StatusTimeout    Status = "TIMEOUT"
	StatusComplete   Status = "COMPLETE"
	StatusPartial    Status = "PARTIAL"
	StatusInfeasible Status = "INFEASIBLE"
)

func (s Status) String() string {
	return string(s)
}

// Exact reports whether the status certifies the accompanying solution as a
// verified optimum (or a definitive satisfiability answer).
func (s Status) Exact() bool {
	switch s {
	case StatusOptimal, StatusSat, StatusUnsat:
		return true
	}
	return false
}

// RunMetrics is the record produced for one solver invocation on one
// instance. Accuracy is nil whenever the exact reference result was
// unavailable (timeout or infeasible instance); consumers must propagate the
// absence rather than substitute a default.
type RunMetrics struct {
	Algorithm string        `json:"algorithm"`
	Status    Status        `json:"status"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	Seconds   float64       `json:"seconds"`
	Value     int           `json:"value"`
	Accuracy  *float64      `json:"accuracy"`
}
