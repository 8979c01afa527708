// Package phase runs the 3-SAT phase-transition experiment: sweep the
// clause-to-variable ratio alpha, hand each random formula to a black-box
// CDCL solver, and record the satisfiable fraction and the mean conflict
// count at every ratio.
package phase

import (
	"fmt"

	gophersat "github.com/crillab/gophersat/solver"
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// Backend is the black-box solver contract the experiment consumes: a
// satisfiability verdict plus the number of conflicts the search went
// through, the standard hardness proxy for CDCL solvers.
type Backend interface {
	Name() string
	Solve(clauses [][]int, numVars int) (sat bool, conflicts int64, err error)
}

// GophersatBackend solves with the gophersat CDCL solver and reports its
// conflict statistics.
type GophersatBackend struct{}

func (GophersatBackend) Name() string { return "gophersat" }

func (GophersatBackend) Solve(clauses [][]int, numVars int) (bool, int64, error) {
	pb := gophersat.ParseSlice(clauses)
	s := gophersat.New(pb)
	switch status := s.Solve(); status {
	case gophersat.Sat:
		return true, int64(s.Stats.NbConflicts), nil
	case gophersat.Unsat:
		return false, int64(s.Stats.NbConflicts), nil
	default:
		return false, 0, fmt.Errorf("gophersat returned indeterminate status %v", status)
	}
}

// GiniBackend solves with the gini CDCL solver. Gini does not expose its
// conflict counters, so it only serves sweeps where the satisfiability
// probability is the quantity of interest; conflicts are reported as zero.
type GiniBackend struct{}

func (GiniBackend) Name() string { return "gini" }

func (GiniBackend) Solve(clauses [][]int, numVars int) (bool, int64, error) {
	g := gini.NewV(numVars)
	for _, clause := range clauses {
		for _, lit := range clause {
			if lit > 0 {
				g.Add(z.Var(lit).Pos())
			} else {
				g.Add(z.Var(-lit).Neg())
			}
		}
		g.Add(z.LitNull)
	}
	return g.Solve() == 1, 0, nil
}
