package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

const satisfiable = 1

// Oracle answers satisfiability queries with a CDCL solver. The benchmark
// harness uses it to cross-check the bruteforce solver's UNSAT verdicts on
// instances where the enumeration completed, and tests use it as the
// reference answer on randomly generated formulas.
type Oracle struct{}

// Satisfiable reports whether f has a satisfying assignment.
func (Oracle) Satisfiable(f *Formula) bool {
	g := gini.NewV(f.NumVars)
	for _, c := range f.Clauses {
		for _, lit := range c {
			if lit > 0 {
				g.Add(z.Var(lit).Pos())
			} else {
				g.Add(z.Var(-lit).Neg())
			}
		}
		g.Add(z.LitNull)
	}
	return g.Solve() == satisfiable
}
