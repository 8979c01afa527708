// Package sat implements the 3-SAT/MAX-3SAT portion of the algorithm suite:
// an exact bruteforce solver, a randomized MAX-3SAT approximation, a greedy
// local-search heuristic, and a CDCL oracle used to cross-check answers.
package sat

// Clause is a disjunction of exactly three literals. A literal is a variable
// index in [1, NumVars], negative when the variable appears negated.
type Clause [3]int

// Formula is a 3-CNF formula over variables 1..NumVars.
type Formula struct {
	NumVars int      `json:"num_vars"`
	Clauses []Clause `json:"clauses"`
}

// Assignment maps variable v to its truth value at index v-1. Solutions are
// always total over [1, NumVars].
type Assignment []bool

// Value returns the truth value of variable v under a.
func (a Assignment) Value(v int) bool {
	return a[v-1]
}

// Satisfied reports whether the clause holds under the (total) assignment.
func (c Clause) Satisfied(a Assignment) bool {
	for _, lit := range c {
		if lit > 0 && a[lit-1] {
			return true
		}
		if lit < 0 && !a[-lit-1] {
			return true
		}
	}
	return false
}

// CountSatisfied returns the number of clauses of f satisfied by a.
func (f *Formula) CountSatisfied(a Assignment) int {
	count := 0
	for _, c := range f.Clauses {
		if c.Satisfied(a) {
			count++
		}
	}
	return count
}

// Satisfies reports whether a satisfies every clause of f.
func (f *Formula) Satisfies(a Assignment) bool {
	for _, c := range f.Clauses {
		if !c.Satisfied(a) {
			return false
		}
	}
	return true
}

// IntClauses returns the formula's clauses as plain int slices, the shape
// external CDCL solvers consume.
func (f *Formula) IntClauses() [][]int {
	out := make([][]int, len(f.Clauses))
	for i, c := range f.Clauses {
		out[i] = []int{c[0], c[1], c[2]}
	}
	return out
}
