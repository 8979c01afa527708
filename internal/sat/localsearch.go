package sat

import "math/rand"

// LocalSearchMaxSAT starts from one random assignment and greedily flips
// single variables to a local optimum.
//
// Each step collects every variable appearing in a currently-unsatisfied
// clause as a flip candidate (in clause order, then literal order, first
// occurrence only), evaluates each candidate flip against the current
// assignment, and commits the one with the largest strictly positive gain;
// ties keep the first candidate. The satisfied-clause count therefore never
// decreases. The search stops at a local optimum, when every clause is
// satisfied, or after maxSteps steps.
func LocalSearchMaxSAT(f *Formula, maxSteps int, rng *rand.Rand) (Assignment, int) {
	n := f.NumVars
	a := make(Assignment, n)
	for v := range a {
		a[v] = rng.Intn(2) == 1
	}

	seen := make([]bool, n+1)
	var candidates []int

	for step := 0; step < maxSteps; step++ {
		current := f.CountSatisfied(a)
		if current == len(f.Clauses) {
			return a, current
		}

		candidates = candidates[:0]
		for i := range seen {
			seen[i] = false
		}
		for _, c := range f.Clauses {
			if c.Satisfied(a) {
				continue
			}
			for _, lit := range c {
				v := lit
				if v < 0 {
					v = -v
				}
				if !seen[v] {
					seen[v] = true
					candidates = append(candidates, v)
				}
			}
		}

		// Evaluate one single-variable flip at a time against the
		// current assignment; no compound flips.
		bestVar := 0
		bestGain := 0
		for _, v := range candidates {
			a[v-1] = !a[v-1]
			gain := f.CountSatisfied(a) - current
			a[v-1] = !a[v-1]
			if gain > bestGain {
				bestGain = gain
				bestVar = v
			}
		}

		if bestVar == 0 {
			// Local optimum.
			break
		}
		a[bestVar-1] = !a[bestVar-1]
	}

	return a, f.CountSatisfied(a)
}
