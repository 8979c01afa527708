package sat

import "math/rand"

// RandomizedMaxSAT draws trials independent uniform-random total assignments
// and returns the one satisfying the most clauses, together with that count.
// Ties keep the earliest trial. Each independent trial satisfies 7/8 of the
// clauses in expectation; the maximum over many trials concentrates well
// above that.
//
// The random source is injected so runs are reproducible; the same rng state
// and trial count always produce the same result.
func RandomizedMaxSAT(f *Formula, trials int, rng *rand.Rand) (Assignment, int) {
	var best Assignment
	bestCount := -1

	a := make(Assignment, f.NumVars)
	for t := 0; t < trials; t++ {
		for v := range a {
			a[v] = rng.Intn(2) == 1
		}
		count := f.CountSatisfied(a)
		if count > bestCount {
			bestCount = count
			best = make(Assignment, len(a))
			copy(best, a)
		}
	}
	if bestCount < 0 {
		return nil, 0
	}
	return best, bestCount
}
