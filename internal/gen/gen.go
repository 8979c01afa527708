// Package gen produces the synthetic instances the benchmark suite runs on:
// random 3-CNF formulas, Erdős–Rényi graphs, and random set cover instances.
// All generators take an injected random source so datasets are reproducible
// from a seed.
package gen

import (
	"math/rand"

	"github.com/npbench/npbench/internal/graph"
	"github.com/npbench/npbench/internal/sat"
	"github.com/npbench/npbench/internal/setcover"
)

// Formula generates a random 3-CNF formula with nClauses clauses, each over
// three distinct variables from [1, nVars], each negated with probability
// one half.
func Formula(nVars, nClauses int, rng *rand.Rand) *sat.Formula {
	f := &sat.Formula{
		NumVars: nVars,
		Clauses: make([]sat.Clause, nClauses),
	}
	for i := range f.Clauses {
		vars := rng.Perm(nVars)[:3]
		var c sat.Clause
		for j, v := range vars {
			lit := v + 1
			if rng.Intn(2) == 0 {
				lit = -lit
			}
			c[j] = lit
		}
		f.Clauses[i] = c
	}
	return f
}

// Graph generates an Erdős–Rényi G(n, p) graph: each of the C(n,2)
// candidate edges is present independently with probability p.
func Graph(n int, p float64, rng *rand.Rand) *graph.Graph {
	g := graph.New(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				g.AddEdge(i, j)
			}
		}
	}
	return g
}

// SetCover generates a set cover instance over the universe {0..universeSize-1}
// with numSets random subsets whose sizes are drawn from a gaussian around
// avgSetSize (sigma avg/3), clamped to [1, universeSize]. Instances are not
// guaranteed feasible; the exact solver reports infeasibility when they are
// not.
func SetCover(universeSize, numSets, avgSetSize int, rng *rand.Rand) setcover.Instance {
	universe := make([]int, universeSize)
	for i := range universe {
		universe[i] = i
	}

	sets := make([][]int, numSets)
	for i := range sets {
		size := int(rng.NormFloat64()*float64(avgSetSize)/3 + float64(avgSetSize))
		if size < 1 {
			size = 1
		}
		if size > universeSize {
			size = universeSize
		}
		sets[i] = rng.Perm(universeSize)[:size]
	}

	return setcover.Instance{Universe: universe, Sets: sets}
}
