package graph

import (
	"context"
	"sort"

	"github.com/npbench/npbench/internal/lp"
	"github.com/npbench/npbench/pkg/npbench"
)

const timeoutCheckMask = 1023

// BruteforceVertexCover enumerates vertex subsets by increasing size and
// returns the first one covering every edge, which is minimum by
// construction. On timeout it returns the whole vertex set with
// StatusTimeout; that fallback is a valid cover but must not be read as
// optimal.
func BruteforceVertexCover(ctx context.Context, g *Graph) ([]int, npbench.Status) {
	n := g.NumVertices()
	edges := g.Edges()

	candidates := 0
	for k := 0; k <= n; k++ {
		combos := newCombinations(n, k)
		for combos.Next() {
			if candidates&timeoutCheckMask == 0 && ctx.Err() != nil {
				return allVertices(n), npbench.StatusTimeout
			}
			candidates++
			if coversAllEdges(g, combos.Indices, edges) {
				cover := make([]int, k)
				copy(cover, combos.Indices)
				return cover, npbench.StatusOptimal
			}
		}
	}
	// The full vertex set always covers; unreachable for well-formed
	// graphs but kept as a defined result.
	return allVertices(n), npbench.StatusOptimal
}

func coversAllEdges(g *Graph, subset []int, edges []Edge) bool {
	in := make([]bool, g.NumVertices())
	for _, v := range subset {
		in[v] = true
	}
	for _, e := range edges {
		if !in[e.U] && !in[e.V] {
			return false
		}
	}
	return true
}

func allVertices(n int) []int {
	vs := make([]int, n)
	for i := range vs {
		vs[i] = i
	}
	return vs
}

// MatchingVertexCover builds a maximal matching in one edge scan and returns
// the set of matched endpoints. Every edge either entered the matching or
// shares an endpoint with one that did, so the result is a valid cover of
// size at most twice the optimum.
func MatchingVertexCover(g *Graph) []int {
	matched := make([]bool, g.NumVertices())
	var cover []int
	for _, e := range g.Edges() {
		if !matched[e.U] && !matched[e.V] {
			matched[e.U] = true
			matched[e.V] = true
			cover = append(cover, e.U, e.V)
		}
	}
	sort.Ints(cover)
	return cover
}

// LPRoundingVertexCover solves the fractional relaxation
//
//	minimize sum x_v  subject to  x_u + x_v >= 1 per edge, 0 <= x_v <= 1
//
// and includes every vertex whose relaxed value is at least 0.5. By the
// half-integrality of the relaxation this is a valid cover of size at most
// twice the optimum. If the LP solver fails, the whole vertex set is
// returned as a valid fallback.
func LPRoundingVertexCover(g *Graph) []int {
	n := g.NumVertices()
	if n == 0 {
		return nil
	}
	edges := g.Edges()
	if len(edges) == 0 {
		return nil
	}

	objective := make([]float64, n)
	for i := range objective {
		objective[i] = 1
	}
	ineqs := make([]lp.Inequality, len(edges))
	for i, e := range edges {
		ineqs[i] = lp.Inequality{
			Indices: []int{e.U, e.V},
			Coeffs:  []float64{1, 1},
			Rhs:     1,
		}
	}

	x, err := lp.Minimize(objective, ineqs)
	if err != nil {
		return allVertices(n)
	}

	var cover []int
	for v, val := range x {
		if val >= 0.5 {
			cover = append(cover, v)
		}
	}
	return cover
}
