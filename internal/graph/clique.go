package graph

import (
	"context"
	"sort"

	"github.com/npbench/npbench/pkg/npbench"
)

// BruteforceClique enumerates vertex subsets by decreasing size and returns
// the first one whose members are pairwise adjacent, which is maximum by
// construction. On timeout it returns an empty set with StatusTimeout; the
// empty result is a sentinel, not a claim that no clique exists.
func BruteforceClique(ctx context.Context, g *Graph) ([]int, npbench.Status) {
	n := g.NumVertices()

	candidates := 0
	for k := n; k >= 1; k-- {
		combos := newCombinations(n, k)
		for combos.Next() {
			if candidates&timeoutCheckMask == 0 && ctx.Err() != nil {
				return nil, npbench.StatusTimeout
			}
			candidates++
			if isClique(g, combos.Indices) {
				clique := make([]int, k)
				copy(clique, combos.Indices)
				return clique, npbench.StatusOptimal
			}
		}
	}
	return nil, npbench.StatusOptimal
}

func isClique(g *Graph, subset []int) bool {
	for i := 0; i < len(subset); i++ {
		for j := i + 1; j < len(subset); j++ {
			if !g.HasEdge(subset[i], subset[j]) {
				return false
			}
		}
	}
	return true
}

// GreedyClique grows a maximal clique by walking the vertices in descending
// degree order, admitting a vertex when it is adjacent to every current
// member, and then extending from the admitted vertex's neighborhood:
// repeatedly take the remaining candidate with the most connections inside
// the shrinking candidate pool, adjacency-check it against the full clique,
// and on failure discard it from the pool. The adjacency re-check before
// admission is what keeps the clique invariant; candidates picked purely by
// intra-pool degree can be stale.
func GreedyClique(g *Graph) []int {
	n := g.NumVertices()
	if n == 0 {
		return nil
	}

	inClique := make([]bool, n)
	var clique []int

	adjacentToAll := func(v int) bool {
		for _, u := range clique {
			if !g.HasEdge(v, u) {
				return false
			}
		}
		return true
	}

	for _, v := range g.byDegreeDesc() {
		if inClique[v] || !adjacentToAll(v) {
			continue
		}
		inClique[v] = true
		clique = append(clique, v)

		pool := make(map[int]bool)
		for _, u := range g.Neighbors(v) {
			if !inClique[u] {
				pool[u] = true
			}
		}
		for len(pool) > 0 {
			best := bestPoolCandidate(g, pool)
			if adjacentToAll(best) {
				inClique[best] = true
				clique = append(clique, best)
				for u := range pool {
					if !g.HasEdge(best, u) || u == best {
						delete(pool, u)
					}
				}
			} else {
				delete(pool, best)
			}
		}
	}

	sort.Ints(clique)
	return clique
}

// bestPoolCandidate returns the pool member with the most neighbors inside
// the pool, ties broken by smallest id for determinism.
func bestPoolCandidate(g *Graph, pool map[int]bool) int {
	best, bestScore := -1, -1
	for v := range pool {
		score := 0
		for _, u := range g.Neighbors(v) {
			if pool[u] {
				score++
			}
		}
		if score > bestScore || (score == bestScore && v < best) {
			best, bestScore = v, score
		}
	}
	return best
}
