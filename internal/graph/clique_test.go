package graph

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npbench/npbench/pkg/npbench"
)

func pairwiseAdjacent(g *Graph, clique []int) bool {
	for i := 0; i < len(clique); i++ {
		for j := i + 1; j < len(clique); j++ {
			if !g.HasEdge(clique[i], clique[j]) {
				return false
			}
		}
	}
	return true
}

func TestBruteforceCliqueTriangle(t *testing.T) {
	clique, status := BruteforceClique(context.Background(), triangle())
	assert.Equal(t, npbench.StatusOptimal, status)
	assert.Equal(t, []int{0, 1, 2}, clique)
}

func TestBruteforceCliqueSingleVertexFallback(t *testing.T) {
	// No edges: any single vertex is a maximum clique.
	clique, status := BruteforceClique(context.Background(), New(3))
	assert.Equal(t, npbench.StatusOptimal, status)
	assert.Len(t, clique, 1)
}

func TestBruteforceCliqueEmptyGraph(t *testing.T) {
	clique, status := BruteforceClique(context.Background(), New(0))
	assert.Equal(t, npbench.StatusOptimal, status)
	assert.Empty(t, clique)
}

func TestBruteforceCliqueTimeoutSentinel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	clique, status := BruteforceClique(ctx, triangle())
	assert.Equal(t, npbench.StatusTimeout, status)
	assert.Empty(t, clique)
}

func TestGreedyCliqueTriangle(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, GreedyClique(triangle()))
}

func TestGreedyCliqueIsMaximalClique(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for trial := 0; trial < 20; trial++ {
		g := randomGraph(10, 0.5, rng)
		clique := GreedyClique(g)
		require.True(t, pairwiseAdjacent(g, clique))

		// Maximality: no outside vertex is adjacent to every member.
		in := make([]bool, g.NumVertices())
		for _, v := range clique {
			in[v] = true
		}
		for v := 0; v < g.NumVertices(); v++ {
			if in[v] {
				continue
			}
			adjacentToAll := true
			for _, u := range clique {
				if !g.HasEdge(v, u) {
					adjacentToAll = false
					break
				}
			}
			assert.False(t, adjacentToAll, "vertex %d extends the clique", v)
		}
	}
}

func TestGreedyCliqueNeverExceedsExact(t *testing.T) {
	rng := rand.New(rand.NewSource(33))
	for trial := 0; trial < 15; trial++ {
		g := randomGraph(9, 0.5, rng)
		exact, status := BruteforceClique(context.Background(), g)
		require.Equal(t, npbench.StatusOptimal, status)
		assert.LessOrEqual(t, len(GreedyClique(g)), len(exact))
	}
}

func TestGreedyCliqueEmptyGraph(t *testing.T) {
	assert.Empty(t, GreedyClique(New(0)))
}
