package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// triangle is the K3 scenario used throughout: cover size 2, clique size 3,
// chromatic number 3.
func triangle() *Graph {
	g := New(3)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(1, 2)
	return g
}

func TestGraphSymmetry(t *testing.T) {
	g := New(4)
	g.AddEdge(0, 1)
	g.AddEdge(2, 3)
	g.AddEdge(1, 3)

	for u := 0; u < 4; u++ {
		for v := 0; v < 4; v++ {
			assert.Equal(t, g.HasEdge(u, v), g.HasEdge(v, u), "edge (%d,%d)", u, v)
		}
	}
	assert.False(t, g.HasEdge(0, 0))
}

func TestGraphIgnoresSelfLoopsAndDuplicates(t *testing.T) {
	g := New(2)
	g.AddEdge(0, 0)
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)
	g.AddEdge(0, 1)

	assert.Equal(t, 1, g.NumEdges())
	assert.Equal(t, 1, g.Degree(0))
	assert.Equal(t, 1, g.Degree(1))
}

func TestGraphEdgesOrdered(t *testing.T) {
	g := New(4)
	g.AddEdge(3, 1)
	g.AddEdge(2, 0)
	g.AddEdge(1, 0)

	assert.Equal(t, []Edge{{0, 1}, {0, 2}, {1, 3}}, g.Edges())
}

func TestCombinationsEnumeratesAllSubsets(t *testing.T) {
	combos := newCombinations(4, 2)
	var seen [][]int
	for combos.Next() {
		seen = append(seen, append([]int(nil), combos.Indices...))
	}
	assert.Equal(t, [][]int{
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
	}, seen)
}

func TestCombinationsEmptySubset(t *testing.T) {
	combos := newCombinations(3, 0)
	assert.True(t, combos.Next())
	assert.Empty(t, combos.Indices)
	assert.False(t, combos.Next())
}

func TestCombinationsOversizedSubset(t *testing.T) {
	combos := newCombinations(2, 3)
	assert.False(t, combos.Next())
}
