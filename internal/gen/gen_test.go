package gen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormulaShape(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	f := Formula(10, 40, rng)

	assert.Equal(t, 10, f.NumVars)
	require.Len(t, f.Clauses, 40)
	for _, c := range f.Clauses {
		vars := make(map[int]bool)
		for _, lit := range c {
			require.NotZero(t, lit)
			v := lit
			if v < 0 {
				v = -v
			}
			assert.GreaterOrEqual(t, v, 1)
			assert.LessOrEqual(t, v, 10)
			vars[v] = true
		}
		// Three distinct variables per clause.
		assert.Len(t, vars, 3)
	}
}

func TestFormulaDeterministicPerSeed(t *testing.T) {
	first := Formula(8, 20, rand.New(rand.NewSource(4)))
	second := Formula(8, 20, rand.New(rand.NewSource(4)))
	assert.Equal(t, first, second)
}

func TestGraphSymmetricWithoutSelfLoops(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	g := Graph(12, 0.5, rng)

	for u := 0; u < 12; u++ {
		assert.False(t, g.HasEdge(u, u))
		for v := 0; v < 12; v++ {
			assert.Equal(t, g.HasEdge(u, v), g.HasEdge(v, u))
		}
	}
}

func TestGraphEdgeProbabilityExtremes(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	empty := Graph(10, 0, rng)
	assert.Zero(t, empty.NumEdges())

	full := Graph(10, 1, rng)
	assert.Equal(t, 45, full.NumEdges())
}

func TestSetCoverSizesInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	inst := SetCover(20, 10, 6, rng)

	assert.Len(t, inst.Universe, 20)
	require.Len(t, inst.Sets, 10)
	for _, s := range inst.Sets {
		assert.GreaterOrEqual(t, len(s), 1)
		assert.LessOrEqual(t, len(s), 20)
		seen := make(map[int]bool)
		for _, e := range s {
			assert.GreaterOrEqual(t, e, 0)
			assert.Less(t, e, 20)
			assert.False(t, seen[e], "duplicate element %d", e)
			seen[e] = true
		}
	}
}

func TestNewSuiteShape(t *testing.T) {
	s := NewSuite(1000)
	assert.Len(t, s.SAT, len(satTiers)*instancesPerTier)
	assert.Len(t, s.Graphs, len(graphTiers)*instancesPerTier)
	assert.Len(t, s.SetCover, len(setCoverTiers)*instancesPerTier)

	// Graph instances rebuild into consistent adjacency structures.
	for _, gi := range s.Graphs {
		g := gi.Graph()
		assert.Equal(t, gi.NumVertices, g.NumVertices())
		assert.Equal(t, len(gi.Edges), g.NumEdges())
	}
}

func TestNewSuiteDeterministic(t *testing.T) {
	assert.Equal(t, NewSuite(7), NewSuite(7))
}

func TestSuiteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/datasets.json"
	s := NewSuite(99)
	require.NoError(t, WriteSuite(path, s))

	loaded, err := LoadSuite(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}
