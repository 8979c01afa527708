package gen

import (
	"fmt"
	"math/rand"

	"github.com/npbench/npbench/internal/graph"
	"github.com/npbench/npbench/internal/sat"
	"github.com/npbench/npbench/internal/setcover"
)

// SATInstance is a named 3-SAT benchmark instance.
type SATInstance struct {
	Name    string       `json:"name"`
	Formula *sat.Formula `json:"formula"`
}

// GraphInstance is a named graph benchmark instance. Edges are serialized
// instead of the adjacency structure so datasets stay stable on disk.
type GraphInstance struct {
	Name        string       `json:"name"`
	NumVertices int          `json:"num_vertices"`
	EdgeProb    float64      `json:"edge_prob"`
	Edges       []graph.Edge `json:"edges"`
}

// Graph rebuilds the adjacency structure from the serialized edge list.
func (gi GraphInstance) Graph() *graph.Graph {
	g := graph.New(gi.NumVertices)
	for _, e := range gi.Edges {
		g.AddEdge(e.U, e.V)
	}
	return g
}

// SetCoverInstance is a named set cover benchmark instance.
type SetCoverInstance struct {
	Name     string            `json:"name"`
	Instance setcover.Instance `json:"instance"`
}

// Suite is one full benchmark dataset across all five problems. Vertex
// cover, clique and coloring share the same graphs, as in the original
// study.
type Suite struct {
	SAT      []SATInstance      `json:"three_sat"`
	Graphs   []GraphInstance    `json:"graphs"`
	SetCover []SetCoverInstance `json:"set_cover"`
}

type satTier struct {
	name    string
	vars    int
	clauses int
}

type graphTier struct {
	name     string
	vertices int
	prob     float64
}

type setCoverTier struct {
	name     string
	universe int
	sets     int
	avgSize  int
}

var satTiers = []satTier{
	{"tiny", 5, 10},
	{"small", 7, 18},
	{"medium", 9, 27},
	{"medium_large", 11, 35},
	{"large", 13, 42},
	{"xlarge", 15, 50},
	{"xxlarge", 17, 60},
	{"huge", 20, 80},
}

var graphTiers = []graphTier{
	{"tiny", 6, 0.5},
	{"small", 8, 0.5},
	{"medium", 10, 0.5},
	{"medium_large", 12, 0.45},
	{"large", 14, 0.45},
	{"xlarge", 16, 0.4},
	{"xxlarge", 18, 0.4},
	{"huge", 22, 0.35},
}

var setCoverTiers = []setCoverTier{
	{"tiny", 10, 6, 4},
	{"small", 15, 8, 5},
	{"medium", 20, 10, 6},
	{"medium_large", 25, 12, 7},
	{"large", 30, 14, 8},
	{"xlarge", 35, 16, 9},
	{"xxlarge", 40, 18, 10},
	{"huge", 50, 22, 12},
}

// instancesPerTier matches the original dataset layout: two independently
// seeded instances per size tier.
const instancesPerTier = 2

// NewSuite generates the full benchmark dataset from a seed.
func NewSuite(seed int64) Suite {
	var s Suite
	for _, t := range satTiers {
		for i := 0; i < instancesPerTier; i++ {
			rng := rand.New(rand.NewSource(seed + int64(i)))
			s.SAT = append(s.SAT, SATInstance{
				Name:    fmt.Sprintf("%s_%d", t.name, i+1),
				Formula: Formula(t.vars, t.clauses, rng),
			})
		}
	}
	for _, t := range graphTiers {
		for i := 0; i < instancesPerTier; i++ {
			rng := rand.New(rand.NewSource(seed + 1000 + int64(i)))
			g := Graph(t.vertices, t.prob, rng)
			s.Graphs = append(s.Graphs, GraphInstance{
				Name:        fmt.Sprintf("%s_%d", t.name, i+1),
				NumVertices: t.vertices,
				EdgeProb:    t.prob,
				Edges:       g.Edges(),
			})
		}
	}
	for _, t := range setCoverTiers {
		for i := 0; i < instancesPerTier; i++ {
			rng := rand.New(rand.NewSource(seed + 2000 + int64(i)))
			s.SetCover = append(s.SetCover, SetCoverInstance{
				Name:     fmt.Sprintf("%s_%d", t.name, i+1),
				Instance: SetCover(t.universe, t.sets, t.avgSize, rng),
			})
		}
	}
	return s
}
