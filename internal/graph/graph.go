// Package graph implements the graph portion of the algorithm suite:
// minimum vertex cover (bruteforce, maximal matching, LP rounding), maximum
// clique (bruteforce, greedy), and graph coloring (branch-and-bound, DSatur,
// greedy).
package graph

import "sort"

// Graph is an undirected simple graph over the dense vertex ids 0..n-1.
// Adjacency is kept both as a flat matrix, for O(1) edge probes during
// subset verification, and as neighbor lists for edge scans.
type Graph struct {
	n      int
	matrix []bool
	adj    [][]int
}

// Edge is an undirected edge with U < V.
type Edge struct {
	U int `json:"u"`
	V int `json:"v"`
}

// New returns an empty graph on n vertices.
func New(n int) *Graph {
	return &Graph{
		n:      n,
		matrix: make([]bool, n*n),
		adj:    make([][]int, n),
	}
}

// AddEdge inserts the undirected edge {u, v}. Self-loops and duplicate
// insertions are ignored.
func (g *Graph) AddEdge(u, v int) {
	if u == v || g.matrix[u*g.n+v] {
		return
	}
	g.matrix[u*g.n+v] = true
	g.matrix[v*g.n+u] = true
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
}

// HasEdge reports whether {u, v} is an edge.
func (g *Graph) HasEdge(u, v int) bool {
	return g.matrix[u*g.n+v]
}

// NumVertices returns the vertex count.
func (g *Graph) NumVertices() int {
	return g.n
}

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v int) int {
	return len(g.adj[v])
}

// Neighbors returns v's neighbor list. The slice is owned by the graph and
// must not be mutated.
func (g *Graph) Neighbors(v int) []int {
	return g.adj[v]
}

// Edges returns every edge once, with U < V, ordered by (U, V).
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for u := 0; u < g.n; u++ {
		for _, v := range g.adj[u] {
			if u < v {
				edges = append(edges, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})
	return edges
}

// NumEdges returns the edge count.
func (g *Graph) NumEdges() int {
	total := 0
	for _, nbrs := range g.adj {
		total += len(nbrs)
	}
	return total / 2
}

// byDegreeDesc returns the vertex ids ordered by descending degree, ties
// broken by ascending id.
func (g *Graph) byDegreeDesc() []int {
	order := make([]int, g.n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return g.Degree(order[i]) > g.Degree(order[j])
	})
	return order
}
