package graph

import (
	"context"

	"github.com/npbench/npbench/pkg/npbench"
)

// ColoringResult carries a proper coloring together with how it was
// obtained. FoundOptimal distinguishes a verified chromatic number from the
// greedy fallback produced when the branch-and-bound search timed out.
type ColoringResult struct {
	Colors       []int
	NumColors    int
	FoundOptimal bool
	Status       npbench.Status
}

// BruteforceColoring finds an optimal proper coloring by branch-and-bound
// backtracking over an explicit stack of partial colorings. Vertices are
// ordered by descending degree; at each vertex the candidate colors are
// 0..(max used so far)+1, skipping colors taken by a colored neighbor and
// cutting off any branch that would meet or exceed the best complete
// coloring found. On timeout, the best complete coloring found so far is
// returned with StatusTimeout, or the greedy coloring if none completed.
func BruteforceColoring(ctx context.Context, g *Graph) ColoringResult {
	n := g.NumVertices()
	if n == 0 {
		return ColoringResult{Colors: []int{}, Status: npbench.StatusOptimal, FoundOptimal: true}
	}

	order := g.byDegreeDesc()
	colors := make([]int, n)
	for i := range colors {
		colors[i] = -1
	}

	best := n + 1
	var bestColors []int

	// next[d] is the next candidate color to try for order[d]; maxPrev[d]
	// is the highest color in use among order[0..d-1].
	next := make([]int, n+1)
	maxPrev := make([]int, n+1)
	maxPrev[0] = -1

	depth := 0
	steps := 0
	timedOut := false

	for depth >= 0 {
		if steps&timeoutCheckMask == 0 && ctx.Err() != nil {
			timedOut = true
			break
		}
		steps++

		if depth == n {
			if used := maxPrev[n] + 1; used < best {
				best = used
				bestColors = append([]int(nil), colors...)
			}
			depth--
			continue
		}

		v := order[depth]
		color := nextFeasibleColor(g, colors, v, next[depth], minInt(maxPrev[depth]+1, best-1))
		if color < 0 {
			colors[v] = -1
			depth--
			continue
		}

		colors[v] = color
		next[depth] = color + 1
		next[depth+1] = 0
		maxPrev[depth+1] = maxInt(maxPrev[depth], color)
		depth++
	}

	if bestColors == nil {
		// No complete coloring before the deadline; degrade to greedy
		// rather than return nothing.
		greedy := GreedyColoring(g, OrderNatural)
		return ColoringResult{
			Colors:    greedy,
			NumColors: CountColors(greedy),
			Status:    npbench.StatusTimeout,
		}
	}

	status := npbench.StatusOptimal
	optimal := true
	if timedOut {
		status = npbench.StatusTimeout
		optimal = false
	}
	return ColoringResult{
		Colors:       bestColors,
		NumColors:    best,
		Status:       status,
		FoundOptimal: optimal,
	}
}

// nextFeasibleColor returns the smallest color in [from, limit] not used by
// a colored neighbor of v, or -1 when none exists. The limit already
// accounts for the branch-and-bound cutoff.
func nextFeasibleColor(g *Graph, colors []int, v, from, limit int) int {
	for color := from; color <= limit; color++ {
		if !neighborUses(g, colors, v, color) {
			return color
		}
	}
	return -1
}

func neighborUses(g *Graph, colors []int, v, color int) bool {
	for _, u := range g.Neighbors(v) {
		if colors[u] == color {
			return true
		}
	}
	return false
}

// DSaturColoring colors the maximum-degree vertex first, then repeatedly
// colors the uncolored vertex with the highest saturation degree (distinct
// colors among colored neighbors), ties broken by raw degree, assigning the
// smallest color unused by its neighbors.
func DSaturColoring(g *Graph) []int {
	n := g.NumVertices()
	colors := make([]int, n)
	for i := range colors {
		colors[i] = -1
	}
	if n == 0 {
		return colors
	}

	first := 0
	for v := 1; v < n; v++ {
		if g.Degree(v) > g.Degree(first) {
			first = v
		}
	}
	colors[first] = 0

	for colored := 1; colored < n; colored++ {
		best, bestSat, bestDeg := -1, -1, -1
		for v := 0; v < n; v++ {
			if colors[v] >= 0 {
				continue
			}
			sat := saturation(g, colors, v)
			deg := g.Degree(v)
			if sat > bestSat || (sat == bestSat && deg > bestDeg) {
				best, bestSat, bestDeg = v, sat, deg
			}
		}
		colors[best] = smallestFreeColor(g, colors, best)
	}
	return colors
}

func saturation(g *Graph, colors []int, v int) int {
	seen := make(map[int]bool)
	for _, u := range g.Neighbors(v) {
		if colors[u] >= 0 {
			seen[colors[u]] = true
		}
	}
	return len(seen)
}

func smallestFreeColor(g *Graph, colors []int, v int) int {
	used := make(map[int]bool)
	for _, u := range g.Neighbors(v) {
		if colors[u] >= 0 {
			used[colors[u]] = true
		}
	}
	color := 0
	for used[color] {
		color++
	}
	return color
}

// Order selects the vertex visiting order for GreedyColoring.
type Order int

const (
	// OrderNatural visits vertices in ascending id order.
	OrderNatural Order = iota
	// OrderByDegree visits vertices in descending degree order.
	OrderByDegree
)

// GreedyColoring assigns each vertex, in the configured order, the smallest
// color not used by an already-colored neighbor. It is deterministic: the
// same graph and order always yield the same coloring.
func GreedyColoring(g *Graph, order Order) []int {
	n := g.NumVertices()
	colors := make([]int, n)
	for i := range colors {
		colors[i] = -1
	}

	vertices := allVertices(n)
	if order == OrderByDegree {
		vertices = g.byDegreeDesc()
	}
	for _, v := range vertices {
		colors[v] = smallestFreeColor(g, colors, v)
	}
	return colors
}

// CountColors returns the number of distinct colors in a complete coloring.
func CountColors(colors []int) int {
	max := -1
	for _, c := range colors {
		if c > max {
			max = c
		}
	}
	return max + 1
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
