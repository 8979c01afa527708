// Package setcover implements the minimum set cover portion of the
// algorithm suite: exact bruteforce over set combinations and the classical
// greedy ln(n)+1 approximation.
package setcover

import (
	"context"

	"github.com/npbench/npbench/pkg/npbench"
)

// Instance is a set cover problem: a universe of element ids and an ordered
// family of subsets of that universe.
type Instance struct {
	Universe []int   `json:"universe"`
	Sets     [][]int `json:"sets"`
}

// Result is the outcome of one set cover solver run. Selected holds indices
// into Instance.Sets in selection order; Covered counts universe elements
// covered by the selection.
type Result struct {
	Selected []int
	Covered  int
	Status   npbench.Status
}

const timeoutCheckMask = 1023

// Bruteforce enumerates combinations of set indices by increasing size and
// returns the first combination whose union contains the universe, which is
// minimum by construction. It reports StatusInfeasible when no combination
// covers the universe and StatusTimeout when ctx expires first. An empty
// universe is covered by the empty selection.
func Bruteforce(ctx context.Context, inst Instance) Result {
	if len(inst.Universe) == 0 {
		return Result{Selected: []int{}, Status: npbench.StatusOptimal}
	}

	m := len(inst.Sets)
	universe := len(inst.Universe)
	elemIndex := indexElements(inst.Universe)

	candidates := 0
	for k := 1; k <= m; k++ {
		combos := newCombinations(m, k)
		for combos.Next() {
			if candidates&timeoutCheckMask == 0 && ctx.Err() != nil {
				return Result{Status: npbench.StatusTimeout}
			}
			candidates++
			if covered := unionSize(inst.Sets, combos.Indices, elemIndex, universe); covered == universe {
				selected := make([]int, k)
				copy(selected, combos.Indices)
				return Result{Selected: selected, Covered: universe, Status: npbench.StatusOptimal}
			}
		}
	}
	return Result{Status: npbench.StatusInfeasible}
}

// Greedy repeatedly selects the unselected set covering the most currently
// uncovered elements, realizing the H(n) <= ln(n)+1 approximation. It stops
// when the universe is covered (StatusComplete), when no remaining set makes
// progress (StatusPartial), or when ctx expires mid-run (StatusTimeout, with
// the selection made so far). Deterministic: ties keep the lowest set index.
func Greedy(ctx context.Context, inst Instance) Result {
	elemIndex := indexElements(inst.Universe)
	uncovered := make([]bool, len(inst.Universe))
	remaining := len(inst.Universe)
	for i := range uncovered {
		uncovered[i] = true
	}

	taken := make([]bool, len(inst.Sets))
	selected := []int{}

	for remaining > 0 {
		if ctx.Err() != nil {
			return Result{
				Selected: selected,
				Covered:  len(inst.Universe) - remaining,
				Status:   npbench.StatusTimeout,
			}
		}

		bestIdx, bestGain := -1, 0
		for idx, s := range inst.Sets {
			if taken[idx] {
				continue
			}
			gain := 0
			for _, e := range s {
				if pos, ok := elemIndex[e]; ok && uncovered[pos] {
					gain++
				}
			}
			if gain > bestGain {
				bestIdx, bestGain = idx, gain
			}
		}
		if bestIdx < 0 {
			break
		}

		taken[bestIdx] = true
		selected = append(selected, bestIdx)
		for _, e := range inst.Sets[bestIdx] {
			if pos, ok := elemIndex[e]; ok && uncovered[pos] {
				uncovered[pos] = false
				remaining--
			}
		}
	}

	status := npbench.StatusComplete
	if remaining > 0 {
		status = npbench.StatusPartial
	}
	return Result{
		Selected: selected,
		Covered:  len(inst.Universe) - remaining,
		Status:   status,
	}
}

func indexElements(universe []int) map[int]int {
	idx := make(map[int]int, len(universe))
	for i, e := range universe {
		idx[e] = i
	}
	return idx
}

func unionSize(sets [][]int, combo []int, elemIndex map[int]int, universe int) int {
	covered := make([]bool, universe)
	count := 0
	for _, si := range combo {
		for _, e := range sets[si] {
			if pos, ok := elemIndex[e]; ok && !covered[pos] {
				covered[pos] = true
				count++
			}
		}
	}
	return count
}

// combinations enumerates k-subsets of {0..m-1} lexicographically; same
// shape as the graph package's iterator so timeout checks stay uniform.
type combinations struct {
	n, k    int
	Indices []int
	started bool
}

func newCombinations(n, k int) *combinations {
	return &combinations{n: n, k: k, Indices: make([]int, k)}
}

func (c *combinations) Next() bool {
	if !c.started {
		if c.k > c.n {
			return false
		}
		for i := range c.Indices {
			c.Indices[i] = i
		}
		c.started = true
		return true
	}
	i := c.k - 1
	for i >= 0 && c.Indices[i] == c.n-c.k+i {
		i--
	}
	if i < 0 {
		return false
	}
	c.Indices[i]++
	for j := i + 1; j < c.k; j++ {
		c.Indices[j] = c.Indices[j-1] + 1
	}
	return true
}
