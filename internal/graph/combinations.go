package graph

// combinations enumerates the k-subsets of {0..n-1} in lexicographic order
// without recursion, so enumeration loops can interleave timeout checks
// uniformly. After each successful Next the current subset is in Indices;
// the slice is reused across calls.
type combinations struct {
	n, k    int
	Indices []int
	started bool
}

func newCombinations(n, k int) *combinations {
	return &combinations{n: n, k: k, Indices: make([]int, k)}
}

// Next advances to the next subset, returning false once all C(n,k)
// subsets have been produced.
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
	// Find the rightmost index that can still advance.
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
