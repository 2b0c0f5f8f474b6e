package game

// candidates is the set of positions not yet eliminated in a game
type candidates struct {
	positions map[int]struct{}
}

func newCandidates(n int) *candidates {
	c := &candidates{positions: make(map[int]struct{}, n)}
	for i := 0; i < n; i++ {
		c.positions[i] = struct{}{}
	}
	return c
}

// Eliminate removes pos. It reports whether pos was still a candidate.
func (c *candidates) Eliminate(pos int) bool {
	if _, ok := c.positions[pos]; !ok {
		return false
	}
	delete(c.positions, pos)
	return true
}

func (c *candidates) Len() int {
	return len(c.positions)
}
