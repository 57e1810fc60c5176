package outline

import (
	"strconv"
	"strings"
)

// Counter produces the dotted section labels. Four independent
// counters, one per depth; advancing a shallower counter zeroes every
// deeper one.
type Counter struct {
	counts [4]int
}

func NewCounter() *Counter {
	return &Counter{}
}

// NumberFor advances the counter at depth (1-based) and returns the
// dotted label with exactly depth components. Depths outside 1..4 are
// clamped.
func (c *Counter) NumberFor(depth int) string {
	if depth < 1 {
		depth = 1
	}
	if depth > len(c.counts) {
		depth = len(c.counts)
	}
	for i := depth; i < len(c.counts); i++ {
		c.counts[i] = 0
	}
	c.counts[depth-1]++

	parts := make([]string, depth)
	for i := 0; i < depth; i++ {
		parts[i] = strconv.Itoa(c.counts[i])
	}
	return strings.Join(parts, ".")
}
