package searcher

import "fmt"

// Metrics counts the work done by one search call.
type Metrics struct {
	Nodes  int // Leaf states evaluated
	Pruned int // Subtrees cut off by alpha-beta bounds
}

func (m Metrics) String() string {
	return fmt.Sprintf("nodes=%d pruned=%d", m.Nodes, m.Pruned)
}
