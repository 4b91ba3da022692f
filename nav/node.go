package nav

import "github.com/pthm-cable/formicary/grid"

// node is a single point in the A* search frontier: its position, the
// accumulated cost from the start (g), and the heuristic estimate to the
// goal (h). The search always pops the node with the lowest g+h.
type node struct {
	pos     grid.Point2i
	g, h    float64
	heapIdx int // maintained by container/heap via nodeHeap
}

// f is the node's priority in the open set.
func (n *node) f() float64 {
	return n.g + n.h
}

// heuristic is the Euclidean distance between two points. It is
// admissible for 4-connected movement with unit step cost, so the
// resulting search is optimal.
func heuristic(a, b grid.Point2i) float64 {
	return a.Distance(b)
}

// neighbors4 returns the 4-connected cardinal neighbors of p (N, E, S, W).
func neighbors4(p grid.Point2i) [4]grid.Point2i {
	return p.Neighbors4()
}
