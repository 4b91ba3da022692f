package nav

import (
	"container/heap"

	"github.com/pthm-cable/formicary/grid"
)

// nodeHeap implements heap.Interface, keyed by node.f(), giving the open
// set its pickBest(pop) operation as a binary heap (the standard
// equivalent of the source's sort-on-demand open set).
type nodeHeap []*node

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].f() < h[j].f() }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].heapIdx = i; h[j].heapIdx = j }
func (h *nodeHeap) Push(x interface{}) {
	n := x.(*node)
	n.heapIdx = len(*h)
	*h = append(*h, n)
}
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.heapIdx = -1
	*h = old[:n-1]
	return item
}

// openSet is the A* frontier: a priority queue of nodes to examine.
type openSet struct {
	heap nodeHeap
}

func newOpenSet() *openSet {
	os := &openSet{}
	heap.Init(&os.heap)
	return os
}

func (os *openSet) push(n *node) {
	heap.Push(&os.heap, n)
}

// pickBest returns the node with minimum g+h. If pop is true, it is
// removed from the set; ties break arbitrarily but deterministically:
// container/heap resolves equal keys the same way for the same sequence
// of pushes and pops, though not by insertion order.
func (os *openSet) pickBest(pop bool) (*node, bool) {
	if os.heap.Len() == 0 {
		return nil, false
	}
	if pop {
		return heap.Pop(&os.heap).(*node), true
	}
	return os.heap[0], true
}

func (os *openSet) empty() bool {
	return os.heap.Len() == 0
}

// ancestorEntry records, for a given child position, the parent it was
// reached from and the cumulative cost of that path.
type ancestorEntry struct {
	parent    grid.Point2i
	hasParent bool
	cost      float64
}

// ancestorMap maps a position to its best-known ancestor and cost, used
// both to dedupe frontier expansion and to reconstruct the final path.
type ancestorMap struct {
	entries map[grid.Point2i]ancestorEntry
}

func newAncestorMap() *ancestorMap {
	return &ancestorMap{entries: make(map[grid.Point2i]ancestorEntry)}
}

// explore records that child can be reached from parent with the given
// cumulative cost, pushing child onto the open set if it hasn't been seen
// before, or replacing the recorded ancestor if this path beats the
// stored cost. The open set may end up holding a stale duplicate of
// child in the latter case; that is fine, since the ancestor map is
// authoritative for reconstruction.
func (a *ancestorMap) explore(os *openSet, child *node, parent grid.Point2i, hasParent bool) {
	existing, seen := a.entries[child.pos]
	if !seen {
		a.entries[child.pos] = ancestorEntry{parent: parent, hasParent: hasParent, cost: child.g}
		os.push(child)
		return
	}
	if child.g < existing.cost {
		a.entries[child.pos] = ancestorEntry{parent: parent, hasParent: hasParent, cost: child.g}
		os.push(child)
	}
}

// reconstruct walks parent links from goal back to a position with no
// recorded parent, then reverses the result so it begins at the search
// root.
func (a *ancestorMap) reconstruct(goal grid.Point2i) []grid.Point2i {
	var rev []grid.Point2i
	cur := goal
	for {
		rev = append(rev, cur)
		entry, ok := a.entries[cur]
		if !ok || !entry.hasParent {
			break
		}
		cur = entry.parent
	}
	out := make([]grid.Point2i, len(rev))
	for i, p := range rev {
		out[len(rev)-1-i] = p
	}
	return out
}
