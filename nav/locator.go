// Package nav implements grid-aware A* path planning: the search node and
// neighbor generator, the open-set/ancestor frontier, and the planner
// itself. It depends only on grid for coordinates and element views, so
// it has no knowledge of the simulation's Brain or World types.
package nav

import "github.com/pthm-cable/formicary/grid"

// Locator exposes the obstruction and visibility queries a Brain or the
// A* planner need, without granting write access to the elements behind
// them. A Brain must not retain a handle obtained through a Locator past
// the tick that produced it.
type Locator interface {
	// Obstructed reports whether any element occupies p. When
	// includeNonSolid is false, only solid elements (Colony, Food,
	// Obstacle) count.
	Obstructed(p grid.Point2i, includeNonSolid bool) bool

	// Visible returns the indices of elements within strict Euclidean
	// distance radius of center.
	Visible(center grid.Point2i, radius float64) []int

	// Get returns a read-only view of the element at index, or false if
	// index is out of range.
	Get(index int) (grid.ElementView, bool)
}
