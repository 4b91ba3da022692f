package nav

import "github.com/pthm-cable/formicary/grid"

// Planner performs grid-aware A* path search from a start point to an
// end point, bounded by an optional radius. It holds no state between
// calls; a single Planner may be shared and reused across ticks.
type Planner struct{}

// NewPlanner returns an A* planner.
func NewPlanner() *Planner {
	return &Planner{}
}

// FindPath searches for a path from start to end using loc for
// obstruction queries. radius caps how far the search may range from
// start; a non-positive radius means no cap. It returns (path, true) on
// success, or (empty path, false) if the frontier is exhausted without
// reaching end, or if reconstruction fails its sanity checks. With no cap
// the search space is unbounded, so an end that cannot be reached keeps
// the search running instead of returning false.
func (p *Planner) FindPath(start, end grid.Point2i, loc Locator, radius float64) (*grid.Path, bool) {
	os := newOpenSet()
	am := newAncestorMap()

	am.entries[start] = ancestorEntry{hasParent: false}
	os.push(&node{pos: start, g: 0, h: heuristic(start, end)})

	for {
		cur, ok := os.pickBest(true)
		if !ok {
			return grid.NewPath(), false
		}

		if cur.pos.Eq(end) {
			return reconstructAndValidate(am, start, end, radius)
		}

		for _, nb := range neighbors4(cur.pos) {
			if !nb.Eq(end) && loc.Obstructed(nb, false) {
				continue
			}
			if radius > 0 && start.Distance(nb) >= radius {
				continue
			}

			child := &node{
				pos: nb,
				g:   cur.g + cur.pos.Distance(nb),
				h:   heuristic(nb, end),
			}
			am.explore(os, child, cur.pos, true)
		}
	}
}

// reconstructAndValidate walks the ancestor map from end back to start
// and checks the two sanity conditions the spec requires: the path must
// begin at start, and no point may fall outside radius of start.
func reconstructAndValidate(am *ancestorMap, start, end grid.Point2i, radius float64) (*grid.Path, bool) {
	pts := am.reconstruct(end)
	if len(pts) == 0 || !pts[0].Eq(start) {
		return grid.NewPath(), false
	}
	if radius > 0 {
		for _, pt := range pts {
			if start.Distance(pt) > radius {
				return grid.NewPath(), false
			}
		}
	}

	path := grid.NewPath()
	for _, pt := range pts {
		path.Add(pt, false)
	}
	return path, true
}
