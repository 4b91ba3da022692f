package nav

import (
	"testing"

	"github.com/pthm-cable/formicary/grid"
)

// fakeLocator is a minimal Locator backed by a set of obstructed cells,
// enough to drive the planner in isolation from the sim package.
type fakeLocator struct {
	obstructed map[grid.Point2i]bool
}

func newFakeLocator() *fakeLocator {
	return &fakeLocator{obstructed: make(map[grid.Point2i]bool)}
}

func (f *fakeLocator) block(p grid.Point2i) {
	f.obstructed[p] = true
}

func (f *fakeLocator) Obstructed(p grid.Point2i, includeNonSolid bool) bool {
	return f.obstructed[p]
}

func (f *fakeLocator) Visible(center grid.Point2i, radius float64) []int {
	return nil
}

func (f *fakeLocator) Get(index int) (grid.ElementView, bool) {
	return grid.ElementView{}, false
}

func TestFindPathStraightLine(t *testing.T) {
	loc := newFakeLocator()
	p := NewPlanner()

	path, ok := p.FindPath(grid.Point2i{X: 0, Y: 0}, grid.Point2i{X: 3, Y: 0}, loc, -1)
	if !ok {
		t.Fatal("expected a path")
	}
	if path.Len() != 4 {
		t.Fatalf("expected 4 points, got %d", path.Len())
	}
	first, _ := path.Begin()
	last, _ := path.End()
	if !first.Eq(grid.Point2i{X: 0, Y: 0}) {
		t.Errorf("expected path to start at (0,0), got %v", first)
	}
	if !last.Eq(grid.Point2i{X: 3, Y: 0}) {
		t.Errorf("expected path to end at (3,0), got %v", last)
	}
}

func TestFindPathAroundObstacle(t *testing.T) {
	loc := newFakeLocator()
	// Wall across y=0..4 at x=2, leaving a gap at y=5.
	for y := 0; y < 5; y++ {
		loc.block(grid.Point2i{X: 2, Y: y})
	}

	p := NewPlanner()
	path, ok := p.FindPath(grid.Point2i{X: 0, Y: 2}, grid.Point2i{X: 4, Y: 2}, loc, -1)
	if !ok {
		t.Fatal("expected a path around the wall")
	}
	for _, pt := range path.Points() {
		if loc.obstructed[pt] {
			t.Errorf("path point %v falls inside the wall", pt)
		}
	}
}

func TestFindPathNoPath(t *testing.T) {
	loc := newFakeLocator()
	// Fully enclose the goal. The radius cap keeps the frontier finite so
	// the search can exhaust it; without a cap the grid is unbounded.
	goal := grid.Point2i{X: 5, Y: 5}
	for _, n := range goal.Neighbors4() {
		loc.block(n)
	}

	p := NewPlanner()
	_, ok := p.FindPath(grid.Point2i{X: 0, Y: 0}, goal, loc, 20)
	if ok {
		t.Fatal("expected no path to a fully enclosed goal")
	}
}

func TestFindPathRespectsRadius(t *testing.T) {
	loc := newFakeLocator()
	p := NewPlanner()

	_, ok := p.FindPath(grid.Point2i{X: 0, Y: 0}, grid.Point2i{X: 10, Y: 0}, loc, 3)
	if ok {
		t.Fatal("expected the radius cap to prevent reaching a distant goal")
	}
}
