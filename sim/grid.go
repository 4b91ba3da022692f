package sim

import (
	"fmt"

	"github.com/pthm-cable/formicary/grid"
)

// Grid is the flat, insertion-ordered store of every live Element. It
// implements nav.Locator, so the A* planner and every Brain query it
// through the same narrow, read-only surface.
type Grid struct {
	elements []*Element
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{}
}

// Size returns the number of elements currently stored, live or pending
// deletion.
func (g *Grid) Size() int {
	return len(g.elements)
}

// At returns the element at index. A caller asking for an index outside
// the current size has already broken the one-tick-lifetime contract
// Influence indices rely on; that is a programming error, so At panics
// rather than returning a zero value that would mask it.
func (g *Grid) At(index int) *Element {
	if index < 0 || index >= len(g.elements) {
		panic(fmt.Sprintf("sim: grid index %d out of range [0,%d)", index, len(g.elements)))
	}
	return g.elements[index]
}

// AtCell returns the indices of every element occupying (x, y). When
// includeNonSolid is false, only solid elements (Colony, Food, Obstacle)
// are returned.
func (g *Grid) AtCell(x, y int, includeNonSolid bool) []int {
	var out []int
	for i, el := range g.elements {
		if el.Deleted || el.Pos.X != x || el.Pos.Y != y {
			continue
		}
		if !includeNonSolid && !el.Tile.Solid() {
			continue
		}
		out = append(out, i)
	}
	return out
}

// Obstructed reports whether p is occupied, per the Locator contract.
func (g *Grid) Obstructed(p grid.Point2i, includeNonSolid bool) bool {
	return len(g.AtCell(p.X, p.Y, includeNonSolid)) > 0
}

// Visible returns indices of elements within strict distance radius of
// center.
func (g *Grid) Visible(center grid.Point2i, radius float64) []int {
	var out []int
	for i, el := range g.elements {
		if el.Deleted {
			continue
		}
		if center.Distance(el.Pos) < radius {
			out = append(out, i)
		}
	}
	return out
}

// Get implements the Locator read-only element view.
func (g *Grid) Get(index int) (grid.ElementView, bool) {
	if index < 0 || index >= len(g.elements) || g.elements[index].Deleted {
		return grid.ElementView{}, false
	}
	return g.elements[index].View(), true
}

// Spawn inserts el, unless it is absorbed into an existing Pheromon on
// the same cell with matching scent, or rejected because a solid
// element already occupies the cell.
func (g *Grid) Spawn(el *Element) {
	if el.Tile == grid.TilePheromon {
		if pb, ok := el.Brain.(*PheromonBrain); ok {
			for _, existing := range g.elements {
				if existing.Deleted || existing.Tile != grid.TilePheromon || !existing.Pos.Eq(el.Pos) {
					continue
				}
				eb, ok := existing.Brain.(*PheromonBrain)
				if !ok || eb.scent != pb.scent {
					continue
				}
				eb.Merge(pb)
				return
			}
		}
	}

	if el.Tile.Solid() && len(g.AtCell(el.Pos.X, el.Pos.Y, true)) > 0 {
		return
	}

	g.elements = append(g.elements, el)
}

// Update prunes every element marked Deleted, preserving the relative
// order of survivors.
func (g *Grid) Update() {
	survivors := g.elements[:0]
	for _, el := range g.elements {
		if !el.Deleted {
			survivors = append(survivors, el)
		}
	}
	g.elements = survivors
}

// Elements returns the live backing slice in insertion order. Callers
// must not mutate it outside of World's own tick machinery.
func (g *Grid) Elements() []*Element {
	return g.elements
}

// Count returns how many elements currently carry the given tile.
func (g *Grid) Count(tile grid.Tile) int {
	n := 0
	for _, el := range g.elements {
		if !el.Deleted && el.Tile == tile {
			n++
		}
	}
	return n
}
