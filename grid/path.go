package grid

import "errors"

// ErrEmptyPath is returned by Path.Advance when the path has no points left.
var ErrEmptyPath = errors.New("grid: advance on empty path")

// Path is an ordered, finite sequence of grid points.
type Path struct {
	points []Point2i
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// Len returns the number of points remaining in the path.
func (p *Path) Len() int {
	return len(p.points)
}

// Empty reports whether the path has no points.
func (p *Path) Empty() bool {
	return len(p.points) == 0
}

// Clear removes all points.
func (p *Path) Clear() {
	p.points = p.points[:0]
}

// Begin returns the first point without removing it.
func (p *Path) Begin() (Point2i, bool) {
	if p.Empty() {
		return Point2i{}, false
	}
	return p.points[0], true
}

// End returns the last point without removing it.
func (p *Path) End() (Point2i, bool) {
	if p.Empty() {
		return Point2i{}, false
	}
	return p.points[len(p.points)-1], true
}

// At returns the point at index i.
func (p *Path) At(i int) (Point2i, bool) {
	if i < 0 || i >= len(p.points) {
		return Point2i{}, false
	}
	return p.points[i], true
}

// Points returns the path's points in order. The returned slice must not
// be mutated by the caller.
func (p *Path) Points() []Point2i {
	return p.points
}

// Reverse flips the order of the path in place.
func (p *Path) Reverse() {
	for i, j := 0, len(p.points)-1; i < j; i, j = i+1, j-1 {
		p.points[i], p.points[j] = p.points[j], p.points[i]
	}
}

// Advance pops and returns the head of the path. It errors if the path is
// empty; after a successful call, Begin() returns the next point.
func (p *Path) Advance() (Point2i, error) {
	if p.Empty() {
		return Point2i{}, ErrEmptyPath
	}
	head := p.points[0]
	p.points = p.points[1:]
	return head, nil
}

// Add appends a point. Consecutive duplicates are suppressed unless
// allowDuplicateConsecutive is true.
func (p *Path) Add(pt Point2i, allowDuplicateConsecutive bool) {
	if !allowDuplicateConsecutive && len(p.points) > 0 {
		if last := p.points[len(p.points)-1]; last.Eq(pt) {
			return
		}
	}
	p.points = append(p.points, pt)
}
