package grid

import "math"

// Point2i is an integer 2D grid coordinate.
type Point2i struct {
	X, Y int
}

// Eq reports componentwise equality.
func (p Point2i) Eq(o Point2i) bool {
	return p.X == o.X && p.Y == o.Y
}

// Add returns the componentwise sum.
func (p Point2i) Add(o Point2i) Point2i {
	return Point2i{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the componentwise difference (p - o).
func (p Point2i) Sub(o Point2i) Point2i {
	return Point2i{X: p.X - o.X, Y: p.Y - o.Y}
}

// Dot returns the integer dot product.
func (p Point2i) Dot(o Point2i) int {
	return p.X*o.X + p.Y*o.Y
}

// Distance returns the Euclidean distance to o.
func (p Point2i) Distance(o Point2i) float64 {
	dx := float64(p.X - o.X)
	dy := float64(p.Y - o.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Neighbors4 returns the 4-connected cardinal neighbors (N, E, S, W).
func (p Point2i) Neighbors4() [4]Point2i {
	return [4]Point2i{
		{X: p.X, Y: p.Y - 1},
		{X: p.X + 1, Y: p.Y},
		{X: p.X, Y: p.Y + 1},
		{X: p.X - 1, Y: p.Y},
	}
}
