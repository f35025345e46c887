package world

// Rand is the subset of a random source the world needs.
// *rand.Rand from golang.org/x/exp/rand and math/rand both satisfy it.
type Rand interface {
	Intn(n int) int
}

// Bounds is the fixed-size playing field, [0,Width) x [0,Height)
type Bounds struct {
	Width  int
	Height int
}

// NewBounds creates bounds with the given dimensions
func NewBounds(width, height int) Bounds {
	return Bounds{Width: width, Height: height}
}

// Area returns the number of cells inside the bounds
func (b Bounds) Area() int {
	return b.Width * b.Height
}

// Contains checks if a point is within grid bounds
func (b Bounds) Contains(p Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// RandomPoint returns an independent, uniformly distributed point inside the bounds
func (b Bounds) RandomPoint(r Rand) Point {
	return Point{X: r.Intn(b.Width), Y: r.Intn(b.Height)}
}

// ForEachPoint calls fn for every cell, row by row
func (b Bounds) ForEachPoint(fn func(p Point)) {
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			fn(Point{X: x, Y: y})
		}
	}
}
