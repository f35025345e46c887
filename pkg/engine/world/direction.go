package world

// Unit headings. Y grows downward, matching terminal rows.
var (
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Point {
	return []Point{Left, Right, Up, Down}
}

// DirectionName returns the string representation of a direction
func DirectionName(d Point) string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "Unknown"
	}
}

// IsDirection returns true if d is one of the four unit headings
func IsDirection(d Point) bool {
	switch d {
	case Left, Right, Up, Down:
		return true
	default:
		return false
	}
}

// Opposite returns the opposite direction
func Opposite(d Point) Point {
	return Point{X: -d.X, Y: -d.Y}
}
