// Package physics provides grid movement and same-cell collision lookup.
package physics

// Direction is one of the four grid directions a ship can move in.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = [...]string{"up", "down", "left", "right"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}

// Delta returns the one-cell offset for the direction.
// Row 0 is the top of the grid, so Up decreases y.
// ok is false for values outside the four known directions.
func (d Direction) Delta() (dx, dy int, ok bool) {
	switch d {
	case Up:
		return 0, -1, true
	case Down:
		return 0, 1, true
	case Left:
		return -1, 0, true
	case Right:
		return 1, 0, true
	default:
		return 0, 0, false
	}
}
