package board

// Direction represents a move direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every valid direction.
var Directions = []Direction{Up, Down, Left, Right}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// plan maps a direction onto the row primitive: which bias to use and
// whether the grid must be transposed first so columns become rows.
func (d Direction) plan() (bias Bias, transposed bool) {
	switch d {
	case Up:
		return BiasLeft, true
	case Down:
		return BiasRight, true
	case Right:
		return BiasRight, false
	default:
		return BiasLeft, false
	}
}
