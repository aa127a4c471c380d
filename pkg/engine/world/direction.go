package world

// Direction represents one of the four grid headings
type Direction int

// Direction constants
const (
	Up Direction = iota
	Down
	Left
	Right
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the four headings
func (d Direction) IsValid() bool {
	return d >= Up && d <= Right
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// IsOpposite reports whether other points exactly against d
func (d Direction) IsOpposite(other Direction) bool {
	return d.IsValid() && d.Opposite() == other
}

// Delta returns the x and y offsets for one step in this direction.
// Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}
