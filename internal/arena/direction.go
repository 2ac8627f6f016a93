package arena

// SquareDirection is one of the four moves accepted by a RectangleArena.
type SquareDirection int

const (
	North SquareDirection = iota
	South
	East
	West
)

// SquareDirections returns every direction a RectangleArena accepts.
func SquareDirections() []SquareDirection {
	return []SquareDirection{North, South, East, West}
}

// String returns the direction name.
func (d SquareDirection) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if d is one of the four square directions.
func (d SquareDirection) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the direction that undoes a move in d.
func (d SquareDirection) Opposite() SquareDirection {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// rowDelta and columnDelta are the offsets of a single step in d.
// Invalid directions do not move.
func (d SquareDirection) rowDelta() int {
	switch d {
	case North:
		return -1
	case South:
		return 1
	default:
		return 0
	}
}

func (d SquareDirection) columnDelta() int {
	switch d {
	case East:
		return -1
	case West:
		return 1
	default:
		return 0
	}
}
