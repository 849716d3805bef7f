package rules

// Point is a single cell on the board. Points are compared by value.
type Point struct {
	X int
	Y int
}

// Equal checks if 2 points are the same x,y coordinate.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Direction is one of the four headings a snake can travel in.
type Direction string

const (
	// DirectionUp moves the head towards the top of the board (y - 1).
	DirectionUp Direction = "up"
	// DirectionDown moves the head towards the bottom of the board (y + 1).
	DirectionDown Direction = "down"
	// DirectionLeft moves the head towards x = 0.
	DirectionLeft Direction = "left"
	// DirectionRight moves the head towards x = width - 1.
	DirectionRight Direction = "right"
)

var opposites = map[Direction]Direction{
	DirectionUp:    DirectionDown,
	DirectionDown:  DirectionUp,
	DirectionLeft:  DirectionRight,
	DirectionRight: DirectionLeft,
}

// Valid reports whether d is one of the four recognized directions. Anything
// else coming from the outside world is ignored by the engine.
func (d Direction) Valid() bool {
	_, ok := opposites[d]
	return ok
}

// Opposite returns the reverse of the direction.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// Opposes reports whether the two directions are reverses of each other. A
// snake is never allowed to turn into its own neck.
func (d Direction) Opposes(other Direction) bool {
	return d.Opposite() == other && d.Valid()
}

// Vector returns the per-tick coordinate delta for the direction. The y axis
// grows downwards, matching the way the board is rendered.
func (d Direction) Vector() (int, int) {
	switch d {
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	}
	return 0, 0
}
