package rules

// Snake is the ordered body of the player snake. The head is Body[0] and the
// tail is the last element. The body never self-overlaps except at the
// instant a terminal collision is detected, after which the frame is final.
type Snake struct {
	Body    []Point
	Heading Direction

	// pendingGrowth is consumed by the next Advance, which then keeps the
	// tail in place for one turn.
	pendingGrowth bool
}

// Head returns the first point in the body.
func (s *Snake) Head() Point {
	return s.Body[0]
}

// Tail returns the last point in the body.
func (s *Snake) Tail() Point {
	return s.Body[len(s.Body)-1]
}

// Occupies reports whether any body segment sits on the given cell.
func (s *Snake) Occupies(p Point) bool {
	for _, b := range s.Body {
		if b.Equal(p) {
			return true
		}
	}
	return false
}

// Grow flags the snake to keep its tail on the next Advance, growing the body
// by one segment.
func (s *Snake) Grow() {
	s.pendingGrowth = true
}

// Advance moves the snake one cell by prepending the new head. Unless a
// growth is pending the tail is dropped, keeping the length unchanged.
func (s *Snake) Advance(next Point) {
	body := make([]Point, 0, len(s.Body)+1)
	body = append(body, next)
	if s.pendingGrowth {
		body = append(body, s.Body...)
		s.pendingGrowth = false
	} else {
		body = append(body, s.Body[:len(s.Body)-1]...)
	}
	s.Body = body
}

// SelfCollides reports whether the head overlaps any other body segment.
// Meant to be called after Advance: the tail cell vacated this turn is
// already gone from the body, so moving onto it is not a collision.
func (s *Snake) SelfCollides() bool {
	head := s.Head()
	for _, b := range s.Body[1:] {
		if b.Equal(head) {
			return true
		}
	}
	return false
}

// clone returns a deep copy of the snake for the next frame.
func (s *Snake) clone() *Snake {
	body := make([]Point, len(s.Body))
	copy(body, s.Body)
	return &Snake{
		Body:          body,
		Heading:       s.Heading,
		pendingGrowth: s.pendingGrowth,
	}
}
