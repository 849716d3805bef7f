package rules

// Wrap applies toroidal wraparound to a point, independently on both axes.
// Pure arithmetic over the fixed board dimensions.
func (g *Game) Wrap(p Point) Point {
	return Point{
		X: mod(p.X, g.Width),
		Y: mod(p.Y, g.Height),
	}
}

// Outside reports whether a point lies off the board. Only consulted in wall
// mode; with wraparound on, no reachable point is ever outside.
func (g *Game) Outside(p Point) bool {
	return p.X < 0 || p.X >= g.Width || p.Y < 0 || p.Y >= g.Height
}

// Area returns the total cell count of the board.
func (g *Game) Area() int {
	return g.Width * g.Height
}

// mod is the euclidean remainder, so stepping left from x = 0 lands on
// width - 1 rather than -1.
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
