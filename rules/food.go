package rules

import "math/rand"

// unoccupiedPoint uniformly samples a cell that holds neither food nor a body
// segment. Returns false when the board is completely covered, which the tick
// surfaces as a board-full game end rather than retrying forever.
func unoccupiedPoint(game *Game, food []Point, snake *Snake) (Point, bool) {
	open := unoccupiedPoints(game, food, snake)
	if len(open) == 0 {
		return Point{}, false
	}
	return open[rand.Intn(len(open))], true
}

func unoccupiedPoints(game *Game, food []Point, snake *Snake) []Point {
	occupied := make(map[Point]bool, len(food)+len(snake.Body))
	for _, f := range food {
		occupied[f] = true
	}
	for _, b := range snake.Body {
		occupied[b] = true
	}

	open := make([]Point, 0, game.Area()-len(occupied))
	for x := 0; x < game.Width; x++ {
		for y := 0; y < game.Height; y++ {
			p := Point{X: x, Y: y}
			if !occupied[p] {
				open = append(open, p)
			}
		}
	}
	return open
}

// removeFood returns the food set without the eaten cell, never mutating the
// input slice.
func removeFood(food []Point, eaten Point) []Point {
	remaining := make([]Point, 0, len(food))
	for _, f := range food {
		if !f.Equal(eaten) {
			remaining = append(remaining, f)
		}
	}
	return remaining
}
