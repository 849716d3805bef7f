// Package bot is a small autopilot used by the headless run command. It
// stands in for the keyboard: one direction per tick, fed into the runner's
// mailbox like any other input source.
package bot

import (
	"github.com/serpentlabs/serpent/rules"
)

// Next picks the direction for the coming tick: the safe move that brings the
// head closest to the nearest apple, falling back to any safe move, falling
// back to the current heading when the snake is boxed in anyway.
func Next(game *rules.Game, frame *rules.GameFrame) rules.Direction {
	snake := frame.Snake
	head := snake.Head()

	target, hasTarget := nearestFood(game, frame)

	best := rules.Direction("")
	bestDist := -1
	for _, d := range []rules.Direction{rules.DirectionUp, rules.DirectionDown, rules.DirectionLeft, rules.DirectionRight} {
		if d.Opposes(snake.Heading) {
			continue
		}
		dx, dy := d.Vector()
		next := rules.Point{X: head.X + dx, Y: head.Y + dy}
		if game.Outside(next) {
			if game.WallMode {
				continue
			}
			next = game.Wrap(next)
		}
		if blocked(snake, next) {
			continue
		}
		if !hasTarget {
			return d
		}
		dist := torusDistance(game, next, target)
		if best == "" || dist < bestDist {
			best = d
			bestDist = dist
		}
	}
	if best == "" {
		// every move loses; keep going straight and take the collision
		return snake.Heading
	}
	return best
}

func nearestFood(game *rules.Game, frame *rules.GameFrame) (rules.Point, bool) {
	head := frame.Snake.Head()
	var target rules.Point
	bestDist := -1
	for _, f := range frame.Food {
		d := torusDistance(game, head, f)
		if bestDist < 0 || d < bestDist {
			target = f
			bestDist = d
		}
	}
	return target, bestDist >= 0
}

// blocked reports whether moving onto the cell collides with the body. The
// tail cell is exempt: it moves out of the way on the same tick, unless the
// move also eats, which the lookahead can't see. That rare case costs the
// game, which is fine for an autopilot.
func blocked(snake *rules.Snake, next rules.Point) bool {
	for _, b := range snake.Body[:len(snake.Body)-1] {
		if b.Equal(next) {
			return true
		}
	}
	return false
}

// torusDistance is the manhattan distance on the wrapped board; on a wall
// mode board it degrades to plain manhattan distance.
func torusDistance(game *rules.Game, a, b rules.Point) int {
	return axisDistance(a.X, b.X, game.Width, game.WallMode) +
		axisDistance(a.Y, b.Y, game.Height, game.WallMode)
}

func axisDistance(a, b, size int, walls bool) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	if !walls && size-d < d {
		d = size - d
	}
	return d
}
