package rules

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Tick runs the game one turn forward and returns the new frame. The pending
// direction is the most recent input sampled since the last tick; pass the
// empty string when no key was pressed. Tick is the only state transition in
// the engine: everything the game does happens in here, in order.
func Tick(game *Game, lastFrame *GameFrame, pending Direction) (*GameFrame, error) {
	if lastFrame == nil {
		return nil, fmt.Errorf("rules: invalid state, previous frame is nil")
	}
	if lastFrame.End != nil {
		return nil, fmt.Errorf("rules: game %s already ended on turn %d", game.ID, lastFrame.End.Turn)
	}

	snake := lastFrame.Snake.clone()
	nextFrame := &GameFrame{
		Turn:  lastFrame.Turn + 1,
		Snake: snake,
		Food:  lastFrame.Food,
		Score: lastFrame.Score,
	}

	// 1. apply the sampled input. Reversals into the neck are ignored, as is
	//    anything that is not a direction.
	if pending.Valid() && !pending.Opposes(snake.Heading) {
		snake.Heading = pending
	}

	// 2. work out where the head goes.
	dx, dy := snake.Heading.Vector()
	next := Point{X: snake.Head().X + dx, Y: snake.Head().Y + dy}
	if game.Outside(next) {
		if game.WallMode {
			endGame(game, nextFrame, EndCauseWallCollision)
			return nextFrame, nil
		}
		next = game.Wrap(next)
	}

	// 3. move, growing if the head lands on an apple.
	ate := nextFrame.FoodAt(next)
	if ate {
		snake.Grow()
	}
	snake.Advance(next)

	// 4. collision before respawn: a dead snake eats nothing.
	if snake.SelfCollides() {
		endGame(game, nextFrame, EndCauseSelfCollision)
		return nextFrame, nil
	}

	// 5. replace the eaten apple. No free cell left means the snake won.
	if ate {
		nextFrame.Score++
		nextFrame.Food = removeFood(nextFrame.Food, next)
		log.WithFields(log.Fields{
			"GameID": game.ID,
			"Turn":   nextFrame.Turn,
			"Food":   next,
			"Score":  nextFrame.Score,
		}).Info("snake ate")

		p, ok := unoccupiedPoint(game, nextFrame.Food, snake)
		if !ok {
			endGame(game, nextFrame, EndCauseBoardFull)
			return nextFrame, nil
		}
		nextFrame.Food = append(nextFrame.Food, p)
	}

	log.WithFields(log.Fields{
		"GameID":  game.ID,
		"Turn":    nextFrame.Turn,
		"Head":    snake.Head(),
		"Heading": snake.Heading,
	}).Debug("tick")
	return nextFrame, nil
}

func endGame(game *Game, frame *GameFrame, cause string) {
	frame.End = &End{
		Turn:  frame.Turn,
		Cause: cause,
	}
	game.Status = GameStatusComplete
	log.WithFields(log.Fields{
		"GameID": game.ID,
		"Turn":   frame.Turn,
		"Cause":  cause,
		"Score":  frame.Score,
	}).Info("game over")
}
