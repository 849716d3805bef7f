// Package runner drives a game clock. It is the only mutator of game state:
// input and rendering hang off it through a single-slot direction mailbox and
// a read-only frame handler, so the simulation rate stays decoupled from both.
package runner

import (
	"context"
	"sync"
	"time"

	"github.com/serpentlabs/serpent/rules"
	"github.com/serpentlabs/serpent/store"
	log "github.com/sirupsen/logrus"
)

// FrameHandler observes the post-tick state. It runs on the tick goroutine,
// must treat the frame as read-only and should return quickly.
type FrameHandler func(game *rules.Game, frame *rules.GameFrame)

// Runner ticks one game from its first frame to its end.
type Runner struct {
	Store store.Store
	// FrameHandler, when set, is called once per frame including frame zero.
	FrameHandler FrameHandler

	mu      sync.Mutex
	pending rules.Direction
}

// SetDirection records the most recent requested direction. Safe to call from
// any goroutine at any rate; only the latest fully written value is seen by
// the next tick. Reversals and junk are filtered by the tick itself.
func (r *Runner) SetDirection(d rules.Direction) {
	r.mu.Lock()
	r.pending = d
	r.mu.Unlock()
}

// takeDirection drains the mailbox, once per tick.
func (r *Runner) takeDirection() rules.Direction {
	r.mu.Lock()
	d := r.pending
	r.pending = ""
	r.mu.Unlock()
	return d
}

// Play runs the game to completion and returns the final frame. The game and
// its starting frames must already be in the store. Cancelling the context
// stops the clock between ticks; nothing needs unwinding since a tick is
// atomic.
func (r *Runner) Play(ctx context.Context, game *rules.Game, frames []*rules.GameFrame) (*rules.GameFrame, error) {
	if err := r.Store.SetGameStatus(ctx, game.ID, rules.GameStatusRunning); err != nil {
		return nil, err
	}
	game.Status = rules.GameStatusRunning

	last := frames[len(frames)-1]
	if r.FrameHandler != nil {
		r.FrameHandler(game, last)
	}

	log.WithFields(log.Fields{
		"GameID":       game.ID,
		"TickInterval": game.TickInterval,
	}).Info("game started")

	for {
		select {
		case <-ctx.Done():
			return last, ctx.Err()
		default:
		}

		start := time.Now()

		next, err := rules.Tick(game, last, r.takeDirection())
		if err != nil {
			return last, err
		}
		if err := r.Store.PushGameFrame(ctx, game.ID, next); err != nil {
			return last, err
		}
		if r.FrameHandler != nil {
			r.FrameHandler(game, next)
		}
		last = next

		if next.End != nil {
			if err := r.Store.SetGameStatus(ctx, game.ID, rules.GameStatusComplete); err != nil {
				return last, err
			}
			log.WithFields(log.Fields{
				"GameID": game.ID,
				"Turn":   next.Turn,
				"Cause":  next.End.Cause,
				"Score":  next.Score,
			}).Info("game finished")
			return last, nil
		}

		tickDelay := time.Duration(game.TickInterval) * time.Millisecond
		remainingDelay := tickDelay - time.Since(start)
		if remainingDelay > 0 {
			select {
			case <-time.After(remainingDelay):
			case <-ctx.Done():
				return last, ctx.Err()
			}
		}
	}
}
