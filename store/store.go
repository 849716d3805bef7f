// Package store holds game state between ticks. The engine only ever talks
// to the Store interface; the in-memory implementation backs live games and
// the filestore subpackage archives finished ones for replay.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/serpentlabs/serpent/rules"
)

var (
	// ErrNotFound is returned when a game is not in the store.
	ErrNotFound = errors.New("store: game not found")
	// ErrExists is returned when creating a game with an ID already in use.
	ErrExists = errors.New("store: game already exists")
)

// Store is the interface to the backend store.
type Store interface {
	CreateGame(ctx context.Context, game *rules.Game, frames []*rules.GameFrame) error
	SetGameStatus(ctx context.Context, id, status string) error
	GetGame(ctx context.Context, id string) (*rules.Game, error)
	PushGameFrame(ctx context.Context, id string, frame *rules.GameFrame) error
	ListGameFrames(ctx context.Context, id string, limit, offset int) ([]*rules.GameFrame, error)
}

// InMemStore returns an in memory implementation of the Store interface.
func InMemStore() Store {
	return &inmem{
		games:  map[string]*rules.Game{},
		frames: map[string][]*rules.GameFrame{},
	}
}

type inmem struct {
	games  map[string]*rules.Game
	frames map[string][]*rules.GameFrame
	lock   sync.Mutex
}

func (in *inmem) CreateGame(ctx context.Context, g *rules.Game, frames []*rules.GameFrame) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	if _, ok := in.games[g.ID]; ok {
		return ErrExists
	}
	in.games[g.ID] = g
	in.frames[g.ID] = append([]*rules.GameFrame{}, frames...)
	return nil
}

func (in *inmem) SetGameStatus(ctx context.Context, id, status string) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	g, ok := in.games[id]
	if !ok {
		return ErrNotFound
	}
	g.Status = status
	return nil
}

func (in *inmem) GetGame(ctx context.Context, id string) (*rules.Game, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	if g, ok := in.games[id]; ok {
		return g, nil
	}
	return nil, ErrNotFound
}

func (in *inmem) PushGameFrame(ctx context.Context, id string, frame *rules.GameFrame) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	if _, ok := in.games[id]; !ok {
		return ErrNotFound
	}
	in.frames[id] = append(in.frames[id], frame)
	return nil
}

func (in *inmem) ListGameFrames(ctx context.Context, id string, limit, offset int) ([]*rules.GameFrame, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	frames, ok := in.frames[id]
	if !ok {
		return nil, ErrNotFound
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(frames) {
		return nil, nil
	}
	end := len(frames)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return frames[offset:end], nil
}
