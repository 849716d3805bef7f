package store

import (
	"context"
	"testing"

	"github.com/serpentlabs/serpent/rules"
	"github.com/stretchr/testify/require"
)

func testGame(id string) (*rules.Game, []*rules.GameFrame) {
	game := &rules.Game{
		ID:     id,
		Width:  10,
		Height: 10,
		Status: rules.GameStatusStopped,
	}
	frames := []*rules.GameFrame{
		{
			Turn: 0,
			Snake: &rules.Snake{
				Body:    []rules.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
				Heading: rules.DirectionRight,
			},
			Food: []rules.Point{{X: 6, Y: 5}},
		},
	}
	return game, frames
}

func TestInMemCreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := InMemStore()
	game, frames := testGame("g1")

	require.NoError(t, s.CreateGame(ctx, game, frames))
	got, err := s.GetGame(ctx, "g1")
	require.NoError(t, err)
	require.Equal(t, game, got)

	require.Equal(t, ErrExists, s.CreateGame(ctx, game, frames))
}

func TestInMemGetMissing(t *testing.T) {
	s := InMemStore()
	_, err := s.GetGame(context.Background(), "nope")
	require.Equal(t, ErrNotFound, err)
}

func TestInMemSetGameStatus(t *testing.T) {
	ctx := context.Background()
	s := InMemStore()
	game, frames := testGame("g1")
	require.NoError(t, s.CreateGame(ctx, game, frames))

	require.NoError(t, s.SetGameStatus(ctx, "g1", rules.GameStatusRunning))
	got, err := s.GetGame(ctx, "g1")
	require.NoError(t, err)
	require.Equal(t, rules.GameStatusRunning, got.Status)

	require.Equal(t, ErrNotFound, s.SetGameStatus(ctx, "nope", rules.GameStatusRunning))
}

func TestInMemPushAndListFrames(t *testing.T) {
	ctx := context.Background()
	s := InMemStore()
	game, frames := testGame("g1")
	require.NoError(t, s.CreateGame(ctx, game, frames))

	for turn := 1; turn <= 5; turn++ {
		require.NoError(t, s.PushGameFrame(ctx, "g1", &rules.GameFrame{Turn: turn}))
	}

	all, err := s.ListGameFrames(ctx, "g1", 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 6)
	require.Equal(t, 0, all[0].Turn)
	require.Equal(t, 5, all[5].Turn)

	page, err := s.ListGameFrames(ctx, "g1", 2, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, 1, page[0].Turn)
	require.Equal(t, 2, page[1].Turn)

	none, err := s.ListGameFrames(ctx, "g1", 10, 100)
	require.NoError(t, err)
	require.Empty(t, none)

	require.Equal(t, ErrNotFound, s.PushGameFrame(ctx, "nope", &rules.GameFrame{}))
	_, err = s.ListGameFrames(ctx, "nope", 0, 0)
	require.Equal(t, ErrNotFound, err)
}

func TestInstrumentStoreDelegates(t *testing.T) {
	ctx := context.Background()
	s := InstrumentStore(InMemStore())
	game, frames := testGame("g1")

	require.NoError(t, s.CreateGame(ctx, game, frames))
	require.NoError(t, s.PushGameFrame(ctx, "g1", &rules.GameFrame{Turn: 1}))
	got, err := s.GetGame(ctx, "g1")
	require.NoError(t, err)
	require.Equal(t, "g1", got.ID)

	all, err := s.ListGameFrames(ctx, "g1", 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
}
