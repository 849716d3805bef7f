package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateInitialGame(t *testing.T) {
	game, frames, err := CreateInitialGame(CreateOptions{
		Width:       15,
		Height:      15,
		FoodCount:   1,
		StartLength: 3,
	})
	require.NoError(t, err)
	require.NotEmpty(t, game.ID)
	require.Equal(t, GameStatusStopped, game.Status)
	require.Len(t, frames, 1)

	frame := frames[0]
	require.Equal(t, 0, frame.Turn)
	require.Equal(t, 0, frame.Score)
	require.Len(t, frame.Snake.Body, 3)
	require.Equal(t, Point{X: 2, Y: 0}, frame.Snake.Head())
	require.Equal(t, Point{X: 0, Y: 0}, frame.Snake.Tail())
	require.Equal(t, DirectionRight, frame.Snake.Heading)

	require.Len(t, frame.Food, 1)
	require.False(t, frame.Snake.Occupies(frame.Food[0]))
	require.False(t, game.Outside(frame.Food[0]))
}

func TestCreateInitialGameMultipleFood(t *testing.T) {
	_, frames, err := CreateInitialGame(CreateOptions{
		Width:       10,
		Height:      10,
		FoodCount:   5,
		StartLength: 3,
	})
	require.NoError(t, err)

	frame := frames[0]
	require.Len(t, frame.Food, 5)
	seen := map[Point]bool{}
	for _, f := range frame.Food {
		require.False(t, seen[f], "duplicate apple at %v", f)
		require.False(t, frame.Snake.Occupies(f))
		seen[f] = true
	}
}

func TestCreateInitialGameRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		opts CreateOptions
	}{
		{"tiny board", CreateOptions{Width: 1, Height: 1, FoodCount: 1, StartLength: 3}},
		{"short snake", CreateOptions{Width: 10, Height: 10, FoodCount: 1, StartLength: 2}},
		{"snake wider than board", CreateOptions{Width: 4, Height: 10, FoodCount: 1, StartLength: 5}},
		{"no food", CreateOptions{Width: 10, Height: 10, FoodCount: 0, StartLength: 3}},
		{"too much food", CreateOptions{Width: 3, Height: 2, FoodCount: 4, StartLength: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := CreateInitialGame(tt.opts)
			require.Error(t, err)
		})
	}
}
