package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointEqual(t *testing.T) {
	require.True(t, Point{X: 1, Y: 2}.Equal(Point{X: 1, Y: 2}))
	require.False(t, Point{X: 1, Y: 2}.Equal(Point{X: 2, Y: 1}))
}

func TestDirectionOpposite(t *testing.T) {
	require.Equal(t, DirectionDown, DirectionUp.Opposite())
	require.Equal(t, DirectionUp, DirectionDown.Opposite())
	require.Equal(t, DirectionRight, DirectionLeft.Opposite())
	require.Equal(t, DirectionLeft, DirectionRight.Opposite())
}

func TestDirectionOpposes(t *testing.T) {
	require.True(t, DirectionUp.Opposes(DirectionDown))
	require.False(t, DirectionUp.Opposes(DirectionLeft))
	require.False(t, DirectionUp.Opposes(DirectionUp))
	require.False(t, Direction("sideways").Opposes(DirectionUp))
}

func TestDirectionValid(t *testing.T) {
	for _, d := range []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight} {
		require.True(t, d.Valid())
	}
	require.False(t, Direction("").Valid())
	require.False(t, Direction("q").Valid())
}

func TestDirectionVector(t *testing.T) {
	tests := []struct {
		d      Direction
		dx, dy int
	}{
		{DirectionUp, 0, -1},
		{DirectionDown, 0, 1},
		{DirectionLeft, -1, 0},
		{DirectionRight, 1, 0},
	}
	for _, tt := range tests {
		dx, dy := tt.d.Vector()
		require.Equal(t, tt.dx, dx, string(tt.d))
		require.Equal(t, tt.dy, dy, string(tt.d))
	}
}
