package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapRightEdge(t *testing.T) {
	game := &Game{Width: 10, Height: 10}
	require.Equal(t, Point{X: 0, Y: 4}, game.Wrap(Point{X: 10, Y: 4}))
}

func TestWrapLeftEdge(t *testing.T) {
	game := &Game{Width: 10, Height: 10}
	require.Equal(t, Point{X: 9, Y: 4}, game.Wrap(Point{X: -1, Y: 4}))
}

func TestWrapBothAxes(t *testing.T) {
	game := &Game{Width: 5, Height: 7}
	require.Equal(t, Point{X: 4, Y: 0}, game.Wrap(Point{X: -1, Y: 7}))
}

func TestWrapInterior(t *testing.T) {
	game := &Game{Width: 10, Height: 10}
	p := Point{X: 3, Y: 8}
	require.Equal(t, p, game.Wrap(p))
}

func TestOutside(t *testing.T) {
	game := &Game{Width: 10, Height: 10}
	require.False(t, game.Outside(Point{X: 0, Y: 0}))
	require.False(t, game.Outside(Point{X: 9, Y: 9}))
	require.True(t, game.Outside(Point{X: 10, Y: 4}))
	require.True(t, game.Outside(Point{X: 4, Y: -1}))
}
