package rules

import (
	"fmt"

	uuid "github.com/satori/go.uuid"
)

// CreateOptions carries the parameters for a new game.
type CreateOptions struct {
	Width        int
	Height       int
	WallMode     bool
	TickInterval int64
	FoodCount    int
	StartLength  int
}

// MinStartLength is the shortest snake a game may start with.
const MinStartLength = 3

// CreateInitialGame validates the options and builds a new game together with
// its starting frame: the snake laid out along the top row heading right, and
// the initial apples on random free cells.
func CreateInitialGame(opts CreateOptions) (*Game, []*GameFrame, error) {
	if opts.Width < 2 || opts.Height < 2 {
		return nil, nil, fmt.Errorf("rules: board %dx%d is too small", opts.Width, opts.Height)
	}
	if opts.StartLength < MinStartLength {
		return nil, nil, fmt.Errorf("rules: start length %d is below the minimum of %d", opts.StartLength, MinStartLength)
	}
	if opts.StartLength > opts.Width {
		return nil, nil, fmt.Errorf("rules: start length %d does not fit on a board of width %d", opts.StartLength, opts.Width)
	}
	if opts.FoodCount < 1 {
		return nil, nil, fmt.Errorf("rules: at least one apple is required, got %d", opts.FoodCount)
	}
	if opts.FoodCount > opts.Width*opts.Height-opts.StartLength {
		return nil, nil, fmt.Errorf("rules: no room for %d apples on a %dx%d board", opts.FoodCount, opts.Width, opts.Height)
	}

	game := &Game{
		ID:           uuid.NewV4().String(),
		Width:        opts.Width,
		Height:       opts.Height,
		WallMode:     opts.WallMode,
		TickInterval: opts.TickInterval,
		FoodCount:    opts.FoodCount,
		StartLength:  opts.StartLength,
		Status:       GameStatusStopped,
	}

	snake := startingSnake(opts.StartLength)
	food := make([]Point, 0, opts.FoodCount)
	for i := 0; i < opts.FoodCount; i++ {
		p, ok := unoccupiedPoint(game, food, snake)
		if !ok {
			return nil, nil, fmt.Errorf("rules: no unoccupied cell left for an apple")
		}
		food = append(food, p)
	}

	frames := []*GameFrame{
		{
			Turn:  0,
			Snake: snake,
			Food:  food,
		},
	}
	return game, frames, nil
}

// startingSnake places the body along the top row with the head at
// x = length - 1, matching the rightward starting heading.
func startingSnake(length int) *Snake {
	body := make([]Point, 0, length)
	for x := length - 1; x >= 0; x-- {
		body = append(body, Point{X: x, Y: 0})
	}
	return &Snake{
		Body:    body,
		Heading: DirectionRight,
	}
}
