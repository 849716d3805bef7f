// Package rules contains the snake game logic. It is a pure simulation: no
// timers, no input devices and no rendering live here. Each call to Tick
// advances a game exactly one turn.
package rules

var (
	// GameStatusStopped represents a game that has been created but not started.
	GameStatusStopped = "stopped"
	// GameStatusRunning represents a running game.
	GameStatusRunning = "running"
	// GameStatusComplete represents a game that is done.
	GameStatusComplete = "complete"
)

const (
	// EndCauseSelfCollision means the snake ran into its own body. A loss.
	EndCauseSelfCollision = "self-collision"
	// EndCauseWallCollision means the snake left the board while wall mode
	// was on. A loss.
	EndCauseWallCollision = "wall-collision"
	// EndCauseBoardFull means the snake grew until no free cell was left for
	// an apple. Scored as a win.
	EndCauseBoardFull = "board-full"
)

// Game holds the per-session constants of a single game plus its status. The
// board never changes size once the game exists.
type Game struct {
	ID     string
	Width  int
	Height int
	// WallMode disables wraparound: leaving the board ends the game instead
	// of teleporting the head to the opposite edge.
	WallMode bool
	// TickInterval is the wall clock delay between turns, in milliseconds.
	TickInterval int64
	FoodCount    int
	StartLength  int
	Status       string
}

// End records how and when a game ended.
type End struct {
	Turn  int
	Cause string
}

// Win reports whether the end counts as a win for the player.
func (e *End) Win() bool {
	return e != nil && e.Cause == EndCauseBoardFull
}

// GameFrame is the complete state of a game at one turn. Frames are value
// snapshots: a tick builds the next frame from the last one without aliasing
// its body or food slices, so held references stay valid for rendering.
type GameFrame struct {
	Turn  int
	Snake *Snake
	Food  []Point
	// Score counts apples eaten since the start of the game.
	Score int
	End   *End
}

// FoodAt reports whether the frame has an apple on the given cell.
func (f *GameFrame) FoodAt(p Point) bool {
	for _, a := range f.Food {
		if a.Equal(p) {
			return true
		}
	}
	return false
}
