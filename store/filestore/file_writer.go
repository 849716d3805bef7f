package filestore

import (
	"bufio"
	"encoding/json"
	"os"

	"github.com/serpentlabs/serpent/rules"
)

type writer interface {
	WriteString(s string) (int, error)
}

func writeLine(w writer, data interface{}) error {
	j, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = w.WriteString(string(j) + "\n")
	return err
}

func toPoint(p rules.Point) point {
	return point{
		X: p.X,
		Y: p.Y,
	}
}

func toPoints(ps []rules.Point) []point {
	points := []point{}
	for _, p := range ps {
		points = append(points, toPoint(p))
	}
	return points
}

func toSnakeState(s *rules.Snake) snakeState {
	return snakeState{
		Body:    toPoints(s.Body),
		Heading: string(s.Heading),
	}
}

func toEndState(e *rules.End) *endState {
	if e == nil {
		return nil
	}
	return &endState{
		Turn:  e.Turn,
		Cause: e.Cause,
	}
}

func toFrame(f *rules.GameFrame) frame {
	return frame{
		Turn:  f.Turn,
		Snake: toSnakeState(f.Snake),
		Food:  toPoints(f.Food),
		Score: f.Score,
		End:   toEndState(f.End),
	}
}

func toGameInfo(game *rules.Game) gameInfo {
	return gameInfo{
		ID:           game.ID,
		Width:        game.Width,
		Height:       game.Height,
		WallMode:     game.WallMode,
		TickInterval: game.TickInterval,
		FoodCount:    game.FoodCount,
		StartLength:  game.StartLength,
	}
}

// SaveGame writes the game and all of its frames to the save directory and
// returns the archive path.
func SaveGame(game *rules.Game, frames []*rules.GameFrame) (string, error) {
	if err := requireSaveDir(); err != nil {
		return "", err
	}

	path := getFilePath(game.ID)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := writeLine(w, toGameInfo(game)); err != nil {
		return "", err
	}
	for _, fr := range frames {
		if err := writeLine(w, toFrame(fr)); err != nil {
			return "", err
		}
	}
	return path, w.Flush()
}
