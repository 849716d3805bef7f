package filestore

import (
	"bufio"
	"encoding/json"
	"io"
	"os"

	"github.com/serpentlabs/serpent/rules"
)

func readLine(r *bufio.Reader, out interface{}) (bool, error) {
	bytes, err := r.ReadBytes('\n')
	eof := err == io.EOF

	if err != nil && !eof {
		return false, err
	}
	if eof && len(bytes) == 0 {
		return false, io.EOF
	}

	if err := json.Unmarshal(bytes, out); err != nil {
		return false, err
	}
	return !eof, nil
}

func readArchive(id string) (gameArchive, error) {
	f, err := os.Open(getFilePath(id))
	if err != nil {
		return gameArchive{}, err
	}
	defer f.Close()

	reader := bufio.NewReader(f)

	info := gameInfo{}
	moreLines, err := readLine(reader, &info)
	if err != nil {
		return gameArchive{}, err
	}

	frames := []frame{}
	for moreLines {
		fr := frame{}
		more, err := readLine(reader, &fr)
		if err == io.EOF {
			break
		}
		if err != nil {
			return gameArchive{}, err
		}
		frames = append(frames, fr)
		moreLines = more
	}

	return gameArchive{
		info:   info,
		frames: frames,
	}, nil
}

func fromPoints(ps []point) []rules.Point {
	points := []rules.Point{}
	for _, p := range ps {
		points = append(points, rules.Point{X: p.X, Y: p.Y})
	}
	return points
}

func fromFrame(f frame) *rules.GameFrame {
	var end *rules.End
	if f.End != nil {
		end = &rules.End{
			Turn:  f.End.Turn,
			Cause: f.End.Cause,
		}
	}
	return &rules.GameFrame{
		Turn: f.Turn,
		Snake: &rules.Snake{
			Body:    fromPoints(f.Snake.Body),
			Heading: rules.Direction(f.Snake.Heading),
		},
		Food:  fromPoints(f.Food),
		Score: f.Score,
		End:   end,
	}
}

func fromArchive(archive gameArchive) (*rules.Game, []*rules.GameFrame) {
	game := &rules.Game{
		ID:           archive.info.ID,
		Width:        archive.info.Width,
		Height:       archive.info.Height,
		WallMode:     archive.info.WallMode,
		TickInterval: archive.info.TickInterval,
		FoodCount:    archive.info.FoodCount,
		StartLength:  archive.info.StartLength,
		Status:       rules.GameStatusComplete,
	}

	frames := []*rules.GameFrame{}
	for _, f := range archive.frames {
		frames = append(frames, fromFrame(f))
	}
	return game, frames
}

// ReadGame loads the game archived under the given id.
func ReadGame(id string) (*rules.Game, []*rules.GameFrame, error) {
	archive, err := readArchive(id)
	if err != nil {
		return nil, nil, err
	}

	game, frames := fromArchive(archive)
	return game, frames, nil
}
