// Package filestore archives finished games to disk, one file per game: a
// header line with the game parameters followed by one JSON line per frame.
// Archives are what the replay command plays back.
package filestore

import (
	"os"
	"path/filepath"

	"github.com/serpentlabs/serpent/config"
)

func requireSaveDir() error {
	return os.MkdirAll(config.SaveDir(), 0775)
}

func getFilePath(id string) string {
	return filepath.Join(config.SaveDir(), id+".jsonl")
}

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type gameInfo struct {
	ID           string `json:"id"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	WallMode     bool   `json:"wallMode"`
	TickInterval int64  `json:"tickInterval"`
	FoodCount    int    `json:"foodCount"`
	StartLength  int    `json:"startLength"`
}

type snakeState struct {
	Body    []point `json:"body"`
	Heading string  `json:"heading"`
}

type endState struct {
	Turn  int    `json:"turn"`
	Cause string `json:"cause"`
}

type frame struct {
	Turn  int        `json:"turn"`
	Snake snakeState `json:"snake"`
	Food  []point    `json:"food"`
	Score int        `json:"score"`
	End   *endState  `json:"end,omitempty"`
}

type gameArchive struct {
	info   gameInfo
	frames []frame
}
