// Package config holds the tunable defaults of the engine. These aren't user
// facing flags; they are environment knobs for tweaking a deployment without
// rebuilding.
package config

import (
	"os"
	"path/filepath"
	"strconv"
)

var (
	// DefaultWidth and DefaultHeight size the board when no flag is given.
	DefaultWidth  = getEnvInt("SERPENT_WIDTH", 15)
	DefaultHeight = getEnvInt("SERPENT_HEIGHT", 15)
	// DefaultTickInterval is the delay between turns in milliseconds.
	DefaultTickInterval = getEnvInt("SERPENT_TICK_MS", 100)
	// DefaultStartLength is the starting snake length.
	DefaultStartLength = getEnvInt("SERPENT_START_LEN", 3)
	// DefaultFoodCount is how many apples are on the board at once.
	DefaultFoodCount = getEnvInt("SERPENT_FOOD", 1)
)

// SaveDir returns the directory game archives are written to. Read on every
// call so tests can point it at a scratch directory.
func SaveDir() string {
	if dir := os.Getenv("SERPENT_SAVE_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".serpent", "games")
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}
