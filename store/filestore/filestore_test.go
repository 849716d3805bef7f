package filestore

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/serpentlabs/serpent/rules"
	"github.com/stretchr/testify/require"
)

func TestSaveAndReadGame(t *testing.T) {
	dir, err := ioutil.TempDir("", "serpent-filestore")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	os.Setenv("SERPENT_SAVE_DIR", dir)
	defer os.Unsetenv("SERPENT_SAVE_DIR")

	game := &rules.Game{
		ID:           "archive-test",
		Width:        10,
		Height:       10,
		TickInterval: 100,
		FoodCount:    1,
		StartLength:  3,
		Status:       rules.GameStatusComplete,
	}
	frames := []*rules.GameFrame{
		{
			Turn: 0,
			Snake: &rules.Snake{
				Body:    []rules.Point{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}},
				Heading: rules.DirectionRight,
			},
			Food: []rules.Point{{X: 5, Y: 5}},
		},
		{
			Turn: 1,
			Snake: &rules.Snake{
				Body:    []rules.Point{{X: 3, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0}},
				Heading: rules.DirectionRight,
			},
			Food:  []rules.Point{{X: 5, Y: 5}},
			Score: 0,
			End:   &rules.End{Turn: 1, Cause: rules.EndCauseSelfCollision},
		},
	}

	path, err := SaveGame(game, frames)
	require.NoError(t, err)
	require.FileExists(t, path)

	gotGame, gotFrames, err := ReadGame("archive-test")
	require.NoError(t, err)
	require.Equal(t, game.ID, gotGame.ID)
	require.Equal(t, game.Width, gotGame.Width)
	require.Equal(t, game.Height, gotGame.Height)
	require.Equal(t, game.TickInterval, gotGame.TickInterval)
	require.Equal(t, rules.GameStatusComplete, gotGame.Status)

	require.Len(t, gotFrames, 2)
	require.Equal(t, frames[0].Snake.Body, gotFrames[0].Snake.Body)
	require.Equal(t, rules.DirectionRight, gotFrames[0].Snake.Heading)
	require.Nil(t, gotFrames[0].End)
	require.NotNil(t, gotFrames[1].End)
	require.Equal(t, rules.EndCauseSelfCollision, gotFrames[1].End.Cause)
}

func TestReadGameMissing(t *testing.T) {
	dir, err := ioutil.TempDir("", "serpent-filestore")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	os.Setenv("SERPENT_SAVE_DIR", dir)
	defer os.Unsetenv("SERPENT_SAVE_DIR")

	_, _, err = ReadGame("does-not-exist")
	require.Error(t, err)
}
