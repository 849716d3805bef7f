package commands

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/serpentlabs/serpent/bot"
	"github.com/serpentlabs/serpent/config"
	"github.com/serpentlabs/serpent/rules"
	"github.com/serpentlabs/serpent/runner"
	"github.com/serpentlabs/serpent/store"
	"github.com/serpentlabs/serpent/store/filestore"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	runWidth       int
	runHeight      int
	runWallMode    bool
	runFoodCount   int
	runStartLength int
	runSeed        int64
	runMaxTurns    int
	runNoArchive   bool
)

func init() {
	runCmd.Flags().IntVar(&runWidth, "width", config.DefaultWidth, "board width in cells")
	runCmd.Flags().IntVar(&runHeight, "height", config.DefaultHeight, "board height in cells")
	runCmd.Flags().BoolVar(&runWallMode, "walls", false, "solid walls instead of wraparound")
	runCmd.Flags().IntVar(&runFoodCount, "food", config.DefaultFoodCount, "apples on the board at once")
	runCmd.Flags().IntVar(&runStartLength, "start-length", config.DefaultStartLength, "starting snake length")
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "random seed for a reproducible game")
	runCmd.Flags().IntVar(&runMaxTurns, "max-turns", 10000, "stop a game that runs longer than this")
	runCmd.Flags().BoolVar(&runNoArchive, "no-archive", false, "do not save the finished game")
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "run a headless game driven by the built-in autopilot",
	Run: func(*cobra.Command, []string) {
		if err := runGame(); err != nil {
			log.WithError(err).Fatal("run failed")
		}
	},
}

func runGame() error {
	if runSeed != 0 {
		rand.Seed(runSeed)
	}

	game, frames, err := rules.CreateInitialGame(rules.CreateOptions{
		Width:       runWidth,
		Height:      runHeight,
		WallMode:    runWallMode,
		FoodCount:   runFoodCount,
		StartLength: runStartLength,
		// no pacing, ticks run back to back
		TickInterval: 0,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := store.InstrumentStore(store.InMemStore())
	if err := s.CreateGame(ctx, game, frames); err != nil {
		return err
	}

	r := &runner.Runner{Store: s}
	r.FrameHandler = func(g *rules.Game, f *rules.GameFrame) {
		if f.Turn >= runMaxTurns {
			cancel()
			return
		}
		r.SetDirection(bot.Next(g, f))
	}

	final, err := r.Play(ctx, game, frames)
	if err != nil && err != context.Canceled {
		return err
	}

	if !runNoArchive {
		all, err := s.ListGameFrames(context.Background(), game.ID, 0, 0)
		if err != nil {
			return err
		}
		path, err := filestore.SaveGame(game, all)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"GameID":  game.ID,
			"Archive": path,
		}).Info("game archived")
	}

	printOutcome(final)
	if !runNoArchive {
		fmt.Printf("replay with: serpent replay --game-id %s\n", game.ID)
	}
	return nil
}
