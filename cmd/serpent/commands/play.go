package commands

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"

	termbox "github.com/nsf/termbox-go"
	"github.com/serpentlabs/serpent/config"
	"github.com/serpentlabs/serpent/rules"
	"github.com/serpentlabs/serpent/runner"
	"github.com/serpentlabs/serpent/store"
	"github.com/serpentlabs/serpent/store/filestore"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	width       int
	height      int
	wallMode    bool
	tickMS      int64
	foodCount   int
	startLength int
	archiveGame bool
)

func init() {
	playCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "board width in cells")
	playCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "board height in cells")
	playCmd.Flags().BoolVar(&wallMode, "walls", false, "solid walls instead of wraparound")
	playCmd.Flags().Int64Var(&tickMS, "tick-ms", int64(config.DefaultTickInterval), "milliseconds between turns")
	playCmd.Flags().IntVar(&foodCount, "food", config.DefaultFoodCount, "apples on the board at once")
	playCmd.Flags().IntVar(&startLength, "start-length", config.DefaultStartLength, "starting snake length")
	playCmd.Flags().BoolVar(&archiveGame, "archive", false, "save the finished game for replay")
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "play an interactive game in the terminal",
	Run: func(*cobra.Command, []string) {
		if err := playGame(); err != nil {
			log.WithError(err).Fatal("play failed")
		}
	},
}

func playGame() error {
	game, frames, err := rules.CreateInitialGame(rules.CreateOptions{
		Width:        width,
		Height:       height,
		WallMode:     wallMode,
		TickInterval: tickMS,
		FoodCount:    foodCount,
		StartLength:  startLength,
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

	if err := termbox.Init(); err != nil {
		return err
	}
	// termbox owns the terminal now, keep logrus off it
	if !verbose {
		log.SetOutput(ioutil.Discard)
	}

	r := &runner.Runner{
		Store: s,
		FrameHandler: func(g *rules.Game, f *rules.GameFrame) {
			if err := render(g, f); err != nil {
				log.WithError(err).Error("render failed")
			}
		},
	}

	go handleKeys(r, cancel)

	final, playErr := r.Play(ctx, game, frames)
	if playErr == nil && final.End != nil {
		// leave the last frame and its banner up until the player quits
		<-ctx.Done()
	}
	termbox.Interrupt()
	termbox.Close()
	log.SetOutput(os.Stderr)
	if playErr != nil && playErr != context.Canceled {
		return playErr
	}

	if archiveGame {
		all, err := s.ListGameFrames(context.Background(), game.ID, 0, 0)
		if err != nil {
			return err
		}
		if _, err := filestore.SaveGame(game, all); err != nil {
			return err
		}
	}

	printOutcome(final)
	if archiveGame {
		fmt.Printf("replay with: serpent replay --game-id %s\n", game.ID)
	}
	return nil
}

func handleKeys(r *runner.Runner, cancel context.CancelFunc) {
	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventInterrupt:
			return
		case termbox.EventKey:
			switch {
			case ev.Key == termbox.KeyArrowUp || ev.Ch == 'w':
				r.SetDirection(rules.DirectionUp)
			case ev.Key == termbox.KeyArrowDown || ev.Ch == 's':
				r.SetDirection(rules.DirectionDown)
			case ev.Key == termbox.KeyArrowLeft || ev.Ch == 'a':
				r.SetDirection(rules.DirectionLeft)
			case ev.Key == termbox.KeyArrowRight || ev.Ch == 'd':
				r.SetDirection(rules.DirectionRight)
			case ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || ev.Ch == 'q':
				cancel()
				return
			}
		}
	}
}

func printOutcome(final *rules.GameFrame) {
	if final.End == nil {
		fmt.Printf("game stopped after %d turns - score %d\n", final.Turn, final.Score)
		return
	}
	if final.End.Win() {
		fmt.Printf("you win! the board filled up on turn %d - final score %d\n", final.End.Turn, final.Score)
		return
	}
	fmt.Printf("game over (%s) on turn %d - final score %d\n", final.End.Cause, final.End.Turn, final.Score)
}
