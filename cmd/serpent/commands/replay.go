package commands

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	termbox "github.com/nsf/termbox-go"
	"github.com/serpentlabs/serpent/config"
	"github.com/serpentlabs/serpent/store/filestore"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var (
	gameID       string
	replayTickMS int64
	dumpFrames   bool
)

func init() {
	replayCmd.Flags().StringVarP(&gameID, "game-id", "g", "", "the game id of the archived game to replay")
	replayCmd.Flags().Int64Var(&replayTickMS, "tick-ms", 0, "override the playback speed in milliseconds per turn")
	replayCmd.Flags().BoolVar(&dumpFrames, "dump", false, "print the decoded frames instead of rendering them")
}

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "replay an archived game",
	Args: func(c *cobra.Command, args []string) error {
		if len(gameID) == 0 {
			return errors.New("game id is required")
		}
		return nil
	},
	Run: func(*cobra.Command, []string) {
		if err := replayGame(); err != nil {
			log.WithError(err).Fatal("replay failed")
		}
	},
}

func replayGame() error {
	game, frames, err := filestore.ReadGame(gameID)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return errors.New("archive has no frames")
	}

	if dumpFrames {
		spew.Fdump(os.Stdout, game)
		for _, f := range frames {
			spew.Fdump(os.Stdout, f)
		}
		return nil
	}

	interval := game.TickInterval
	if replayTickMS > 0 {
		interval = replayTickMS
	}
	if interval <= 0 {
		interval = int64(config.DefaultTickInterval)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	// quit keys stop the playback early
	go func() {
		for {
			ev := termbox.PollEvent()
			if ev.Type == termbox.EventInterrupt {
				return
			}
			if ev.Type == termbox.EventKey &&
				(ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || ev.Ch == 'q') {
				cancel()
				return
			}
		}
	}()
	defer termbox.Interrupt()

	limiter := rate.NewLimiter(rate.Every(time.Duration(interval)*time.Millisecond), 1)
	for _, f := range frames {
		if err := limiter.Wait(ctx); err != nil {
			return nil // stopped by the player
		}
		if err := render(game, f); err != nil {
			return err
		}
	}

	// hold the final frame on screen for a beat
	select {
	case <-time.After(2 * time.Second):
	case <-ctx.Done():
	}
	return nil
}
