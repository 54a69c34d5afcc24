package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/zukko-arcade/internal/audio"
	"github.com/vovakirdan/zukko-arcade/internal/buddy"
	"github.com/vovakirdan/zukko-arcade/internal/core"
	"github.com/vovakirdan/zukko-arcade/internal/nav"
	"github.com/vovakirdan/zukko-arcade/internal/platform/tui"
	"github.com/vovakirdan/zukko-arcade/internal/storage"
)

var flagSound bool

var playCmd = &cobra.Command{
	Use:   "play [activity]",
	Short: "Open the menu or start an activity",
	Long: `Open the home menu, or jump straight into an activity.

Activities: memory, arithmetic, catching, buddy

Controls:
  Arrows/WASD  - Move
  Enter/Space  - Pick
  1-9          - Pick an answer or menu item
  Mouse        - Move the basket, click cards and answers
  R            - Restart the memory game
  Esc          - Back to the menu
  Ctrl+C       - Quit

Examples:
  zukko play
  zukko play memory
  zukko play catching --difficulty hard --sound`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
}

func runPlay(_ *cobra.Command, args []string) error {
	start := nav.Home
	if len(args) == 1 {
		a, err := nav.Parse(args[0])
		if err != nil {
			return fmt.Errorf("%w; run 'zukko list' to see available activities", err)
		}
		start = a
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alt screen owns stdout, so logs go nowhere unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("results log unavailable", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	ctx := context.Background()
	seed := resolveSeed(flagSeed)
	opts := tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     seed,
		},
		Store:   store,
		Buddy:   buddy.NewFromEnv(ctx, cfg.Buddy, seed, logger),
		Logger:  logger,
		Player:  os.Getenv("USER"),
		Start:   start,
		Context: ctx,
	}

	if flagSound {
		chimes := audio.NewChimes()
		if err := chimes.Initialize(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer chimes.Close()
			opts.Cue = chimes.Play
		}
	}

	return tui.Run(opts)
}
