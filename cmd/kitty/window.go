package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kitty-arcade/internal/kitty"
	"github.com/vovakirdan/kitty-arcade/internal/platform/gfx"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window.

Controls:
  Space/Up/Click - Jump (starts a run when none is running)
  R/Enter        - Restart after game over
  Esc/Q          - Quit

Examples:
  kitty window
  kitty window --scale 1.5 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
}

func runWindow(_ *cobra.Command, _ []string) {
	kcfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	display := gfx.NewDisplay()
	opts := kitty.Options{
		Display: display,
		Logger:  logger,
	}
	if store != nil {
		opts.Store = store
	}
	if flagSeed != 0 {
		opts.Rand = rand.New(rand.NewSource(flagSeed))
	}
	engine := kitty.New(kcfg, opts)

	runErr := gfx.Run(engine, display, int(kcfg.Field.Width), int(kcfg.Field.Height), gfx.Options{
		Title: "Kitty",
		TPS:   flagFPS,
		Scale: flagScale,

		OnGameOver: func(score int) {
			if store == nil || score <= 0 {
				return
			}
			if _, err := store.SaveScore(kitty.GameID, playerName(), score); err != nil {
				logger.Warn("could not record run", "score", score, "error", err)
			}
		},
	})

	closeStore(store)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
