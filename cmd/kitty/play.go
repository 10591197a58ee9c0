package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/kitty-arcade/internal/core"
	"github.com/vovakirdan/kitty-arcade/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Space/Up/Click - Jump (starts a run from the title screen)
  R/Enter        - Restart after game over
  Tab            - Best runs (between runs)
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Slower pipes, gentle speed ramp
  normal - Default tuning
  hard   - Faster pipes, steep speed ramp
  fixed  - No speed ramp

Examples:
  kitty play
  kitty play --difficulty easy
  kitty play --config ./my-kitty.yaml
  kitty play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

var flagLogFile string

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log", "~/.arcade/kitty.log", "Log file for warnings during play (empty = discard)")
}

func runPlay(_ *cobra.Command, _ []string) {
	kcfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store := openStore()

	// A nil *storage.Store must not become a non-nil interface.
	var st tui.Store
	if store != nil {
		st = store
	}

	// The TUI owns the terminal, so warnings go to a file.
	tuiLogger, closeLog := sessionLogger(flagLogFile)
	runErr := tui.Run(kcfg, st, cfg, playerName(), tuiLogger)
	closeLog()

	closeStore(store)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
