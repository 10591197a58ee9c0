package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kitty-arcade/internal/config"
	"github.com/vovakirdan/kitty-arcade/internal/storage"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "kitty",
})

// loadConfig reads the tuning and applies the difficulty flag.
func loadConfig() (config.KittyConfig, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.KittyConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.LoadKitty(flagConfig)
	if err != nil {
		return config.KittyConfig{}, err
	}
	config.ApplyKittyPreset(&cfg, preset)
	return cfg, nil
}

// openStore opens the scores database. A failure is logged and the game
// runs without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close scores database", "error", err)
	}
}

// playerName names the local player in the run history.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// sessionLogger returns a logger for use while the TUI owns the terminal.
// It writes to path; when the file cannot be opened, output is discarded.
func sessionLogger(path string) (*log.Logger, func()) {
	if path == "" {
		return log.New(io.Discard), func() {}
	}
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logger.Warn("could not create log directory", "path", path, "error", err)
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger.Warn("could not open log file", "path", path, "error", err)
		return log.New(io.Discard), func() {}
	}
	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "kitty",
	})
	return l, func() { f.Close() }
}
