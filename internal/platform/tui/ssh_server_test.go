package tui

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/kitty-arcade/internal/config"
	"github.com/vovakirdan/kitty-arcade/internal/kitty"
	"github.com/vovakirdan/kitty-arcade/internal/storage"
)

func TestSessionConfigScopesHighScoreKey(t *testing.T) {
	base := config.DefaultKittyConfig()

	assert.Equal(t, "kittyHigh:alice", SessionConfig(base, "alice").Storage.HighScoreKey)
	assert.Equal(t, "kittyHigh", SessionConfig(base, "").Storage.HighScoreKey)
	assert.Equal(t, "kittyHigh", base.Storage.HighScoreKey)
}

func TestSSHServerShutdownClosesStoreAfterDrain(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "scores.db")

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = dbPath

	srv, err := NewSSHServer(cfg)
	require.NoError(t, err)
	require.NotNil(t, srv.db)
	assert.Equal(t, "127.0.0.1:0", srv.Addr())

	_, err = srv.store.SaveScore(kitty.GameID, "alice", 7)
	require.NoError(t, err)

	require.NoError(t, srv.Shutdown())
	assert.Nil(t, srv.db)

	db, err := storage.Open(dbPath)
	require.NoError(t, err)
	defer db.Close()

	runs, err := db.TopScores(kitty.GameID, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 7, runs[0].Score)
}
