package storage

import (
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kitty-arcade/internal/config"
	"github.com/vovakirdan/kitty-arcade/internal/kitty"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreGetAbsentKey(t *testing.T) {
	store := openTestStore(t)

	value, ok, err := store.Get("kittyHigh")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if ok || value != "" {
		t.Errorf("Get() on absent key = (%q, %v), expected (\"\", false)", value, ok)
	}
}

func TestStoreSetAndGet(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set("kittyHigh", "3"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set("kittyHigh", "5"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}

	value, ok, err := store.Get("kittyHigh")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if !ok || value != "5" {
		t.Errorf("Get() = (%q, %v), expected (\"5\", true)", value, ok)
	}

	if err := store.Delete("kittyHigh"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok, _ := store.Get("kittyHigh"); ok {
		t.Error("key should be gone after Delete()")
	}
}

func TestStoreValuesSurviveReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Set("kittyHigh", "42"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	value, ok, err := store.Get("kittyHigh")
	if err != nil || !ok || value != "42" {
		t.Errorf("Get() after reopen = (%q, %v, %v), expected (\"42\", true, nil)", value, ok, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("kitty", "alice", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", "bob", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("kitty", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].Player != "alice" {
		t.Errorf("Expected player alice, got %q", scores[0].Player)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("kitty", "", (i+1)*100)
	}

	scores, err := store.TopScores("kitty", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStorePlayerScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("kitty", "alice", 4)
	store.SaveScore("kitty", "bob", 9)
	store.SaveScore("kitty", "alice", 7)
	store.SaveScore("other", "alice", 100)

	scores, err := store.PlayerScores("kitty", "alice", 10)
	if err != nil {
		t.Fatalf("PlayerScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 runs for alice, got %d", len(scores))
	}
	if scores[0].Score != 7 || scores[1].Score != 4 {
		t.Errorf("Runs not in descending order: %v", scores)
	}

	none, err := store.PlayerScores("kitty", "carol", 10)
	if err != nil {
		t.Fatalf("PlayerScores() failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected no runs for carol, got %d", len(none))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("kitty")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.HighScore != 0 || empty.GamesCount != 0 {
		t.Errorf("Expected empty stats for empty history, got %+v", empty)
	}

	store.SaveScore("kitty", "", 1)
	store.SaveScore("kitty", "", 3)
	store.SaveScore("kitty", "", 2)

	stats, err := store.GetGameStats("kitty")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 3 || stats.AvgScore != 2 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("kitty", "", 100)
	store.SaveScore("other", "", 300)
	store.Set("kittyHigh", "100")

	if err := store.ClearScores("kitty"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("kitty", 10); len(scores) != 0 {
		t.Errorf("Expected 0 kitty scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("Other game scores should not be affected")
	}
	if _, ok, _ := store.Get("kittyHigh"); !ok {
		t.Error("ClearScores must not touch the key-value table")
	}
}

func TestStoreSetMax(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name     string
		offer    int
		expected int
		stored   string
	}{
		{"first write", 3, 3, "3"},
		{"raise", 7, 7, "7"},
		{"lower is ignored", 5, 7, "7"},
		{"equal is ignored", 7, 7, "7"},
		{"numeric not lexical", 10, 10, "10"},
	}

	for _, tc := range tests {
		best, err := store.SetMax("kittyHigh", tc.offer)
		if err != nil {
			t.Fatalf("%s: SetMax() failed: %v", tc.name, err)
		}
		if best != tc.expected {
			t.Errorf("%s: SetMax(%d) = %d, expected %d", tc.name, tc.offer, best, tc.expected)
		}
		if value, _, _ := store.Get("kittyHigh"); value != tc.stored {
			t.Errorf("%s: stored %q, expected %q", tc.name, value, tc.stored)
		}
	}
}

func TestStoreSetMaxReplacesMalformed(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set("kittyHigh", "lots"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	best, err := store.SetMax("kittyHigh", 2)
	if err != nil {
		t.Fatalf("SetMax() failed: %v", err)
	}
	if best != 2 {
		t.Errorf("SetMax() = %d, expected 2", best)
	}
	if value, _, _ := store.Get("kittyHigh"); value != "2" {
		t.Errorf("stored %q, expected \"2\"", value)
	}
}

// runCfg lets the kitty drift through open pipes until gravity pulls it out
// of the field; lower gravity means more pipes passed.
func runCfg(gravity float64) config.KittyConfig {
	cfg := config.DefaultKittyConfig()
	cfg.Physics.Gravity = gravity
	cfg.Obstacles.SpawnEvery = 100
	cfg.Obstacles.Gap = cfg.Field.Height
	cfg.Obstacles.TopMin = 0
	cfg.Obstacles.TopRange = 0
	cfg.Difficulty.Enabled = false
	return cfg
}

func playOut(e *kitty.Engine) {
	e.Reset()
	for i := 0; i < 2000 && e.Running(); i++ {
		e.Tick()
	}
}

func TestSharedKeyKeepsBestAcrossEngines(t *testing.T) {
	store := openTestStore(t)

	newEngine := func(gravity float64) *kitty.Engine {
		return kitty.New(runCfg(gravity), kitty.Options{
			Store:  store,
			Rand:   rand.New(rand.NewSource(1)),
			Logger: log.New(io.Discard),
		})
	}
	a := newEngine(0.002)
	b := newEngine(0.003)

	playOut(a)
	if a.Score() != 2 {
		t.Fatalf("first session scored %d, expected 2", a.Score())
	}

	playOut(b)
	if b.Score() != 1 {
		t.Fatalf("second session scored %d, expected 1", b.Score())
	}

	value, _, err := store.Get("kittyHigh")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if value != "2" {
		t.Errorf("persisted high score = %q, expected \"2\"", value)
	}
	if b.HighScore() != 2 {
		t.Errorf("second session high score = %d, expected 2", b.HighScore())
	}
}
