package kitty

import (
	"strconv"
	"strings"
)

// loadHighScore reads the persisted high score. Missing, unreadable or
// malformed values count as 0; storage trouble never reaches gameplay.
func (e *Engine) loadHighScore() int {
	if e.store == nil {
		return 0
	}
	key := e.cfg.Storage.HighScoreKey

	raw, ok, err := e.store.Get(key)
	if err != nil {
		e.logger.Warn("could not read high score", "key", key, "error", err)
		return 0
	}
	if !ok {
		return 0
	}

	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		e.logger.Warn("ignoring malformed high score", "key", key, "value", raw)
		return 0
	}
	return v
}

// maxStore is implemented by stores that can raise a stored score
// atomically, keeping whichever of the stored and offered value is larger.
type maxStore interface {
	SetMax(key string, value int) (int, error)
}

// saveHighScore persists the high score without ever lowering the stored
// value, which another session sharing the key may have raised since New.
// The engine adopts the stored value when it is larger. Failures are logged
// and dropped.
func (e *Engine) saveHighScore() {
	if e.store == nil {
		return
	}
	key := e.cfg.Storage.HighScoreKey

	if ms, ok := e.store.(maxStore); ok {
		best, err := ms.SetMax(key, e.highScore)
		if err != nil {
			e.logger.Warn("could not save high score", "key", key, "score", e.highScore, "error", err)
			return
		}
		e.highScore = max(e.highScore, best)
		return
	}

	if stored := e.loadHighScore(); stored >= e.highScore {
		e.highScore = stored
		return
	}
	if err := e.store.Set(key, strconv.Itoa(e.highScore)); err != nil {
		e.logger.Warn("could not save high score", "key", key, "score", e.highScore, "error", err)
	}
}
