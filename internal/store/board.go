package store

import (
	"sync"
	"time"

	"github.com/preston-bernstein/sports-ticker/internal/domain/games"
)

// Snapshot is a read-only view of the ticker session for the status surface.
type Snapshot struct {
	RunID         string        `json:"runId"`
	Games         []games.Game  `json:"games"`
	Cursor        int           `json:"cursor"`
	Mode          string        `json:"mode"`
	FavoritesOnly bool          `json:"favoritesOnly"`
	PollInterval  time.Duration `json:"pollIntervalNs"`
	NextPoll      time.Time     `json:"nextPoll"`
	NextDisplay   time.Time     `json:"nextDisplay"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// Board keeps the latest session snapshot published by the engine loop.
// The loop is the only writer; HTTP handlers read copies.
type Board struct {
	mu    sync.RWMutex
	snap  Snapshot
	index map[string]int
}

// NewBoard constructs an empty Board.
func NewBoard() *Board {
	return &Board{index: make(map[string]int)}
}

// Publish replaces the current snapshot.
func (b *Board) Publish(snap Snapshot) {
	snap.Games = append([]games.Game(nil), snap.Games...)
	index := make(map[string]int, len(snap.Games))
	for i, g := range snap.Games {
		index[g.Identity().String()] = i
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.snap = snap
	b.index = index
}

// Snapshot returns a copy of the current snapshot.
func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := b.snap
	out.Games = append([]games.Game(nil), b.snap.Games...)
	return out
}

// ListGames returns a copy of the current games.
func (b *Board) ListGames() []games.Game {
	return b.Snapshot().Games
}

// GetGame retrieves a game by its identity key (e.g. "NHL-BOS-NYR").
func (b *Board) GetGame(identity string) (games.Game, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	i, ok := b.index[identity]
	if !ok {
		return games.Game{}, false
	}
	return b.snap.Games[i], true
}
