package engine

import (
	"time"

	"github.com/preston-bernstein/sports-ticker/internal/domain/games"
	"github.com/preston-bernstein/sports-ticker/internal/store"
)

// ModeAck describes the filter state shown after an accepted button press.
type ModeAck struct {
	Mode          string
	FavoritesOnly bool
	// TeamsLabel is "MY TEAMS" or "ALL TEAMS".
	TeamsLabel string
}

// Display draws frames. Calls are synchronous and expected to return quickly.
type Display interface {
	// Render draws one game, or the no-games screen when g is nil.
	Render(g *games.Game) error
	RenderAlert(g games.Game) error
	RenderBlank() error
	RenderModeAck(ack ModeAck) error
	// RenderMessage draws a centered title, with an optional subtitle below it.
	RenderMessage(title, subtitle string) error
}

// Clock supplies time and the loop's only way to pause.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// Sink receives session snapshots after every state change.
type Sink interface {
	Publish(snap store.Snapshot)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// SystemClock returns the wall clock.
func SystemClock() Clock { return systemClock{} }
