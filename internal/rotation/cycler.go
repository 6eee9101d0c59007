// Package rotation advances a cursor through the current games on its own
// cadence, independent of how often the collection is refreshed.
package rotation

import (
	"time"

	"github.com/preston-bernstein/sports-ticker/internal/domain/games"
)

const defaultInterval = 5 * time.Second

// Current returns the game at cursor, or nil when the collection is empty.
// Out-of-range cursors are clamped first.
func Current(list []games.Game, cursor int) *games.Game {
	if len(list) == 0 {
		return nil
	}
	g := list[Clamp(cursor, len(list))]
	return &g
}

// Advance returns the cursor after cursor, wrapping at the end of list.
func Advance(list []games.Game, cursor int) int {
	if len(list) == 0 {
		return 0
	}
	return (Clamp(cursor, len(list)) + 1) % len(list)
}

// Clamp keeps cursor inside [0, n). A shrunken collection keeps the viewer
// near where they were rather than jumping back to the start.
func Clamp(cursor, n int) int {
	if n <= 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

// Cycler owns the display deadline.
type Cycler struct {
	interval time.Duration
	next     time.Time
}

// NewCycler returns a Cycler that is due immediately.
func NewCycler(interval time.Duration) *Cycler {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Cycler{interval: interval}
}

// ShouldAdvance reports whether the display deadline has passed.
func (c *Cycler) ShouldAdvance(now time.Time) bool {
	return c.next.IsZero() || !now.Before(c.next)
}

// Schedule moves the deadline one interval past the previous one, or past now
// if the loop has fallen a whole interval behind.
func (c *Cycler) Schedule(now time.Time) {
	if c.next.IsZero() {
		c.next = now.Add(c.interval)
		return
	}
	c.next = c.next.Add(c.interval)
	if !c.next.After(now) {
		c.next = now.Add(c.interval)
	}
}

// Restart makes the cycler due at now.
func (c *Cycler) Restart(now time.Time) {
	c.next = now
}

// Interval returns the display cadence.
func (c *Cycler) Interval() time.Duration { return c.interval }

// Next returns the display deadline.
func (c *Cycler) Next() time.Time { return c.next }
