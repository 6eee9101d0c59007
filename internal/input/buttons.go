package input

import (
	"sync"
	"time"
)

// Button identifies one of the two physical controls.
type Button int

const (
	// ButtonUp cycles league modes.
	ButtonUp Button = iota
	// ButtonDown toggles favorites-only.
	ButtonDown
)

func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	default:
		return "unknown"
	}
}

func (b Button) valid() bool { return b == ButtonUp || b == ButtonDown }

// ParseButton maps a wire/key name onto a button.
func ParseButton(name string) (Button, bool) {
	switch name {
	case "up", "u", "UP":
		return ButtonUp, true
	case "down", "d", "DOWN":
		return ButtonDown, true
	default:
		return 0, false
	}
}

// Reader reports whether a press edge arrived for the button since the last read.
type Reader interface {
	Edge(b Button) bool
}

// Debouncer rejects edges that arrive within a fixed window of the last accepted edge.
// The window is shared by both buttons.
type Debouncer struct {
	window   time.Duration
	last     time.Time
	accepted bool
}

// NewDebouncer returns a debouncer with the given window.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

// Accept records an edge observed at now and reports whether it passes the window.
// Times must come from a monotonic clock.
func (d *Debouncer) Accept(now time.Time) bool {
	if d.accepted && now.Sub(d.last) < d.window {
		return false
	}
	d.last = now
	d.accepted = true
	return true
}

// Latch collects presses from another goroutine (a browser or keyboard) and
// hands each one to the loop as a single edge. Presses of one button that
// arrive between two reads collapse into one edge.
type Latch struct {
	mu      sync.Mutex
	pending [2]bool
}

// Press records an edge for b.
func (l *Latch) Press(b Button) {
	if !b.valid() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending[b] = true
}

// Edge reports and clears a pending edge for b.
func (l *Latch) Edge(b Button) bool {
	if !b.valid() {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	edge := l.pending[b]
	l.pending[b] = false
	return edge
}

// Readers merges several button sources. Every source is read on each call so
// no source keeps a stale edge.
type Readers []Reader

// Edge reports whether any source saw an edge for b.
func (rs Readers) Edge(b Button) bool {
	edge := false
	for _, r := range rs {
		if r != nil && r.Edge(b) {
			edge = true
		}
	}
	return edge
}
