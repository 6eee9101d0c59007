package enginetest

import (
	"strings"
	"sync"

	"github.com/preston-bernstein/sports-ticker/internal/domain/games"
	"github.com/preston-bernstein/sports-ticker/internal/engine"
)

// Frame is one recorded display call.
type Frame struct {
	Kind string // game, none, alert, blank, mode, message
	Game games.Game
	Ack  engine.ModeAck
	Text string
	Sub  string
}

// RecordingDisplay is an engine.Display that keeps every frame.
type RecordingDisplay struct {
	mu     sync.Mutex
	Frames []Frame
	Err    error
}

func (d *RecordingDisplay) add(f Frame) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Frames = append(d.Frames, f)
	return d.Err
}

func (d *RecordingDisplay) Render(g *games.Game) error {
	if g == nil {
		return d.add(Frame{Kind: "none"})
	}
	return d.add(Frame{Kind: "game", Game: *g})
}

func (d *RecordingDisplay) RenderAlert(g games.Game) error {
	return d.add(Frame{Kind: "alert", Game: g})
}

func (d *RecordingDisplay) RenderBlank() error {
	return d.add(Frame{Kind: "blank"})
}

func (d *RecordingDisplay) RenderModeAck(ack engine.ModeAck) error {
	return d.add(Frame{Kind: "mode", Ack: ack})
}

func (d *RecordingDisplay) RenderMessage(title, subtitle string) error {
	return d.add(Frame{Kind: "message", Text: title, Sub: subtitle})
}

// Kinds returns the frame kinds in order, space separated.
func (d *RecordingDisplay) Kinds() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	parts := make([]string, 0, len(d.Frames))
	for _, f := range d.Frames {
		parts = append(parts, f.Kind)
	}
	return strings.Join(parts, " ")
}

// Count returns how many frames of kind were recorded.
func (d *RecordingDisplay) Count(kind string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, f := range d.Frames {
		if f.Kind == kind {
			n++
		}
	}
	return n
}

// Last returns the most recent frame of kind.
func (d *RecordingDisplay) Last(kind string) (Frame, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := len(d.Frames) - 1; i >= 0; i-- {
		if d.Frames[i].Kind == kind {
			return d.Frames[i], true
		}
	}
	return Frame{}, false
}

// Reset drops recorded frames.
func (d *RecordingDisplay) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Frames = nil
}
