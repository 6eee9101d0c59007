// Package panel rasterizes scenes to 128x64 frames and hands them to an
// output backend.
package panel

import (
	"errors"
	"image"
	"sync"

	"github.com/preston-bernstein/sports-ticker/internal/domain/games"
	"github.com/preston-bernstein/sports-ticker/internal/engine"
	"github.com/preston-bernstein/sports-ticker/internal/render"
)

// Presenter shows finished frames.
type Presenter interface {
	Present(frame *image.RGBA) error
}

// Presenters fans a frame out to each backend and joins their errors.
type Presenters []Presenter

// Present implements Presenter.
func (ps Presenters) Present(frame *image.RGBA) error {
	var errs []error
	for _, p := range ps {
		if err := p.Present(frame); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Display adapts a Painter and Presenter to engine.Display.
type Display struct {
	painter *Painter
	out     Presenter

	mu   sync.Mutex
	last *image.RGBA
}

var _ engine.Display = (*Display)(nil)

// NewDisplay paints with painter and presents to out.
func NewDisplay(painter *Painter, out Presenter) *Display {
	return &Display{painter: painter, out: out}
}

func (d *Display) Render(g *games.Game) error           { return d.show(render.GameScene(g)) }
func (d *Display) RenderAlert(g games.Game) error       { return d.show(render.AlertScene(g)) }
func (d *Display) RenderBlank() error                   { return d.show(render.BlankScene()) }
func (d *Display) RenderModeAck(a engine.ModeAck) error { return d.show(render.ModeScene(a)) }
func (d *Display) RenderMessage(title, subtitle string) error {
	return d.show(render.MessageScene(title, subtitle))
}

// Last returns the most recently presented frame.
func (d *Display) Last() *image.RGBA {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last
}

func (d *Display) show(s render.Scene) error {
	frame := d.painter.Paint(s)
	d.mu.Lock()
	d.last = frame
	d.mu.Unlock()
	if d.out == nil {
		return nil
	}
	return d.out.Present(frame)
}
