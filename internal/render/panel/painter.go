package panel

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/preston-bernstein/sports-ticker/internal/render"
)

var black = color.RGBA{0, 0, 0, 255}

// Painter rasterizes scenes onto a panel-sized frame.
type Painter struct {
	marks MarkSource
	face  font.Face
}

// NewPainter draws team marks from marks; nil means every team gets a placeholder.
func NewPainter(marks MarkSource) *Painter {
	return &Painter{marks: marks, face: basicfont.Face7x13}
}

// Paint returns a new frame containing s.
func (p *Painter) Paint(s render.Scene) *image.RGBA {
	frame := image.NewRGBA(image.Rect(0, 0, render.Width, render.Height))
	draw.Draw(frame, frame.Bounds(), image.NewUniform(black), image.Point{}, draw.Src)

	for _, m := range s.Marks {
		p.drawMark(frame, m)
	}
	for _, t := range s.Texts {
		x := t.X
		if t.Centered {
			x = render.CenterX(t.Value)
		}
		p.drawText(frame, t.Value, x, t.Y, t.Color)
	}
	return frame
}

func (p *Painter) drawText(dst draw.Image, value string, x, y int, c color.Color) {
	if value == "" {
		return
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: p.face,
		Dot:  fixed.P(x, y+p.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(value)
}

func (p *Painter) drawMark(dst *image.RGBA, m render.Mark) {
	rect := image.Rect(m.X, m.Y, m.X+m.Size, m.Y+m.Size)
	if p.marks != nil {
		if logo := p.marks.Mark(m.League, m.Team, m.Size); logo != nil {
			draw.Draw(dst, rect, logo, logo.Bounds().Min, draw.Src)
			return
		}
	}

	fill := TeamColor(m.Team)
	draw.Draw(dst, rect, image.NewUniform(fill), image.Point{}, draw.Src)
	outline := color.RGBA{fill.R / 3, fill.G / 3, fill.B / 3, 255}
	for x := rect.Min.X; x < rect.Max.X; x++ {
		dst.SetRGBA(x, rect.Min.Y, outline)
		dst.SetRGBA(x, rect.Max.Y-1, outline)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		dst.SetRGBA(rect.Min.X, y, outline)
		dst.SetRGBA(rect.Max.X-1, y, outline)
	}
	if m.Team == "" {
		return
	}
	initial := string([]rune(m.Team)[0])
	p.drawText(dst,
		initial,
		m.X+(m.Size-render.GlyphWidth)/2,
		m.Y+(m.Size-render.LineHeight)/2,
		render.White,
	)
}
