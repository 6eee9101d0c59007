package panel

import (
	"image"
	"image/color"
	"testing"

	"github.com/preston-bernstein/sports-ticker/internal/domain/leagues"
	"github.com/preston-bernstein/sports-ticker/internal/render"
)

type solidMarks struct {
	c     color.RGBA
	calls int
}

func (s *solidMarks) Mark(_ leagues.Code, _ string, size int) image.Image {
	s.calls++
	return image.NewUniform(s.c)
}

func countColor(img *image.RGBA, c color.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestPaintBlankIsBlack(t *testing.T) {
	frame := NewPainter(nil).Paint(render.BlankScene())
	if got := frame.Bounds(); got.Dx() != render.Width || got.Dy() != render.Height {
		t.Fatalf("unexpected bounds %v", got)
	}
	if n := countColor(frame, black); n != render.Width*render.Height {
		t.Fatalf("expected all black, got %d black pixels", n)
	}
}

func TestPaintMessageDrawsText(t *testing.T) {
	frame := NewPainter(nil).Paint(render.MessageScene("HELLO", ""))
	if countColor(frame, render.Yellow) == 0 {
		t.Fatalf("expected yellow glyph pixels")
	}
}

func TestPaintPlaceholderMark(t *testing.T) {
	scene := render.Scene{Marks: []render.Mark{{League: leagues.NHL, Team: "BOS", X: 4, Y: 10, Size: 24}}}
	frame := NewPainter(nil).Paint(scene)

	outline := color.RGBA{84, 62, 1, 255}
	if got := frame.RGBAAt(4, 10); got != outline {
		t.Fatalf("expected outline at corner, got %+v", got)
	}
	if got := frame.RGBAAt(6, 12); got != TeamColor("BOS") {
		t.Fatalf("expected fill inside mark, got %+v", got)
	}
	if countColor(frame, render.White) == 0 {
		t.Fatalf("expected white initial")
	}
}

func TestPaintUsesLogo(t *testing.T) {
	marks := &solidMarks{c: color.RGBA{1, 2, 3, 255}}
	scene := render.Scene{Marks: []render.Mark{{League: leagues.NHL, Team: "BOS", X: 100, Y: 10, Size: 24}}}
	frame := NewPainter(marks).Paint(scene)

	if marks.calls != 1 {
		t.Fatalf("expected one logo lookup, got %d", marks.calls)
	}
	if n := countColor(frame, marks.c); n != 24*24 {
		t.Fatalf("expected 576 logo pixels, got %d", n)
	}
}
