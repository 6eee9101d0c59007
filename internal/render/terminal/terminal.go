// Package terminal draws the panel in a terminal with half-block cells, two
// pixel rows per text row, and reads the buttons from the keyboard.
package terminal

import (
	"image"
	"log/slog"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/preston-bernstein/sports-ticker/internal/input"
	"github.com/preston-bernstein/sports-ticker/internal/logging"
)

const upperHalf = '▀'

// Panel is a terminal-backed display and button source.
type Panel struct {
	screen  tcell.Screen
	logger  *slog.Logger
	quit    func()
	buttons input.Latch

	closeOnce sync.Once
}

// New initializes screen. quit is called when the user asks to exit.
func New(screen tcell.Screen, logger *slog.Logger, quit func()) (*Panel, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	screen.Clear()
	return &Panel{screen: screen, logger: logger, quit: quit}, nil
}

// Open creates a panel on the controlling terminal.
func Open(logger *slog.Logger, quit func()) (*Panel, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return New(screen, logger, quit)
}

// Present draws frame, clipped to the terminal size.
func (p *Panel) Present(frame *image.RGBA) error {
	b := frame.Bounds()
	cols, rows := p.screen.Size()
	for row := 0; row < rows && b.Min.Y+row*2 < b.Max.Y; row++ {
		top := b.Min.Y + row*2
		for col := 0; col < cols && b.Min.X+col < b.Max.X; col++ {
			x := b.Min.X + col
			upper := frame.RGBAAt(x, top)
			lower := upper
			if top+1 < b.Max.Y {
				lower = frame.RGBAAt(x, top+1)
			}
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(upper.R), int32(upper.G), int32(upper.B))).
				Background(tcell.NewRGBColor(int32(lower.R), int32(lower.G), int32(lower.B)))
			p.screen.SetContent(col, row, upperHalf, nil, style)
		}
	}
	p.screen.Show()
	return nil
}

// Edge implements input.Reader.
func (p *Panel) Edge(b input.Button) bool { return p.buttons.Edge(b) }

// Press injects a button edge, as if the key had been pressed.
func (p *Panel) Press(b input.Button) { p.buttons.Press(b) }

// Run handles keyboard events until the screen is closed.
func (p *Panel) Run() {
	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			p.handleKey(ev)
		case *tcell.EventResize:
			p.screen.Sync()
		}
	}
}

func (p *Panel) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		p.press(input.ButtonUp)
	case tcell.KeyDown:
		p.press(input.ButtonDown)
	case tcell.KeyCtrlC, tcell.KeyEscape:
		p.requestQuit()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			p.requestQuit()
		default:
			if b, ok := input.ParseButton(string(ev.Rune())); ok {
				p.press(b)
			}
		}
	}
}

func (p *Panel) press(b input.Button) {
	logging.Debug(p.logger, "terminal button", slog.String("button", b.String()))
	p.buttons.Press(b)
}

func (p *Panel) requestQuit() {
	logging.Info(p.logger, "quit requested from terminal")
	if p.quit != nil {
		p.quit()
	}
}

// Close restores the terminal. Run returns afterwards.
func (p *Panel) Close() {
	p.closeOnce.Do(p.screen.Fini)
}
