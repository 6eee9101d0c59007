package server

import (
	"log/slog"

	"github.com/preston-bernstein/sports-ticker/internal/config"
	"github.com/preston-bernstein/sports-ticker/internal/input"
	"github.com/preston-bernstein/sports-ticker/internal/render/panel"
	"github.com/preston-bernstein/sports-ticker/internal/render/terminal"
	"github.com/preston-bernstein/sports-ticker/internal/render/web"
)

var openTerminal = terminal.Open

// displayStack is the panel output and button input of the process. The web
// panel is always served; the terminal panel is added when selected.
type displayStack struct {
	display *panel.Display
	buttons input.Reader
	hub     *web.Hub
	term    *terminal.Panel
}

func buildDisplay(cfg config.DisplayConfig, logger *slog.Logger, quit func()) (displayStack, error) {
	hub := web.NewHub(logger)
	presenters := panel.Presenters{hub}
	readers := input.Readers{hub}

	var term *terminal.Panel
	if cfg.Backend == "terminal" {
		p, err := openTerminal(logger, quit)
		if err != nil {
			hub.Close()
			return displayStack{}, err
		}
		term = p
		presenters = append(presenters, term)
		readers = append(readers, term)
	}

	painter := panel.NewPainter(panel.NewLogoStore(cfg.LogoDir, logger))
	return displayStack{
		display: panel.NewDisplay(painter, presenters),
		buttons: readers,
		hub:     hub,
		term:    term,
	}, nil
}

func (d displayStack) close() {
	if d.hub != nil {
		d.hub.Close()
	}
	if d.term != nil {
		d.term.Close()
	}
}
