package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/sports-ticker/internal/http/handlers"
	"github.com/preston-bernstein/sports-ticker/internal/http/middleware"
	"github.com/preston-bernstein/sports-ticker/internal/metrics"
)

// PanelRoutes is implemented by display backends that serve pages of their own.
type PanelRoutes interface {
	Routes(r chi.Router)
}

// RouterConfig collects the route handlers. Nil Control or Panel leaves their routes out.
type RouterConfig struct {
	Handler *handlers.Handler
	Control *handlers.ControlHandler
	Panel   PanelRoutes
	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

// NewRouter registers the status surface, remote controls and panel routes.
func NewRouter(cfg RouterConfig) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.LoggingMiddleware(cfg.Logger, cfg.Metrics))

	h := cfg.Handler
	if h == nil {
		h = handlers.NewHandler(nil, nil, cfg.Logger)
	}
	r.Get("/healthz", h.Health)
	r.Get("/readyz", h.Ready)
	r.Route("/api", func(r chi.Router) {
		r.Get("/session", h.Session)
		r.Get("/games", h.Games)
		r.Get("/games/{identity}", h.GameByIdentity)
		if cfg.Control != nil {
			r.Post("/buttons/{button}", cfg.Control.PressButton)
		}
	})
	if cfg.Panel != nil {
		cfg.Panel.Routes(r)
	}
	return r
}
