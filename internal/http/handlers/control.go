package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/sports-ticker/internal/http/requestutil"
	"github.com/preston-bernstein/sports-ticker/internal/input"
	"github.com/preston-bernstein/sports-ticker/internal/logging"
)

// Presser accepts button edges from outside the engine loop.
type Presser interface {
	Press(b input.Button)
}

// ControlHandler lets an operator press the panel buttons remotely.
// Requests must carry "Authorization: Bearer <token>"; an empty token disables it.
type ControlHandler struct {
	buttons Presser
	token   string
	logger  *slog.Logger
}

// NewControlHandler constructs a ControlHandler.
func NewControlHandler(buttons Presser, token string, logger *slog.Logger) *ControlHandler {
	return &ControlHandler{buttons: buttons, token: token, logger: logger}
}

// PressButton handles POST /api/buttons/{button}.
func (h *ControlHandler) PressButton(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	if !h.authorize(r) {
		logging.Warn(logger, "control unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", logger)
		return
	}
	if h.buttons == nil {
		writeError(w, r, http.StatusServiceUnavailable, "buttons not configured", logger)
		return
	}

	name := chi.URLParam(r, "button")
	b, ok := input.ParseButton(name)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "unknown button", logger)
		return
	}
	h.buttons.Press(b)
	logging.Info(logger, "remote button press", slog.String("button", b.String()))
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted", "button": b.String()}, logger)
}

func (h *ControlHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got := r.Header.Get("Authorization")
	want := "Bearer " + h.token
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
