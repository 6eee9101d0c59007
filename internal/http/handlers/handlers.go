package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/sports-ticker/internal/domain/games"
	"github.com/preston-bernstein/sports-ticker/internal/logging"
	"github.com/preston-bernstein/sports-ticker/internal/poller"
	"github.com/preston-bernstein/sports-ticker/internal/store"
)

// SessionSource is the read side of the session board.
type SessionSource interface {
	Snapshot() store.Snapshot
	GetGame(identity string) (games.Game, bool)
}

// SessionResponse is the /api/session payload.
type SessionResponse struct {
	RunID         string       `json:"runId"`
	Mode          string       `json:"mode"`
	FavoritesOnly bool         `json:"favoritesOnly"`
	Cursor        int          `json:"cursor"`
	Current       *games.Game  `json:"current,omitempty"`
	Games         []games.Game `json:"games"`
	PollInterval  string       `json:"pollInterval"`
	NextPoll      time.Time    `json:"nextPoll"`
	NextDisplay   time.Time    `json:"nextDisplay"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// GamesResponse is the /api/games payload.
type GamesResponse struct {
	Count int          `json:"count"`
	Games []games.Game `json:"games"`
}

// Handler serves the read-only status surface.
type Handler struct {
	board    SessionSource
	statusFn func() poller.Status
	logger   *slog.Logger
}

// NewHandler constructs a Handler. statusFn may be nil, in which case the
// service always reports ready.
func NewHandler(board SessionSource, statusFn func() poller.Status, logger *slog.Logger) *Handler {
	return &Handler{board: board, statusFn: statusFn, logger: logger}
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the poller has succeeded recently.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Session returns the current session: games, cursor, mode and deadlines.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshot()
	resp := SessionResponse{
		RunID:         snap.RunID,
		Mode:          snap.Mode,
		FavoritesOnly: snap.FavoritesOnly,
		Cursor:        snap.Cursor,
		Games:         nonNil(snap.Games),
		PollInterval:  snap.PollInterval.String(),
		NextPoll:      snap.NextPoll,
		NextDisplay:   snap.NextDisplay,
		UpdatedAt:     snap.UpdatedAt,
	}
	if snap.Cursor >= 0 && snap.Cursor < len(snap.Games) {
		current := snap.Games[snap.Cursor]
		resp.Current = &current
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// Games lists the games currently in rotation.
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	list := nonNil(h.snapshot().Games)
	logging.Debug(loggerFromContext(r, h.logger), "served games", slog.Int(logging.FieldCount, len(list)))
	writeJSON(w, http.StatusOK, GamesResponse{Count: len(list), Games: list}, h.logger)
}

// GameByIdentity returns one game by its identity key, e.g. NHL-BOS-NYR.
func (h *Handler) GameByIdentity(w http.ResponseWriter, r *http.Request) {
	id, err := url.PathUnescape(chi.URLParam(r, "identity"))
	if err != nil || id == "" {
		writeError(w, r, http.StatusBadRequest, "invalid game identity", h.logger)
		return
	}
	if h.board == nil {
		writeError(w, r, http.StatusNotFound, "game not found", h.logger)
		return
	}
	game, ok := h.board.GetGame(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "game not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, game, h.logger)
}

func (h *Handler) snapshot() store.Snapshot {
	if h.board == nil {
		return store.Snapshot{}
	}
	return h.board.Snapshot()
}

func nonNil(list []games.Game) []games.Game {
	if list == nil {
		return []games.Game{}
	}
	return list
}
