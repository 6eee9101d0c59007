// Package web serves the panel to browsers: frames go out as PNG over a
// websocket and button presses come back on the same connection.
package web

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"image"
	"image/png"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/preston-bernstein/sports-ticker/internal/input"
	"github.com/preston-bernstein/sports-ticker/internal/logging"
)

//go:embed index.html
var indexHTML []byte

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
	sendBuffer = 4
	maxMessage = 512
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Message is a client-to-server control message.
type Message struct {
	Type   string `json:"type"`
	Button string `json:"button,omitempty"`
}

// Hub tracks connected browsers, broadcasts frames and collects button presses.
type Hub struct {
	logger  *slog.Logger
	buttons input.Latch

	mu      sync.RWMutex
	clients map[*client]struct{}
	latest  []byte
	closed  bool
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// NewHub returns an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{logger: logger, clients: make(map[*client]struct{})}
}

// Present encodes frame as PNG, keeps it as the latest frame and sends it to
// every client. Clients that cannot keep up are dropped.
func (h *Hub) Present(frame *image.RGBA) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, frame); err != nil {
		return err
	}
	data := buf.Bytes()

	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = data
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.removeLocked(c)
			logging.Debug(h.logger, "dropped slow panel client", slog.Int(logging.FieldCount, len(h.clients)))
		}
	}
	return nil
}

// Edge implements input.Reader.
func (h *Hub) Edge(b input.Button) bool { return h.buttons.Edge(b) }

// Press injects a button edge, as if a browser had sent it.
func (h *Hub) Press(b input.Button) { h.buttons.Press(b) }

// Latest returns the most recent PNG frame, or nil before the first frame.
func (h *Hub) Latest() []byte {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest
}

// Clients reports the number of connected browsers.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		h.removeLocked(c)
	}
}

// Routes mounts the panel page, the websocket and the latest-frame endpoint.
func (h *Hub) Routes(r chi.Router) {
	r.Get("/", h.ServeIndex)
	r.Get("/ws", h.ServeWS)
	r.Get("/frame.png", h.ServeFrame)
}

// ServeIndex writes the emulator page.
func (h *Hub) ServeIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

// ServeFrame writes the latest frame, or 204 before the first one.
func (h *Hub) ServeFrame(w http.ResponseWriter, _ *http.Request) {
	data := h.Latest()
	if data == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(data)
}

// ServeWS upgrades the request and starts the client pumps.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn(h.logger, "websocket upgrade failed", "error", err)
		return
	}

	c := &client{hub: h, conn: conn, send: make(chan []byte, sendBuffer)}
	if !h.register(c) {
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	if h.latest != nil {
		c.send <- h.latest
	}
	logging.Debug(h.logger, "panel client connected", slog.Int(logging.FieldCount, len(h.clients)))
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

func (h *Hub) handle(raw []byte) {
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil || msg.Type != "button" {
		logging.Debug(h.logger, "ignored panel message", slog.Int("bytes", len(raw)))
		return
	}
	b, ok := input.ParseButton(msg.Button)
	if !ok {
		logging.Debug(h.logger, "unknown panel button", slog.String("button", msg.Button))
		return
	}
	h.buttons.Press(b)
}

func (c *client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessage)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logging.Debug(c.hub.logger, "websocket read failed", "error", err)
			}
			return
		}
		c.hub.handle(message)
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
