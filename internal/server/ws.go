package server

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/raysh454/linkscope/internal/logging"
	"github.com/raysh454/linkscope/internal/model"
)

// wsHub fans completed scan results out to every connected websocket
// client. Writes to a broken connection evict it from the hub.
type wsHub struct {
	mu     sync.Mutex
	conns  map[*websocket.Conn]struct{}
	logger logging.Logger
}

func newWSHub(logger logging.Logger) *wsHub {
	return &wsHub{
		conns:  make(map[*websocket.Conn]struct{}),
		logger: logger.With(logging.Field{Key: "component", Value: "ws-hub"}),
	}
}

func (h *wsHub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = struct{}{}
}

func (h *wsHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
}

func (h *wsHub) broadcast(result *model.ScanResult) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		if err := conn.WriteJSON(result); err != nil {
			// Assume client disconnected; drop it.
			h.logger.Debug("dropping websocket client", logging.Field{Key: "error", Value: err.Error()})
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

func (h *wsHub) close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		conn.Close()
		delete(h.conns, conn)
	}
}

// handleScansWS godoc
// @Summary Stream completed scans
// @Description Upgrades to a WebSocket and pushes every completed scan result as a JSON message.
// @Router /ws/scans [get]
func (s *Server) handleScansWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrading to websocket", logging.Field{Key: "error", Value: err.Error()})
		return
	}

	s.hub.add(conn)
	defer func() {
		s.hub.remove(conn)
		conn.Close()
	}()

	// Block reading until the client goes away; inbound messages are
	// ignored, the feed is one-way.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
