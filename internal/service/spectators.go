package service

import (
	"errors"
	"log"
	"sync"

	"github.com/benbeisheim/hotseat-chess/internal/ws"
)

var ErrSpectatorExists = errors.New("spectator already connected")

// Conn is the part of a websocket connection the hub writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// SpectatorHub holds the read-only connections watching the session.
type SpectatorHub struct {
	connections map[string]Conn // spectatorID -> connection
	mu          sync.RWMutex
	logger      *log.Logger
}

func NewSpectatorHub(logger *log.Logger) *SpectatorHub {
	return &SpectatorHub{
		connections: make(map[string]Conn),
		logger:      logger,
	}
}

// Register adds conn under spectatorID. A second connection for the same id is
// refused and the existing one is kept.
func (h *SpectatorHub) Register(spectatorID string, conn Conn) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.connections[spectatorID]; exists {
		return ErrSpectatorExists
	}
	h.connections[spectatorID] = conn
	h.logger.Printf("registered spectator %s (%d watching)", spectatorID, len(h.connections))
	return nil
}

func (h *SpectatorHub) Unregister(spectatorID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.connections[spectatorID]; exists {
		delete(h.connections, spectatorID)
		h.logger.Printf("unregistered spectator %s (%d watching)", spectatorID, len(h.connections))
	}
}

func (h *SpectatorHub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// Send writes msg to one spectator.
func (h *SpectatorHub) Send(spectatorID string, msg ws.Message) error {
	h.mu.RLock()
	conn, exists := h.connections[spectatorID]
	h.mu.RUnlock()
	if !exists {
		return nil
	}
	if err := conn.WriteJSON(msg); err != nil {
		h.drop(spectatorID, conn, err)
		return err
	}
	return nil
}

// Broadcast writes msg to every spectator. Connections that fail a write are
// closed and removed.
func (h *SpectatorHub) Broadcast(msg ws.Message) {
	// Copy under the read lock, write without holding it
	h.mu.RLock()
	active := make(map[string]Conn, len(h.connections))
	for id, conn := range h.connections {
		active[id] = conn
	}
	h.mu.RUnlock()

	for id, conn := range active {
		if err := conn.WriteJSON(msg); err != nil {
			h.drop(id, conn, err)
		}
	}
}

func (h *SpectatorHub) drop(spectatorID string, conn Conn, cause error) {
	h.logger.Printf("dropping spectator %s: %v", spectatorID, cause)
	h.mu.Lock()
	// only remove it if it wasn't replaced in the meantime
	if h.connections[spectatorID] == conn {
		delete(h.connections, spectatorID)
	}
	h.mu.Unlock()
	conn.Close()
}
