package controller

import (
	"errors"
	"log"
	"sync"

	"github.com/benbeisheim/hotseat-chess/internal/middleware"
	"github.com/benbeisheim/hotseat-chess/internal/service"
	"github.com/benbeisheim/hotseat-chess/internal/ws"
	"github.com/gofiber/websocket/v2"
)

// lockedConn serializes writes; broadcasts and error replies come from
// different goroutines.
type lockedConn struct {
	*websocket.Conn
	mu sync.Mutex
}

func (c *lockedConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteJSON(v)
}

func (c *lockedConn) WriteMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

type WebSocketController struct {
	gameService *service.GameService
	logger      *log.Logger
}

func NewWebSocketController(gameService *service.GameService, logger *log.Logger) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
		logger:      logger,
	}
}

// HandleConnection is called when a new spectator connection is established.
// Spectators only receive; anything they send is answered with an error.
func (wsc *WebSocketController) HandleConnection(raw *websocket.Conn) {
	spectatorID, _ := raw.Locals(middleware.WSSpectatorIDKey).(string)
	c := &lockedConn{Conn: raw}

	if err := wsc.gameService.RegisterSpectator(spectatorID, c); err != nil {
		if errors.Is(err, service.ErrSpectatorExists) {
			c.WriteMessage(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "connection already exists"),
			)
		}
		wsc.logger.Printf("failed to register spectator %s: %v", spectatorID, err)
		c.Close()
		return
	}
	defer wsc.gameService.UnregisterSpectator(spectatorID)

	for {
		messageType, _, err := c.ReadMessage()
		if err != nil {
			wsc.logger.Printf("spectator %s read: %v", spectatorID, err)
			return
		}
		if messageType == websocket.TextMessage || messageType == websocket.BinaryMessage {
			wsc.sendError(c, "spectators cannot move")
		}
	}
}

func (wsc *WebSocketController) sendError(c *lockedConn, errorMsg string) {
	msg, err := ws.NewMessage(ws.MessageTypeError, wsc.gameService.ID, errorMsg)
	if err != nil {
		return
	}
	if err := c.WriteJSON(msg); err != nil {
		wsc.logger.Printf("failed to send error: %v", err)
	}
}
