package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages pushed to spectators
type MessageType string

const (
	MessageTypeGameState MessageType = "gameState"
	MessageTypeCapture   MessageType = "capture"
	MessageTypeGameOver  MessageType = "gameOver"
	MessageTypeError     MessageType = "error"
)

// Message is the envelope of everything pushed to a spectator, tagged with
// the session it belongs to.
type Message struct {
	Type      MessageType     `json:"type"`
	SessionID string          `json:"sessionId"`
	Payload   json.RawMessage `json:"payload"`
}

// NewMessage marshals payload into a message envelope.
func NewMessage(t MessageType, sessionID string, payload interface{}) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, SessionID: sessionID, Payload: raw}, nil
}
