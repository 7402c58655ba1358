package model

type EventKind string

const (
	EventCapture  EventKind = "capture"
	EventGameOver EventKind = "gameOver"
)

// Event is emitted by Game after a capture and once more when that capture
// ends the game.
type Event struct {
	Kind     EventKind `json:"kind"`
	Capturer int       `json:"capturer"`
	Captured int       `json:"captured"`
	Piece    PieceType `json:"piece"`
	At       Position  `json:"at"`
}

type EventHandler func(Event)
