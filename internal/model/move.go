package model

import "fmt"

// Move is a request to relocate the piece on From to To.
type Move struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

func NewMove(srcX, srcY, destX, destY int) Move {
	return Move{
		From: Position{X: srcX, Y: srcY},
		To:   Position{X: destX, Y: destY},
	}
}

func (m Move) InBounds() bool {
	return m.From.InBounds() && m.To.InBounds()
}

func (m Move) String() string {
	return fmt.Sprintf("%d %d %d %d", m.From.X, m.From.Y, m.To.X, m.To.Y)
}
