package model

import (
	"errors"
	"fmt"
)

// Every rejected move resolves to one of these. Use errors.Is to tell them apart.
var (
	ErrMalformedMove = errors.New("malformed move")
	ErrOutOfRange    = errors.New("coordinates out of range")
	ErrNoPiece       = errors.New("no piece at source square")
	ErrIllegalMove   = errors.New("illegal move")
	ErrGameOver      = errors.New("game is over")
)

// MoveError carries the rejected move and the player who tried it.
type MoveError struct {
	Move   Move
	Player int
	Err    error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("player %d, move %q: %v", e.Player, e.Move.String(), e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
