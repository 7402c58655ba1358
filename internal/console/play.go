package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/benbeisheim/hotseat-chess/internal/model"
)

// Mover is the game as seen by the turn loop.
type Mover interface {
	HandleMove(move model.Move) (model.Move, error)
	Snapshot() model.Snapshot
	CurrentPlayer() int
	IsOver() bool
	Subscribe(fn model.EventHandler)
}

// Play runs the blocking turn loop until the game ends, the input is exhausted
// or the quit sentinel is read. Only the quit sentinel produces ErrQuit; every
// rejected move prints "Invalid Move" and the loop asks again.
func Play(r io.Reader, w io.Writer, game Mover) error {
	renderer := NewRenderer(w)
	// first failed event write, reported at the next render
	var eventErr error
	game.Subscribe(func(e model.Event) {
		if err := renderer.Event(e); err != nil && eventErr == nil {
			eventErr = err
		}
	})
	if err := renderer.Render(game.Snapshot()); err != nil {
		return err
	}

	scanner := bufio.NewScanner(r)
	for !game.IsOver() {
		fmt.Fprintf(w, "Player %d to Move: ", game.CurrentPlayer())
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return scanner.Err()
		}

		move, err := ParseMove(scanner.Text())
		if errors.Is(err, ErrQuit) {
			return ErrQuit
		}
		if err == nil {
			_, err = game.HandleMove(move)
		}
		if err != nil {
			fmt.Fprintln(w, "Invalid Move")
		}
		if eventErr != nil {
			return eventErr
		}
		if err := renderer.Render(game.Snapshot()); err != nil {
			return err
		}
	}
	return nil
}
