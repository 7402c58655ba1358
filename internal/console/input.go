package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/benbeisheim/hotseat-chess/internal/model"
)

// ErrQuit is returned for the quit sentinel. It is not a rejected move; the
// caller is expected to stop the session.
var ErrQuit = errors.New("quit")

// ParseMove turns "srcX srcY destX destY" into a move. Range checking is left
// to the game.
func ParseMove(line string) (model.Move, error) {
	line = strings.TrimSpace(line)
	if line == "q" || line == "quit" {
		return model.Move{}, ErrQuit
	}

	fields := strings.Fields(line)
	if len(fields) != 4 {
		return model.Move{}, fmt.Errorf("%w: want 4 coordinates, got %d", model.ErrMalformedMove, len(fields))
	}
	coords := make([]int, 0, 4)
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return model.Move{}, fmt.Errorf("%w: %q is not a number", model.ErrMalformedMove, field)
		}
		coords = append(coords, n)
	}
	return model.NewMove(coords[0], coords[1], coords[2], coords[3]), nil
}
