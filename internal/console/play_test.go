package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/benbeisheim/hotseat-chess/internal/model"
	"github.com/benbeisheim/hotseat-chess/internal/testutil"
)

// localGame adapts a bare model.Game to Mover.
type localGame struct {
	*model.Game
}

func (g localGame) HandleMove(move model.Move) (model.Move, error) {
	return g.MakeMove(move)
}

func TestPlay(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantErr     error
		wantInvalid int
		wantOver    bool
		wantPlayer  int
		contains    []string
	}{
		{
			name:       "quit",
			input:      "3 1 3 2\nq\n",
			wantErr:    ErrQuit,
			wantPlayer: 1,
			contains:   []string{"Player 0 to Move: ", "Player 1 to Move: "},
		},
		{
			name:        "rejections keep the turn",
			input:       "9 0 3 3\nhello\n3 6 3 5\n3 1 3 5\nq\n",
			wantErr:     ErrQuit,
			wantInvalid: 4,
			wantPlayer:  0,
		},
		{
			name:       "end of input",
			input:      "3 1 3 2\n",
			wantPlayer: 1,
		},
		{
			name:       "king capture ends the loop",
			input:      "4 0 4 7\n3 6 3 5\n",
			wantOver:   true,
			wantPlayer: 1,
			contains:   []string{"Player 0 captured Player 1's king at 4, 7", "Player 0 wins"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := localGame{model.NewGame()}
			var out bytes.Buffer

			err := Play(strings.NewReader(tt.input), &out, game)
			if tt.wantErr == nil {
				testutil.AssertNoError(t, err)
			} else if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Play() err = %v; want %v", err, tt.wantErr)
			}

			got := out.String()
			testutil.AssertEqual(t, strings.Count(got, "Invalid Move"), tt.wantInvalid, "invalid move count")
			testutil.AssertEqual(t, game.IsOver(), tt.wantOver, "game over")
			testutil.AssertEqual(t, game.CurrentPlayer(), tt.wantPlayer, "current player")
			for _, s := range tt.contains {
				testutil.AssertContains(t, got, s)
			}
		})
	}
}

func TestPlay_StopsReadingAfterGameOver(t *testing.T) {
	game := localGame{model.NewGame()}
	var out bytes.Buffer

	err := Play(strings.NewReader("4 0 4 7\nq\n"), &out, game)

	// the quit line is never consumed
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, strings.Count(out.String(), "to Move: "), 1)
}

// failingWriter rejects any write containing bad and accepts the rest.
type failingWriter struct {
	bad string
	out bytes.Buffer
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if strings.Contains(string(p), w.bad) {
		return 0, errors.New("broken pipe")
	}
	return w.out.Write(p)
}

func TestPlay_ReportsEventWriteError(t *testing.T) {
	game := localGame{model.NewGame()}
	w := &failingWriter{bad: "captured"}

	err := Play(strings.NewReader("0 0 0 6\nq\n"), w, game)

	if err == nil || errors.Is(err, ErrQuit) {
		t.Fatalf("Play() err = %v; want the write error", err)
	}
	testutil.AssertContains(t, err.Error(), "broken pipe")
	// the move itself went through
	testutil.AssertEqual(t, game.CurrentPlayer(), 1)
}
