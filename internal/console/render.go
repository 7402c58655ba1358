package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/benbeisheim/hotseat-chess/internal/model"
)

const (
	ansiReset = "\x1b[0m"
	emptyCell = "_"
)

// ownerColors are the ANSI styles for owner 0 and owner 1 glyphs.
var ownerColors = [2]string{"\x1b[1;37m", "\x1b[1;31m"}

// Renderer writes a text board. Glyphs are always wrapped in ANSI colors; pass
// a colorable.NewNonColorable writer to get plain text.
type Renderer struct {
	w io.Writer
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Render prints rows y=0..7, each cell separated by "|".
func (r *Renderer) Render(s model.Snapshot) error {
	var sb strings.Builder
	for y := 0; y < model.BoardSize; y++ {
		cells := make([]string, 0, model.BoardSize)
		for x := 0; x < model.BoardSize; x++ {
			cells = append(cells, cell(s.Squares[y][x]))
		}
		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteString("\n")
	}
	_, err := io.WriteString(r.w, sb.String())
	return err
}

func cell(p *model.PieceView) string {
	if p == nil {
		return emptyCell
	}
	return Colorize(p.Glyph, p.Owner)
}

func Colorize(glyph string, owner int) string {
	if owner < 0 || owner > 1 {
		return glyph
	}
	return ownerColors[owner] + glyph + ansiReset
}

func (r *Renderer) Event(e model.Event) error {
	var err error
	switch e.Kind {
	case model.EventCapture:
		_, err = fmt.Fprintf(r.w, "Player %d captured Player %d's %s at %s\n", e.Capturer, e.Captured, e.Piece, e.At)
	case model.EventGameOver:
		_, err = fmt.Fprintf(r.w, "Player %d wins\n", e.Capturer)
	}
	return err
}
