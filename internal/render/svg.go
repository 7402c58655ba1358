// Package render draws board snapshots as SVG for the spectator surface.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/benbeisheim/hotseat-chess/internal/model"
)

const (
	SquareSize = 48
	BoardSide  = SquareSize * model.BoardSize
)

var (
	squareFill = [2]string{"fill:#f0d9b5", "fill:#b58863"}
	glyphFill  = [2]string{"fill:#ffffff;stroke:#000000;stroke-width:1", "fill:#8b0000;stroke:#000000;stroke-width:1"}
)

// SVG writes the snapshot with row y=0 at the top, matching the text board.
func SVG(w io.Writer, s model.Snapshot) {
	canvas := svg.New(w)
	canvas.Start(BoardSide, BoardSide)
	canvas.Title(title(s))
	for y := 0; y < model.BoardSize; y++ {
		for x := 0; x < model.BoardSize; x++ {
			px, py := x*SquareSize, y*SquareSize
			canvas.Rect(px, py, SquareSize, SquareSize, squareFill[(x+y)%2])
			piece := s.Squares[y][x]
			if piece == nil {
				continue
			}
			canvas.Text(px+SquareSize/2, py+SquareSize*2/3, piece.Glyph,
				"text-anchor:middle;font-family:sans-serif;font-weight:bold;font-size:28px;"+glyphFill[piece.Owner%2])
		}
	}
	canvas.End()
}

func title(s model.Snapshot) string {
	if s.IsOver && s.Winner != nil {
		return fmt.Sprintf("Player %d wins", *s.Winner)
	}
	return fmt.Sprintf("Player %d to move", s.ToMove)
}
