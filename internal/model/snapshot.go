package model

type PieceView struct {
	Type     PieceType `json:"type"`
	Glyph    string    `json:"glyph"`
	Owner    int       `json:"owner"`
	Position Position  `json:"position"`
	Moves    int       `json:"moves"`
}

// Snapshot is a detached copy of the board for display collaborators. Nothing
// in it aliases the live game.
type Snapshot struct {
	SessionID   string                           `json:"sessionId,omitempty"`
	Squares     [BoardSize][BoardSize]*PieceView `json:"squares"`
	ToMove      int                              `json:"toMove"`
	ToMoveColor PlayerColor                      `json:"toMoveColor"`
	IsOver      bool                             `json:"isOver"`
	Winner      *int                             `json:"winner"`
	Captured    [2][]PieceView                   `json:"captured"`
}

func newPieceView(p *Piece) PieceView {
	return PieceView{
		Type:     p.Type,
		Glyph:    p.Type.Glyph(),
		Owner:    p.Owner,
		Position: p.Position,
		Moves:    p.Moves,
	}
}

// At returns the view at a square, nil when empty.
func (s Snapshot) At(p Position) *PieceView {
	return s.Squares[p.Y][p.X]
}
