package model

type PlayerColor string

const (
	PlayerColorWhite PlayerColor = "white"
	PlayerColorBlack PlayerColor = "black"
)

type Player struct {
	ID       int         `json:"id"`
	Color    PlayerColor `json:"color"`
	Captured []*Piece    `json:"captured"`
}

func NewPlayer(id int) *Player {
	color := PlayerColorWhite
	if id == 1 {
		color = PlayerColorBlack
	}
	return &Player{
		ID:       id,
		Color:    color,
		Captured: make([]*Piece, 0),
	}
}

// capture appends to the ledger. The ledger is never trimmed or reordered.
func (p *Player) capture(piece *Piece) {
	p.Captured = append(p.Captured, piece)
}
