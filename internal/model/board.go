package model

import "fmt"

const BoardSize = 8

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

func (p Position) String() string {
	return fmt.Sprintf("%d, %d", p.X, p.Y)
}

// Board owns its grid outright. Squares are indexed [y][x].
type Board struct {
	squares [BoardSize][BoardSize]*Piece
}

// backRank lists the pieces of each side's home row by file. The two sides are
// not mirror images: owner 0 has the King on file 3, owner 1 on file 4.
var backRank = [2][BoardSize]PieceType{
	{Rook, Knight, Bishop, King, Queen, Bishop, Knight, Rook},
	{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook},
}

func NewBoard() *Board {
	board := &Board{}
	for x := 0; x < BoardSize; x++ {
		board.place(newPiece(Pawn, x, 1, 1, 0))
		board.place(newPiece(Pawn, x, 6, -1, 1))
		board.place(newPiece(backRank[0][x], x, 0, 1, 0))
		board.place(newPiece(backRank[1][x], x, 7, -1, 1))
	}
	return board
}

func (b *Board) place(piece *Piece) {
	b.squares[piece.Position.Y][piece.Position.X] = piece
}

// GetPiece returns the occupant of a square or nil. Bounds are the caller's
// responsibility.
func (b *Board) GetPiece(p Position) *Piece {
	return b.squares[p.Y][p.X]
}

// Pieces returns the in-play pieces of one owner in row-major order.
func (b *Board) Pieces(owner int) []*Piece {
	pieces := []*Piece{}
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if piece := b.squares[y][x]; piece != nil && piece.Owner == owner {
				pieces = append(pieces, piece)
			}
		}
	}
	return pieces
}

// AttemptMove applies move for mover if the moving piece allows it. Coordinates
// must already be in range. On success it returns the captured piece, if any,
// after recording it in mover's ledger. On failure nothing on the board changes.
func (b *Board) AttemptMove(move Move, mover *Player) (*Piece, error) {
	piece := b.GetPiece(move.From)
	if piece == nil {
		return nil, ErrNoPiece
	}
	if !piece.IsLegalDestination(move.To, mover.ID) {
		return nil, ErrIllegalMove
	}

	target := b.GetPiece(move.To)
	if target != nil && target.Owner == mover.ID {
		return nil, fmt.Errorf("%w: square occupied by own %s", ErrIllegalMove, target.Type)
	}
	if target != nil {
		target.InPlay = false
		mover.capture(target)
	}

	b.squares[move.To.Y][move.To.X] = piece
	b.squares[move.From.Y][move.From.X] = nil
	piece.Moves++
	piece.Position = move.To

	return target, nil
}
