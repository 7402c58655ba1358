package model

import (
	"testing"
)

func TestIsLegalDestination(t *testing.T) {
	tests := []struct {
		name   string
		piece  *Piece
		to     Position
		player int
		want   bool
	}{
		// shared preconditions
		{"wrong owner", newPiece(Rook, 0, 0, 1, 0), Position{X: 0, Y: 4}, 1, false},
		{"null move", newPiece(King, 3, 3, 1, 0), Position{X: 3, Y: 3}, 0, false},
		{"captured piece", &Piece{Type: Rook, Owner: 0, Position: Position{X: 0, Y: 0}}, Position{X: 0, Y: 4}, 0, false},

		// pawns
		{"pawn single step", newPiece(Pawn, 3, 1, 1, 0), Position{X: 3, Y: 2}, 0, true},
		{"pawn double step unmoved", newPiece(Pawn, 3, 1, 1, 0), Position{X: 3, Y: 3}, 0, true},
		{"pawn diagonal", newPiece(Pawn, 3, 1, 1, 0), Position{X: 4, Y: 2}, 0, true},
		{"pawn diagonal double step", newPiece(Pawn, 3, 1, 1, 0), Position{X: 2, Y: 3}, 0, true},
		{"pawn two files", newPiece(Pawn, 3, 1, 1, 0), Position{X: 5, Y: 2}, 0, false},
		{"pawn backwards", newPiece(Pawn, 3, 1, 1, 0), Position{X: 3, Y: 0}, 0, false},
		{"pawn triple step", newPiece(Pawn, 3, 1, 1, 0), Position{X: 3, Y: 4}, 0, false},
		{"pawn sideways", newPiece(Pawn, 3, 1, 1, 0), Position{X: 4, Y: 1}, 0, false},
		{"black pawn single step", newPiece(Pawn, 3, 6, -1, 1), Position{X: 3, Y: 5}, 1, true},
		{"black pawn double step", newPiece(Pawn, 3, 6, -1, 1), Position{X: 3, Y: 4}, 1, true},
		{"black pawn wrong direction", newPiece(Pawn, 3, 6, -1, 1), Position{X: 3, Y: 7}, 1, false},
		{"moved pawn double step", &Piece{Type: Pawn, Position: Position{X: 3, Y: 2}, Direction: 1, Moves: 1, InPlay: true}, Position{X: 3, Y: 4}, 0, false},
		{"moved pawn single step", &Piece{Type: Pawn, Position: Position{X: 3, Y: 2}, Direction: 1, Moves: 1, InPlay: true}, Position{X: 3, Y: 3}, 0, true},

		// kings
		{"king up", newPiece(King, 3, 3, 1, 0), Position{X: 3, Y: 4}, 0, true},
		{"king diagonal", newPiece(King, 3, 3, 1, 0), Position{X: 2, Y: 2}, 0, true},
		{"king two squares", newPiece(King, 3, 3, 1, 0), Position{X: 5, Y: 3}, 0, false},

		// rooks
		{"rook file", newPiece(Rook, 0, 0, 1, 0), Position{X: 0, Y: 7}, 0, true},
		{"rook rank", newPiece(Rook, 0, 0, 1, 0), Position{X: 5, Y: 0}, 0, true},
		{"rook diagonal", newPiece(Rook, 0, 0, 1, 0), Position{X: 2, Y: 2}, 0, false},

		// bishops use dx % dy == 0
		{"bishop diagonal", newPiece(Bishop, 2, 0, 1, 0), Position{X: 4, Y: 2}, 0, true},
		{"bishop anti diagonal", newPiece(Bishop, 5, 0, 1, 0), Position{X: 3, Y: 2}, 0, true},
		{"bishop vertical", newPiece(Bishop, 2, 0, 1, 0), Position{X: 2, Y: 3}, 0, true},
		{"bishop multiple of dy", newPiece(Bishop, 2, 0, 1, 0), Position{X: 5, Y: 1}, 0, true},
		{"bishop not a multiple", newPiece(Bishop, 2, 0, 1, 0), Position{X: 3, Y: 2}, 0, false},
		{"bishop horizontal", newPiece(Bishop, 2, 0, 1, 0), Position{X: 6, Y: 0}, 0, false},

		// queens
		{"queen file", newPiece(Queen, 4, 0, 1, 0), Position{X: 4, Y: 7}, 0, true},
		{"queen horizontal", newPiece(Queen, 4, 0, 1, 0), Position{X: 0, Y: 0}, 0, true},
		{"queen diagonal", newPiece(Queen, 4, 0, 1, 0), Position{X: 7, Y: 3}, 0, true},
		{"queen off line", newPiece(Queen, 4, 0, 1, 0), Position{X: 5, Y: 2}, 0, false},

		// knights
		{"knight 2-3", newPiece(Knight, 1, 0, 1, 0), Position{X: 3, Y: 3}, 0, true},
		{"knight 3-3", newPiece(Knight, 1, 0, 1, 0), Position{X: 4, Y: 3}, 0, true},
		{"knight negative 2-3", newPiece(Knight, 6, 7, -1, 1), Position{X: 4, Y: 4}, 1, true},
		{"knight orthodox jump", newPiece(Knight, 1, 0, 1, 0), Position{X: 2, Y: 2}, 0, false},
		{"knight 3-2", newPiece(Knight, 1, 0, 1, 0), Position{X: 4, Y: 2}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.piece.IsLegalDestination(tt.to, tt.player); got != tt.want {
				t.Errorf("IsLegalDestination(%v, %d) = %t; want %t", tt.to, tt.player, got, tt.want)
			}
		})
	}
}

func TestIsLegalDestination_OwnershipBeatsGeometry(t *testing.T) {
	for _, pt := range []PieceType{Pawn, Rook, Knight, Bishop, Queen, King} {
		piece := newPiece(pt, 3, 3, 1, 0)
		for y := 0; y < BoardSize; y++ {
			for x := 0; x < BoardSize; x++ {
				if piece.IsLegalDestination(Position{X: x, Y: y}, 1) {
					t.Fatalf("%s owned by 0 accepted (%d, %d) for player 1", pt, x, y)
				}
			}
		}
	}
}

func TestIsLegalDestination_DoesNotMutate(t *testing.T) {
	piece := newPiece(Pawn, 3, 1, 1, 0)
	before := *piece
	piece.IsLegalDestination(Position{X: 3, Y: 3}, 0)
	if *piece != before {
		t.Errorf("piece changed: %+v -> %+v", before, *piece)
	}
}

func TestGlyph(t *testing.T) {
	want := map[PieceType]string{
		Pawn: "P", Rook: "R", Knight: "H", Bishop: "B", Queen: "Q", King: "K",
	}
	for pt, glyph := range want {
		if got := pt.Glyph(); got != glyph {
			t.Errorf("%s.Glyph() = %q; want %q", pt, got, glyph)
		}
	}
}
