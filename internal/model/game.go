package model

// Game drives one hot-seat session. It is not safe for concurrent use; callers
// that share a Game across goroutines must serialize access themselves.
type Game struct {
	board    *Board
	players  [2]*Player
	current  int
	over     bool
	winner   int
	handlers []EventHandler
}

func NewGame() *Game {
	return &Game{
		board:   NewBoard(),
		players: [2]*Player{NewPlayer(0), NewPlayer(1)},
		current: 0,
	}
}

func (g *Game) Board() *Board {
	return g.board
}

// Player returns the player with owner id 0 or 1, and nil for any other id.
func (g *Game) Player(id int) *Player {
	if id < 0 || id >= len(g.players) {
		return nil
	}
	return g.players[id]
}

func (g *Game) CurrentPlayer() int {
	return g.current
}

func (g *Game) IsOver() bool {
	return g.over
}

// Winner returns the owner id of the player that captured the King.
func (g *Game) Winner() (int, bool) {
	return g.winner, g.over
}

// Subscribe registers fn for capture and game over events. Handlers run
// synchronously inside MakeMove, in registration order.
func (g *Game) Subscribe(fn EventHandler) {
	g.handlers = append(g.handlers, fn)
}

// MakeMove runs one full move cycle for the current player. The turn passes
// to the opponent only when the returned error is nil.
func (g *Game) MakeMove(move Move) (Move, error) {
	if g.over {
		return Move{}, g.reject(move, ErrGameOver)
	}
	if !move.InBounds() {
		return Move{}, g.reject(move, ErrOutOfRange)
	}

	mover := g.players[g.current]
	captured, err := g.board.AttemptMove(move, mover)
	if err != nil {
		return Move{}, g.reject(move, err)
	}

	if captured != nil {
		g.handleCapture(mover, captured, move.To)
	}
	g.switchTurn()
	return move, nil
}

func (g *Game) handleCapture(mover *Player, captured *Piece, at Position) {
	event := Event{
		Kind:     EventCapture,
		Capturer: mover.ID,
		Captured: captured.Owner,
		Piece:    captured.Type,
		At:       at,
	}
	g.emit(event)

	if captured.Type == King && !g.over {
		g.over = true
		g.winner = mover.ID
		event.Kind = EventGameOver
		g.emit(event)
	}
}

func (g *Game) emit(event Event) {
	for _, fn := range g.handlers {
		fn(event)
	}
}

func (g *Game) switchTurn() {
	g.current = (g.current + 1) % 2
}

func (g *Game) reject(move Move, err error) error {
	return &MoveError{Move: move, Player: g.current, Err: err}
}

// Snapshot copies the visible state of the game.
func (g *Game) Snapshot() Snapshot {
	snapshot := Snapshot{
		ToMove:      g.current,
		ToMoveColor: g.players[g.current].Color,
		IsOver:      g.over,
	}
	if g.over {
		winner := g.winner
		snapshot.Winner = &winner
	}
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if piece := g.board.squares[y][x]; piece != nil {
				view := newPieceView(piece)
				snapshot.Squares[y][x] = &view
			}
		}
	}
	for id, player := range g.players {
		snapshot.Captured[id] = make([]PieceView, 0, len(player.Captured))
		for _, piece := range player.Captured {
			snapshot.Captured[id] = append(snapshot.Captured[id], newPieceView(piece))
		}
	}
	return snapshot
}
