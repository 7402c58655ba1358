package service

import (
	"io"
	"log"
	"sync"

	"github.com/benbeisheim/hotseat-chess/internal/model"
	"github.com/benbeisheim/hotseat-chess/internal/render"
	"github.com/benbeisheim/hotseat-chess/internal/ws"
	"github.com/google/uuid"
)

// GameService hosts the single local session. The console loop moves through
// it while the spectator server reads from other goroutines.
type GameService struct {
	ID       string
	mu       sync.Mutex
	game     *model.Game
	hub      *SpectatorHub
	logger   *log.Logger
	handlers []model.EventHandler
	pending  []model.Event
}

func NewGameService(logger *log.Logger) *GameService {
	gs := &GameService{
		ID:     uuid.New().String(),
		game:   model.NewGame(),
		hub:    NewSpectatorHub(logger),
		logger: logger,
	}
	// Events fire inside MakeMove while mu is held; queue them for after.
	gs.game.Subscribe(func(e model.Event) {
		gs.pending = append(gs.pending, e)
	})
	logger.Printf("session %s started", gs.ID)
	return gs
}

func (gs *GameService) Hub() *SpectatorHub {
	return gs.hub
}

// Subscribe registers fn for capture and game over events of the session.
func (gs *GameService) Subscribe(fn model.EventHandler) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.handlers = append(gs.handlers, fn)
}

// HandleMove applies one move for the player whose turn it is and notifies
// subscribers and spectators when it is accepted.
func (gs *GameService) HandleMove(move model.Move) (model.Move, error) {
	gs.mu.Lock()
	accepted, err := gs.game.MakeMove(move)
	events := gs.pending
	gs.pending = nil
	handlers := append([]model.EventHandler(nil), gs.handlers...)
	snapshot := gs.snapshotLocked()
	gs.mu.Unlock()

	if err != nil {
		gs.logger.Printf("session %s: %v", gs.ID, err)
		return model.Move{}, err
	}
	gs.logger.Printf("session %s: accepted %q, player %d to move", gs.ID, accepted.String(), snapshot.ToMove)

	for _, e := range events {
		for _, fn := range handlers {
			fn(e)
		}
		gs.broadcast(eventMessageType(e.Kind), e)
	}
	gs.broadcast(ws.MessageTypeGameState, snapshot)
	return accepted, nil
}

func eventMessageType(kind model.EventKind) ws.MessageType {
	if kind == model.EventGameOver {
		return ws.MessageTypeGameOver
	}
	return ws.MessageTypeCapture
}

func (gs *GameService) broadcast(t ws.MessageType, payload interface{}) {
	msg, err := ws.NewMessage(t, gs.ID, payload)
	if err != nil {
		gs.logger.Printf("session %s: failed to marshal %s: %v", gs.ID, t, err)
		return
	}
	gs.hub.Broadcast(msg)
}

func (gs *GameService) Snapshot() model.Snapshot {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.snapshotLocked()
}

func (gs *GameService) snapshotLocked() model.Snapshot {
	snapshot := gs.game.Snapshot()
	snapshot.SessionID = gs.ID
	return snapshot
}

func (gs *GameService) CurrentPlayer() int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.game.CurrentPlayer()
}

func (gs *GameService) IsOver() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.game.IsOver()
}

// WriteSVG renders the current board.
func (gs *GameService) WriteSVG(w io.Writer) {
	render.SVG(w, gs.Snapshot())
}

// RegisterSpectator adds conn to the hub and sends it the current state.
func (gs *GameService) RegisterSpectator(spectatorID string, conn Conn) error {
	if err := gs.hub.Register(spectatorID, conn); err != nil {
		return err
	}
	msg, err := ws.NewMessage(ws.MessageTypeGameState, gs.ID, gs.Snapshot())
	if err != nil {
		return err
	}
	return gs.hub.Send(spectatorID, msg)
}

func (gs *GameService) UnregisterSpectator(spectatorID string) {
	gs.hub.Unregister(spectatorID)
}
