// service/game_manager.go
package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/benbeisheim/hotseat-chess/internal/model"
	"github.com/benbeisheim/hotseat-chess/internal/ws"
	"go.uber.org/zap"
)

var ErrDuplicateClient = errors.New("client already connected")

// GameManager owns the one game on this board and the clients watching it.
type GameManager struct {
	game    *model.Game
	clients map[string]*model.Client // clientID -> client
	mu      sync.RWMutex
	logger  *zap.Logger
}

// NewGameManager builds the game and wires its turn-over hook to a broadcast.
// Extra options are passed through to model.NewGame.
func NewGameManager(viewer model.Side, logger *zap.Logger, opts ...model.Option) *GameManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	gm := &GameManager{
		clients: make(map[string]*model.Client),
		logger:  logger,
	}
	opts = append(opts,
		model.WithLogger(logger.Named("game")),
		model.WithTurnOverHook(gm.handleTurnOver),
	)
	gm.game = model.NewGame(viewer, opts...)
	return gm
}

func (gm *GameManager) Game() *model.Game {
	return gm.game
}

func (gm *GameManager) Activate(sq model.Square) (model.Outcome, model.GameState) {
	outcome := gm.game.OnSquareActivated(sq)
	state := gm.game.GetState()
	if outcome != model.OutcomeIgnored {
		gm.broadcast(ws.MessageTypeGameState, state)
	}
	return outcome, state
}

func (gm *GameManager) Reset() model.GameState {
	gm.game.Reset()
	state := gm.game.GetState()
	gm.broadcast(ws.MessageTypeGameState, state)
	return state
}

func (gm *GameManager) handleTurnOver(state model.GameState) {
	gm.broadcast(ws.MessageTypeTurnOver, state.Layout)
}

func (gm *GameManager) RegisterConnection(client *model.Client) error {
	gm.mu.Lock()
	if _, exists := gm.clients[client.ID]; exists {
		gm.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrDuplicateClient, client.ID)
	}
	gm.clients[client.ID] = client
	gm.mu.Unlock()
	gm.logger.Info("client connected", zap.String("client", client.ID))

	// Send initial state
	if err := gm.send(client, ws.MessageTypeGameState, gm.game.GetState()); err != nil {
		gm.UnregisterConnection(client.ID, client.Conn)
		return err
	}
	return nil
}

// UnregisterConnection removes the client only if conn is still the one registered under its ID.
func (gm *GameManager) UnregisterConnection(clientID string, conn model.Conn) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if c, exists := gm.clients[clientID]; exists && c.Conn == conn {
		delete(gm.clients, clientID)
		gm.logger.Info("client disconnected", zap.String("client", clientID))
	}
}

func (gm *GameManager) ClientCount() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.clients)
}

func (gm *GameManager) broadcast(t ws.MessageType, payload interface{}) {
	msg, err := ws.NewMessage(t, payload)
	if err != nil {
		gm.logger.Error("marshal broadcast", zap.String("type", string(t)), zap.Error(err))
		return
	}

	// Copy the client list so no lock is held while writing
	gm.mu.RLock()
	active := make([]*model.Client, 0, len(gm.clients))
	for _, c := range gm.clients {
		active = append(active, c)
	}
	gm.mu.RUnlock()

	for _, c := range active {
		if err := c.Send(msg); err != nil {
			gm.logger.Warn("dropping client after failed write",
				zap.String("client", c.ID), zap.String("type", string(t)), zap.Error(err))
			gm.UnregisterConnection(c.ID, c.Conn)
			_ = c.Conn.Close()
		}
	}
}

func (gm *GameManager) send(c *model.Client, t ws.MessageType, payload interface{}) error {
	msg, err := ws.NewMessage(t, payload)
	if err != nil {
		return err
	}
	return c.Send(msg)
}
