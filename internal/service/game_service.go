package service

import (
	"fmt"

	"github.com/benbeisheim/hotseat-chess/internal/model"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

// ActivateResult is what a square activation returns to the UI.
type ActivateResult struct {
	Outcome model.Outcome   `json:"outcome"`
	State   model.GameState `json:"state"`
}

// ActivateSquare feeds a clicked square to the game. Only a malformed square is an error;
// an illegal move is reported through the outcome.
func (gs *GameService) ActivateSquare(square string) (ActivateResult, error) {
	sq, err := model.ParseSquare(square)
	if err != nil {
		return ActivateResult{}, err
	}
	outcome, state := gs.gameManager.Activate(sq)
	return ActivateResult{Outcome: outcome, State: state}, nil
}

func (gs *GameService) GetGameState() model.GameState {
	return gs.gameManager.Game().GetState()
}

func (gs *GameService) LegalTargets(square string) ([]model.Square, error) {
	sq, err := model.ParseSquare(square)
	if err != nil {
		return nil, err
	}
	targets := gs.gameManager.Game().LegalTargets(sq)
	if targets == nil {
		targets = []model.Square{}
	}
	return targets, nil
}

func (gs *GameService) ResetGame() model.GameState {
	return gs.gameManager.Reset()
}

func (gs *GameService) RegisterConnection(clientID string, conn model.Conn) (*model.Client, error) {
	if clientID == "" {
		return nil, fmt.Errorf("client id is required")
	}
	client := model.NewClient(clientID, conn)
	if err := gs.gameManager.RegisterConnection(client); err != nil {
		return nil, err
	}
	return client, nil
}

func (gs *GameService) UnregisterConnection(client *model.Client) {
	gs.gameManager.UnregisterConnection(client.ID, client.Conn)
}
