package controller

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/benbeisheim/hotseat-chess/internal/model"
	"github.com/benbeisheim/hotseat-chess/internal/service"
	"github.com/benbeisheim/hotseat-chess/internal/ws"
	"go.uber.org/zap/zaptest"
)

func newTestWSController(t *testing.T) (*WebSocketController, *service.GameService) {
	t.Helper()
	logger := zaptest.NewLogger(t)
	gm := service.NewGameManager(model.Light, logger, model.WithScheduler(model.NewManualScheduler()))
	gs := service.NewGameService(gm)
	return NewWebSocketController(gs, logger), gs
}

func activate(t *testing.T, square string) ws.Message {
	t.Helper()
	msg, err := ws.NewMessage(ws.MessageTypeActivate, ws.ActivatePayload{Square: square})
	if err != nil {
		t.Fatal(err)
	}
	return msg
}

func TestHandleMessageActivate(t *testing.T) {
	wsc, gs := newTestWSController(t)
	for _, sq := range []string{"e2", "e4"} {
		if err := wsc.handleMessage(activate(t, sq)); err != nil {
			t.Fatalf("activate %s: %v", sq, err)
		}
	}
	if got := gs.GetGameState().ToMove; got != model.Dark {
		t.Fatalf("to move = %s, want dark", got)
	}

	if err := wsc.handleMessage(ws.Message{Type: ws.MessageTypeReset, Payload: json.RawMessage(`{}`)}); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if got := gs.GetGameState().ToMove; got != model.Light {
		t.Fatalf("to move after reset = %s, want light", got)
	}
}

func TestHandleMessageErrors(t *testing.T) {
	wsc, _ := newTestWSController(t)

	if err := wsc.handleMessage(activate(t, "k1")); !errors.Is(err, model.ErrInvalidSquare) {
		t.Errorf("bad square error = %v", err)
	}
	if err := wsc.handleMessage(ws.Message{Type: ws.MessageTypeActivate, Payload: json.RawMessage(`"e2"`)}); err == nil {
		t.Errorf("payload of the wrong shape should fail")
	}
	if err := wsc.handleMessage(ws.Message{Type: "resign"}); err == nil {
		t.Errorf("unknown message type should fail")
	}
}
