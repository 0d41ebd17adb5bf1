package controller

import (
	"encoding/json"
	"fmt"

	"github.com/benbeisheim/hotseat-chess/internal/model"
	"github.com/benbeisheim/hotseat-chess/internal/service"
	"github.com/benbeisheim/hotseat-chess/internal/ws"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

type WebSocketController struct {
	gameService *service.GameService
	logger      *zap.Logger
}

func NewWebSocketController(gameService *service.GameService, logger *zap.Logger) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
		logger:      logger,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	clientID, _ := c.Locals("clientID").(string)
	log := wsc.logger.With(zap.String("client", clientID))

	client, err := wsc.gameService.RegisterConnection(clientID, c)
	if err != nil {
		log.Warn("failed to register connection", zap.Error(err))
		c.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, err.Error()),
		)
		c.Close()
		return
	}
	// Clean up when connection closes
	defer wsc.gameService.UnregisterConnection(client)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debug("read loop ended", zap.Error(err))
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Debug("parse error", zap.Error(err))
			wsc.sendError(client, "malformed message")
			continue
		}
		if err := wsc.handleMessage(msg); err != nil {
			log.Debug("handle error", zap.String("type", string(msg.Type)), zap.Error(err))
			wsc.sendError(client, err.Error())
		}
	}
}

// handleMessage routes one inbound frame. State changes reach the client through the broadcast.
func (wsc *WebSocketController) handleMessage(msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeActivate:
		var payload ws.ActivatePayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return err
		}
		_, err := wsc.gameService.ActivateSquare(payload.Square)
		return err
	case ws.MessageTypeReset:
		wsc.gameService.ResetGame()
		return nil
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(client *model.Client, errorMsg string) {
	msg, err := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Error: errorMsg})
	if err != nil {
		return
	}
	if err := client.Send(msg); err != nil {
		wsc.logger.Debug("failed to send error", zap.String("client", client.ID), zap.Error(err))
	}
}
