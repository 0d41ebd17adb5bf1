package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages exchanged with the board UI
type MessageType string

const (
	MessageTypeActivate  MessageType = "activate"
	MessageTypeReset     MessageType = "reset"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeTurnOver  MessageType = "turnOver"
	MessageTypeError     MessageType = "error"
)

// Message is the envelope for every WebSocket frame
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ActivatePayload carries the square the player clicked, in algebraic form
type ActivatePayload struct {
	Square string `json:"square"`
}

// ErrorPayload is sent back for frames that could not be understood
type ErrorPayload struct {
	Error string `json:"error"`
}

// NewMessage marshals payload into a Message of the given type
func NewMessage(t MessageType, payload interface{}) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}
