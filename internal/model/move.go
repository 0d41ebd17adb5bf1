package model

import "fmt"

// Move describes an applied move.
type Move struct {
	Piece    Piece  `json:"piece"`
	From     Square `json:"from"`
	To       Square `json:"to"`
	Captured *Piece `json:"captured"`
	Promoted bool   `json:"promoted"`
	Notation string `json:"notation"`
}

// notation renders a short algebraic form: "Nc3", "exd5", "e8=Q".
func (m Move) notation() string {
	prefix := m.Piece.Type.notation()
	if m.Piece.Type == Pawn && m.Captured != nil {
		prefix = fmt.Sprintf("%c", files[m.From.File])
	}
	capture := ""
	if m.Captured != nil {
		capture = "x"
	}
	suffix := ""
	if m.Promoted {
		suffix = "=" + Queen.notation()
	}
	return fmt.Sprintf("%s%s%s%s", prefix, capture, m.To, suffix)
}
