package model

import (
	"encoding/json"
	"fmt"
)

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

func (p PieceType) notation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return ""
	}
	return ""
}

// Piece is a value: two pieces with the same type and side are interchangeable.
type Piece struct {
	Type PieceType `json:"type"`
	Side Side      `json:"side"`
}

func NewPiece(side Side, t PieceType) Piece {
	return Piece{Type: t, Side: side}
}

// Code returns the compact form used by the browser, e.g. "wP" or "bN".
func (p Piece) Code() string {
	letter := p.Type.notation()
	if p.Type == Pawn {
		letter = "P"
	}
	return p.Side.code() + letter
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s", p.Side, p.Type)
}

func (p Piece) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Code())
}

func (p *Piece) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	parsed, err := ParsePieceCode(code)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePieceCode is the inverse of Piece.Code.
func ParsePieceCode(code string) (Piece, error) {
	if len(code) != 2 {
		return Piece{}, fmt.Errorf("invalid piece code %q", code)
	}
	side, err := ParseSide(code[:1])
	if err != nil {
		return Piece{}, fmt.Errorf("invalid piece code %q", code)
	}
	var t PieceType
	switch code[1] {
	case 'K':
		t = King
	case 'Q':
		t = Queen
	case 'R':
		t = Rook
	case 'B':
		t = Bishop
	case 'N':
		t = Knight
	case 'P':
		t = Pawn
	default:
		return Piece{}, fmt.Errorf("invalid piece code %q", code)
	}
	return NewPiece(side, t), nil
}
