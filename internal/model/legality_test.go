package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type placement struct {
	square string
	piece  Piece
}

func boardWith(toMove Side, placements ...placement) *BoardState {
	b := NewEmptyBoardState(Light)
	b.SetToMove(toMove)
	for _, p := range placements {
		b.SetOccupant(MustSquare(p.square), p.piece)
	}
	return b
}

func candidate(b *BoardState, from, to string) Candidate {
	fromSq := MustSquare(from)
	piece, _ := b.Occupant(fromSq)
	return Candidate{Piece: piece, From: fromSq, To: MustSquare(to)}
}

func TestIsLegal(t *testing.T) {
	lp := NewPiece(Light, Pawn)
	dp := NewPiece(Dark, Pawn)

	tests := []struct {
		name  string
		board *BoardState
		from  string
		to    string
		want  bool
	}{
		// rook
		{"rook blocked by piece on a4", boardWith(Light, placement{"a1", NewPiece(Light, Rook)}, placement{"a4", dp}), "a1", "a8", false},
		{"rook stops short of blocker", boardWith(Light, placement{"a1", NewPiece(Light, Rook)}, placement{"a4", dp}), "a1", "a3", true},
		{"rook captures blocker", boardWith(Light, placement{"a1", NewPiece(Light, Rook)}, placement{"a4", dp}), "a1", "a4", true},
		{"rook along rank", boardWith(Light, placement{"a1", NewPiece(Light, Rook)}), "a1", "h1", true},
		{"rook diagonal", boardWith(Light, placement{"a1", NewPiece(Light, Rook)}), "a1", "c3", false},
		{"rook onto own piece", NewBoardState(Light), "a1", "a2", false},

		// knight
		{"knight b1-c3 over pawns", NewBoardState(Light), "b1", "c3", true},
		{"knight b1-a3 over pawns", NewBoardState(Light), "b1", "a3", true},
		{"knight b1-d2 own pawn", NewBoardState(Light), "b1", "d2", false},
		{"knight b1-d2 empty board", boardWith(Light, placement{"b1", NewPiece(Light, Knight)}), "b1", "d2", true},
		{"knight b1-b3", boardWith(Light, placement{"b1", NewPiece(Light, Knight)}), "b1", "b3", false},
		{"knight boxed in", boardWith(Light,
			placement{"d4", NewPiece(Light, Knight)},
			placement{"c3", lp}, placement{"d3", lp}, placement{"e3", lp},
			placement{"c4", lp}, placement{"e4", lp},
			placement{"c5", lp}, placement{"d5", lp}, placement{"e5", lp},
		), "d4", "e6", true},

		// bishop
		{"bishop blocked at start", NewBoardState(Light), "c1", "g5", false},
		{"bishop open diagonal", boardWith(Light, placement{"c1", NewPiece(Light, Bishop)}), "c1", "g5", true},
		{"bishop straight", boardWith(Light, placement{"c1", NewPiece(Light, Bishop)}), "c1", "c3", false},

		// queen
		{"queen diagonal", boardWith(Light, placement{"d1", NewPiece(Light, Queen)}), "d1", "h5", true},
		{"queen file", boardWith(Light, placement{"d1", NewPiece(Light, Queen)}), "d1", "d8", true},
		{"queen knight shape", boardWith(Light, placement{"d1", NewPiece(Light, Queen)}), "d1", "e3", false},

		// king
		{"king forward", boardWith(Light, placement{"e1", NewPiece(Light, King)}), "e1", "e2", true},
		{"king diagonal", boardWith(Light, placement{"e1", NewPiece(Light, King)}), "e1", "f2", true},
		{"king sideways", boardWith(Light, placement{"e1", NewPiece(Light, King)}), "e1", "d1", true},
		{"king two squares", boardWith(Light, placement{"e1", NewPiece(Light, King)}), "e1", "e3", false},
		{"king next to enemy king", boardWith(Light, placement{"e4", NewPiece(Light, King)}, placement{"e6", NewPiece(Dark, King)}), "e4", "e5", true},

		// pawn
		{"pawn single step", NewBoardState(Light), "e2", "e3", true},
		{"pawn double step from start", NewBoardState(Light), "e2", "e4", true},
		{"pawn triple step", NewBoardState(Light), "e2", "e5", false},
		{"pawn double step after start", boardWith(Light, placement{"e3", lp}), "e3", "e5", false},
		{"pawn double step through piece", boardWith(Light, placement{"e2", lp}, placement{"e3", dp}), "e2", "e4", false},
		{"pawn backwards", boardWith(Light, placement{"e4", lp}), "e4", "e3", false},
		{"pawn straight onto enemy", boardWith(Light, placement{"e4", lp}, placement{"e5", dp}), "e4", "e5", false},
		{"pawn captures right", boardWith(Light, placement{"d2", lp}, placement{"e3", dp}), "d2", "e3", true},
		{"pawn captures left", boardWith(Light, placement{"d2", lp}, placement{"c3", dp}), "d2", "c3", true},
		{"pawn diagonal onto empty", boardWith(Light, placement{"d2", lp}), "d2", "e3", false},
		{"pawn captures backwards", boardWith(Light, placement{"d4", lp}, placement{"e3", dp}), "d4", "e3", false},
		{"pawn captures two files over", boardWith(Light, placement{"d2", lp}, placement{"f3", dp}), "d2", "f3", false},
		{"dark pawn double step", boardWith(Dark, placement{"e7", dp}), "e7", "e5", true},
		{"dark pawn single step", boardWith(Dark, placement{"e7", dp}), "e7", "e6", true},
		{"dark pawn upward", boardWith(Dark, placement{"e6", dp}), "e6", "e7", false},
		{"dark pawn captures", boardWith(Dark, placement{"e7", dp}, placement{"d6", lp}), "e7", "d6", true},
		{"dark pawn double step off rank", boardWith(Dark, placement{"e6", dp}), "e6", "e4", false},
		{"pawn to last rank", boardWith(Light, placement{"e7", lp}), "e7", "e8", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsLegal(tt.board, candidate(tt.board, tt.from, tt.to))
			if got != tt.want {
				t.Errorf("IsLegal(%s-%s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsLegalKnightIgnoresPath(t *testing.T) {
	// Every neighbour of b1 is occupied; a walking path to c3 would be blocked at c2.
	b := boardWith(Light,
		placement{"b1", NewPiece(Light, Knight)},
		placement{"a1", NewPiece(Light, Rook)},
		placement{"c1", NewPiece(Light, Bishop)},
		placement{"a2", NewPiece(Light, Pawn)},
		placement{"b2", NewPiece(Light, Pawn)},
		placement{"c2", NewPiece(Light, Pawn)},
	)
	for _, to := range []string{"a3", "c3", "d2"} {
		if !IsLegal(b, candidate(b, "b1", to)) {
			t.Errorf("knight b1-%s should jump", to)
		}
	}
}

func TestIsLegalOwnSideIsTheSideToMove(t *testing.T) {
	// With dark to move, the light rook's destination on a light piece counts as opponent-held.
	b := boardWith(Dark,
		placement{"a1", NewPiece(Light, Rook)},
		placement{"a3", NewPiece(Light, Pawn)},
	)
	if !IsLegal(b, candidate(b, "a1", "a3")) {
		t.Errorf("destination ownership must be judged against the side to move")
	}
}

func TestIsPathClear(t *testing.T) {
	b := boardWith(Light, placement{"d4", NewPiece(Dark, Pawn)})

	tests := []struct {
		from, to string
		want     bool
	}{
		{"a1", "h8", false},
		{"a1", "c3", true},
		{"a1", "d4", true}, // destination is not inspected
		{"d1", "d8", false},
		{"a4", "h4", false},
		{"a5", "h5", true},
		{"e1", "e2", true},
		{"b1", "c3", true},
	}
	for _, tt := range tests {
		got := isPathClear(b, MustSquare(tt.from), MustSquare(tt.to))
		if got != tt.want {
			t.Errorf("isPathClear(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestKingStep(t *testing.T) {
	tests := []struct {
		from, to, want string
	}{
		{"a1", "h8", "b2"},
		{"h8", "a1", "g7"},
		{"d4", "d8", "d5"},
		{"d4", "a4", "c4"},
		{"b1", "c3", "c2"},
		{"e4", "e4", "e4"},
	}
	for _, tt := range tests {
		got := kingStep(MustSquare(tt.from), MustSquare(tt.to))
		if got != MustSquare(tt.want) {
			t.Errorf("kingStep(%s, %s) = %s, want %s", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestDisplacementSign(t *testing.T) {
	fileDelta, rankDelta := displacement(MustSquare("e2"), MustSquare("f4"))
	if fileDelta != -1 || rankDelta != -2 {
		t.Fatalf("displacement(e2, f4) = (%d, %d), want (-1, -2)", fileDelta, rankDelta)
	}
}

func TestLegalTargets(t *testing.T) {
	b := NewBoardState(Light)

	tests := []struct {
		from string
		want []Square
	}{
		{"e2", []Square{MustSquare("e4"), MustSquare("e3")}},
		{"b1", []Square{MustSquare("a3"), MustSquare("c3")}},
		{"a1", nil},
		{"e4", nil},
	}
	for _, tt := range tests {
		got := LegalTargets(b, MustSquare(tt.from))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("LegalTargets(%s) mismatch (-want +got):\n%s", tt.from, diff)
		}
	}
}
