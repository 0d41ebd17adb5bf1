package model

// BoardState holds which piece stands on which square, whose turn it is,
// and which side the local viewer plays.
type BoardState struct {
	pieces map[Square]Piece
	toMove Side
	viewer Side
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoardState returns the standard starting position with light to move.
func NewBoardState(viewer Side) *BoardState {
	b := NewEmptyBoardState(viewer)
	for file, t := range backRank {
		b.pieces[Square{File: file, Rank: 1}] = NewPiece(Light, t)
		b.pieces[Square{File: file, Rank: 8}] = NewPiece(Dark, t)
		b.pieces[Square{File: file, Rank: 2}] = NewPiece(Light, Pawn)
		b.pieces[Square{File: file, Rank: 7}] = NewPiece(Dark, Pawn)
	}
	return b
}

func NewEmptyBoardState(viewer Side) *BoardState {
	return &BoardState{
		pieces: make(map[Square]Piece, 32),
		toMove: Light,
		viewer: viewer,
	}
}

func (b *BoardState) Occupant(sq Square) (Piece, bool) {
	p, ok := b.pieces[sq]
	return p, ok
}

func (b *BoardState) IsOccupied(sq Square) bool {
	_, ok := b.pieces[sq]
	return ok
}

func (b *BoardState) IsOccupiedByActiveSide(sq Square) bool {
	p, ok := b.pieces[sq]
	return ok && p.Side == b.toMove
}

func (b *BoardState) IsOccupiedByOpponent(sq Square) bool {
	p, ok := b.pieces[sq]
	return ok && p.Side != b.toMove
}

// IsOccupiedByViewer reports ownership relative to the viewer, not the side to move.
// In hot-seat play the two differ on every other turn.
func (b *BoardState) IsOccupiedByViewer(sq Square) bool {
	p, ok := b.pieces[sq]
	return ok && p.Side == b.viewer
}

func (b *BoardState) SetOccupant(sq Square, p Piece) {
	b.pieces[sq] = p
}

func (b *BoardState) Clear(sq Square) {
	delete(b.pieces, sq)
}

func (b *BoardState) ToMove() Side { return b.toMove }

func (b *BoardState) Viewer() Side { return b.viewer }

// SetToMove is for arranging test positions; play flips the turn through switchTurn.
func (b *BoardState) SetToMove(s Side) { b.toMove = s }

func (b *BoardState) switchTurn() {
	b.toMove = b.toMove.Opponent()
}

func (b *BoardState) Count() int { return len(b.pieces) }

// Pieces returns a copy of the occupied squares.
func (b *BoardState) Pieces() map[Square]Piece {
	out := make(map[Square]Piece, len(b.pieces))
	for sq, p := range b.pieces {
		out[sq] = p
	}
	return out
}

func (b *BoardState) Clone() *BoardState {
	return &BoardState{
		pieces: b.Pieces(),
		toMove: b.toMove,
		viewer: b.viewer,
	}
}
