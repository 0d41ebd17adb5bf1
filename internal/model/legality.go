package model

// maxPathSteps bounds the path walk. No straight or diagonal line on an 8x8 board is longer.
const maxPathSteps = 8

// Candidate is a proposed move of Piece from From to To.
type Candidate struct {
	Piece Piece
	From  Square
	To    Square
}

// displacement returns source minus destination for both axes. A light pawn
// advancing up the board has a negative rank delta.
func displacement(from, to Square) (fileDelta, rankDelta int) {
	return from.File - to.File, from.Rank - to.Rank
}

// IsLegal reports whether c may be played in the position b.
func IsLegal(b *BoardState, c Candidate) bool {
	if !c.From.Valid() || !c.To.Valid() {
		return false
	}
	if b.IsOccupiedByActiveSide(c.To) {
		return false
	}
	if c.Piece.Type != Knight && !isPathClear(b, c.From, c.To) {
		return false
	}
	if !isKingSafeAfter(b, c) {
		return false
	}

	fileDelta, rankDelta := displacement(c.From, c.To)
	switch c.Piece.Type {
	case Pawn:
		return isLegalPawnMove(b, c, fileDelta, rankDelta)
	case Knight:
		af, ar := abs(fileDelta), abs(rankDelta)
		return (af == 1 && ar == 2) || (af == 2 && ar == 1)
	case Rook:
		return isRookPattern(fileDelta, rankDelta)
	case Bishop:
		return isBishopPattern(fileDelta, rankDelta)
	case Queen:
		return isRookPattern(fileDelta, rankDelta) || isBishopPattern(fileDelta, rankDelta)
	case King:
		return abs(rankDelta) < 2 && abs(fileDelta) < 2
	}
	return false
}

func isLegalPawnMove(b *BoardState, c Candidate, fileDelta, rankDelta int) bool {
	// advance is how far the pawn travels toward the opponent's side.
	advance := -rankDelta * c.Piece.Side.forward()
	maxAdvance := 1
	if c.From.Rank == c.Piece.Side.pawnRank() {
		maxAdvance = 2
	}

	if b.IsOccupiedByOpponent(c.To) {
		return abs(fileDelta) == 1 && advance == 1
	}
	return fileDelta == 0 && advance >= 1 && advance <= maxAdvance
}

func isRookPattern(fileDelta, rankDelta int) bool {
	return rankDelta == 0 || fileDelta == 0
}

func isBishopPattern(fileDelta, rankDelta int) bool {
	return abs(rankDelta) == abs(fileDelta)
}

// isKingSafeAfter never objects. Check detection is not part of this rule set.
func isKingSafeAfter(_ *BoardState, _ Candidate) bool {
	return true
}

// isPathClear walks from one square to the other a king step at a time and
// reports whether it arrives without crossing an occupied square. The
// destination itself is not inspected.
func isPathClear(b *BoardState, from, to Square) bool {
	step := kingStep(from, to)
	for i := 0; step != to; i++ {
		if i >= maxPathSteps || b.IsOccupied(step) {
			return false
		}
		step = kingStep(step, to)
	}
	return true
}

// kingStep moves from one square toward another by at most one file and one rank.
func kingStep(from, to Square) Square {
	next := from
	switch {
	case from.File < to.File:
		next.File++
	case from.File > to.File:
		next.File--
	}
	switch {
	case from.Rank < to.Rank:
		next.Rank++
	case from.Rank > to.Rank:
		next.Rank--
	}
	return next
}

// LegalTargets lists every square the piece on from may move to, in the
// board's initial drawing order. It is empty if from is vacant.
func LegalTargets(b *BoardState, from Square) []Square {
	piece, ok := b.Occupant(from)
	if !ok {
		return nil
	}
	var targets []Square
	for _, to := range AllSquares() {
		if IsLegal(b, Candidate{Piece: piece, From: from, To: to}) {
			targets = append(targets, to)
		}
	}
	return targets
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
