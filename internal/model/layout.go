package model

// Cell is one drawn square of the board.
type Cell struct {
	Square Square `json:"square"`
	Shade  Shade  `json:"shade"`
}

// Layout is the order in which the browser draws the 64 cells.
type Layout []Cell

func NewLayout() Layout {
	squares := AllSquares()
	layout := make(Layout, len(squares))
	for i, sq := range squares {
		layout[i] = Cell{Square: sq, Shade: sq.Shade()}
	}
	return layout
}

// Reversed returns the layout seen from the other side of the table.
func (l Layout) Reversed() Layout {
	out := make(Layout, len(l))
	for i, c := range l {
		out[len(l)-1-i] = c
	}
	return out
}
