package model

import (
	"errors"
	"fmt"
)

var ErrInvalidSquare = errors.New("invalid square")

const files = "abcdefgh"

// Square is a board coordinate. File is 0 for "a" through 7 for "h"; Rank is 1 through 8.
type Square struct {
	File int
	Rank int
}

type Shade string

const (
	ShadeLight Shade = "light"
	ShadeDark  Shade = "dark"
)

func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return Square{File: int(s[0] - 'a'), Rank: int(s[1] - '0')}, nil
}

// MustSquare panics on malformed input. Meant for literals.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

func (s Square) Valid() bool {
	return s.File >= 0 && s.File < 8 && s.Rank >= 1 && s.Rank <= 8
}

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", files[s.File], s.Rank)
}

// Shade is the display colour of the square; a1 is dark.
func (s Square) Shade() Shade {
	if (s.File+s.Rank)%2 == 1 {
		return ShadeDark
	}
	return ShadeLight
}

func (s Square) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: file %d rank %d", ErrInvalidSquare, s.File, s.Rank)
	}
	return []byte(s.String()), nil
}

func (s *Square) UnmarshalText(text []byte) error {
	sq, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*s = sq
	return nil
}

// AllSquares lists the board row by row from a8 to h1, the order the board is first drawn in.
func AllSquares() []Square {
	squares := make([]Square, 0, 64)
	for rank := 8; rank >= 1; rank-- {
		for file := 0; file < 8; file++ {
			squares = append(squares, Square{File: file, Rank: rank})
		}
	}
	return squares
}
