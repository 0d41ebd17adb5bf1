package model

import (
	"fmt"
	"strings"
)

type Side string

const (
	Light Side = "light"
	Dark  Side = "dark"
)

func (s Side) Opponent() Side {
	if s == Light {
		return Dark
	}
	return Light
}

// code is the one-letter prefix used in piece codes ("w" for light, "b" for dark).
func (s Side) code() string {
	if s == Light {
		return "w"
	}
	return "b"
}

// forward is the rank direction this side's pawns advance in.
func (s Side) forward() int {
	if s == Light {
		return 1
	}
	return -1
}

func (s Side) pawnRank() int {
	if s == Light {
		return 2
	}
	return 7
}

func (s Side) farRank() int {
	if s == Light {
		return 8
	}
	return 1
}

// ParseSide accepts "light"/"dark" as well as the "w"/"b" and "white"/"black" spellings.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light", "w", "white":
		return Light, nil
	case "dark", "b", "black":
		return Dark, nil
	}
	return "", fmt.Errorf("unknown side %q", s)
}
