package player

import (
	"fmt"
	"og/game"
)

// Player is a source of moves for one side of a game.
type Player interface {
	// Move returns a position that is in bounds and Empty on g.
	Move(g game.Grid) (game.Position, error)
	Side() game.Cell
}

// Kind names a player implementation in configuration.
type Kind string

const (
	ComputerKind Kind = "computer"
	RandomKind   Kind = "random"
	HumanKind    Kind = "human"
)

func ParseKind(name string) (Kind, error) {
	switch k := Kind(name); k {
	case ComputerKind, RandomKind, HumanKind:
		return k, nil
	default:
		return "", fmt.Errorf("unknown player kind %q", name)
	}
}
