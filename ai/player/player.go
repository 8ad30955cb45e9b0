// Package player is an automatic player of Othello, using various forms
// of AI.
package player

import (
	"errors"
	"fmt"

	"github.com/domino14/reversi/game"
	"github.com/domino14/reversi/move"
)

const (
	AlphaBetaPlayerName = "alphabeta"
	GreedyPlayerName    = "greedy"
	RandomPlayerName    = "random"
)

var ErrUnknownPlayer = errors.New("unknown player")

// AIPlayer describes an artificial player.
type AIPlayer interface {
	// ChooseMove returns one legal move for the side on turn in g. g must
	// have at least one legal move; it is not modified.
	ChooseMove(g *game.Game) move.Move
	Name() string
}

// ScoredMove is a candidate move with the value search assigned to it.
type ScoredMove struct {
	Move  move.Move
	Score int
}

// NewAIPlayer builds a player from its name.
func NewAIPlayer(name string) (AIPlayer, error) {
	switch name {
	case AlphaBetaPlayerName:
		return NewAlphaBetaPlayer(nil), nil
	case GreedyPlayerName:
		return GreedyPlayer{}, nil
	case RandomPlayerName:
		return RandomPlayer{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
}
