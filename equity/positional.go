package equity

import (
	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/game"
)

// MobilityBonus is added (or subtracted) per legal move of the side to move.
const MobilityBonus = 500

// PositionWeights is the value of owning each square. Corners are worth the
// most; the squares touching a corner give it away and are heavily
// penalized; the centre box is mildly positive. The table repeats the same
// pattern in all four quadrants. Never modify it.
var PositionWeights = [board.BoardDim][board.BoardDim]int{
	{5000, -1500, 500, 400, 400, 500, -1500, 5000},
	{-1500, -2500, -225, -250, -250, -225, -2500, -1500},
	{500, -225, 15, 5, 5, 15, -225, 500},
	{400, -250, 5, 25, 25, 5, -250, 400},
	{400, -250, 5, 25, 25, 5, -250, 400},
	{500, -225, 15, 5, 5, 15, -225, 500},
	{-1500, -2500, -225, -250, -250, -225, -2500, -1500},
	{5000, -1500, 500, 400, 400, 500, -1500, 5000},
}

// PositionalCalculator scores weighted material plus mobility.
//
// The mobility term follows whoever is on turn in the evaluated position,
// not the side that started the search: +MobilityBonus per legal move if me
// is on turn, -MobilityBonus per legal move if the opponent is.
type PositionalCalculator struct{}

func (PositionalCalculator) Evaluate(g *game.Game, me board.Color) int {
	return Material(g.Board(), me) + Mobility(g, me)
}

// Material sums PositionWeights over me's discs and subtracts the same sum
// over the opponent's discs.
func Material(b *board.GameBoard, me board.Color) int {
	opp := me.Opponent()
	mine, theirs := 0, 0
	for i := 0; i < board.BoardDim; i++ {
		for j := 0; j < board.BoardDim; j++ {
			switch b.Get(i, j) {
			case me:
				mine += PositionWeights[i][j]
			case opp:
				theirs += PositionWeights[i][j]
			}
		}
	}
	return mine - theirs
}

// Mobility is the signed mobility term for the side on turn in g.
func Mobility(g *game.Game, me board.Color) int {
	n := g.NumValidMoves()
	if g.PlayerOnTurn() == me {
		return n * MobilityBonus
	}
	return -n * MobilityBonus
}

// DiscCountCalculator is the plain "my discs minus their discs" evaluation.
type DiscCountCalculator struct{}

func (DiscCountCalculator) Evaluate(g *game.Game, me board.Color) int {
	return g.SpreadFor(me)
}
