package equity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/equity"
	"github.com/domino14/reversi/game"
)

func TestWeightsSymmetric(t *testing.T) {
	w := equity.PositionWeights
	for i := 0; i < board.BoardDim; i++ {
		for j := 0; j < board.BoardDim; j++ {
			assert.Equal(t, w[i][j], w[7-i][j], "vertical mirror at %d,%d", i, j)
			assert.Equal(t, w[i][j], w[i][7-j], "horizontal mirror at %d,%d", i, j)
			assert.Equal(t, w[i][j], w[j][i], "diagonal mirror at %d,%d", i, j)
		}
	}
}

func TestEvaluateStart(t *testing.T) {
	g := game.NewGame()
	calc := equity.PositionalCalculator{}
	// Material is balanced; black is on turn with 4 moves.
	assert.Equal(t, 2000, calc.Evaluate(g, board.Black))
	assert.Equal(t, -2000, calc.Evaluate(g, board.White))
}

func TestEvaluateHandBuilt(t *testing.T) {
	b := board.MakeBoard([]string{
		".XOO....",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		".....XO.",
	})
	g := game.NewFromBoard(b, board.Black)
	calc := equity.PositionalCalculator{}

	// black: B1 -1500, F8 500; white: C1 500, D1 400, G8 -1500.
	assert.Equal(t, -400, equity.Material(g.Board(), board.Black))
	// Black has E1 and H8.
	assert.Equal(t, 2, g.NumValidMoves())
	assert.Equal(t, -400+1000, calc.Evaluate(g, board.Black))
	assert.Equal(t, 400-1000, calc.Evaluate(g, board.White))
}

func TestEvaluateColorSwap(t *testing.T) {
	calc := equity.PositionalCalculator{}
	g := game.NewGame()
	for _, coords := range [][2]int{{2, 3}, {2, 2}, {3, 2}, {4, 5}} {
		moves := g.ValidMoves()
		assert.NotEmpty(t, moves)
		// the requested square if legal, otherwise the first legal move
		m := moves[0]
		for _, cand := range moves {
			if cand.Row() == coords[0] && cand.Col() == coords[1] {
				m = cand
			}
		}
		assert.NoError(t, g.PlayMove(m, false))

		mat := equity.Material(g.Board(), board.Black)
		assert.Equal(t, -mat, equity.Material(g.Board(), board.White))
		mob := equity.Mobility(g, board.Black)
		assert.Equal(t, -mob, equity.Mobility(g, board.White))
		assert.Equal(t, -calc.Evaluate(g, board.Black), calc.Evaluate(g, board.White))
	}
}

func TestEvaluateGameOverHasNoMobility(t *testing.T) {
	b := board.MakeBoard([]string{
		"XXX.....",
		"........",
		"........",
		"........",
		"....OOO.",
		"........",
		"........",
		"........",
	})
	g := game.NewFromBoard(b, board.White)
	assert.True(t, g.Over())
	// 5000 - 1500 + 500 for black, 25 + 5 - 250 for white.
	assert.Equal(t, 4220, equity.PositionalCalculator{}.Evaluate(g, board.Black))
}

func TestDiscCount(t *testing.T) {
	g := game.NewGame()
	assert.NoError(t, g.PlayMove(g.ValidMoves()[0], false))
	assert.Equal(t, 3, equity.DiscCountCalculator{}.Evaluate(g, board.Black))
	assert.Equal(t, -3, equity.DiscCountCalculator{}.Evaluate(g, board.White))
}
