package player

import (
	"lukechampine.com/frand"

	"github.com/domino14/reversi/game"
	"github.com/domino14/reversi/move"
)

// RandomPlayer plays a uniformly random legal move. It is a sparring
// partner for automatic games.
type RandomPlayer struct{}

func (RandomPlayer) Name() string {
	return RandomPlayerName
}

func (RandomPlayer) ChooseMove(g *game.Game) move.Move {
	moves := g.ValidMoves()
	return moves[frand.Intn(len(moves))]
}

// GreedyPlayer plays the move that leaves it with the most discs. Ties go
// to the earliest move in row-major order.
type GreedyPlayer struct{}

func (GreedyPlayer) Name() string {
	return GreedyPlayerName
}

func (GreedyPlayer) ChooseMove(g *game.Game) move.Move {
	me := g.PlayerOnTurn()
	var best ScoredMove
	for i, m := range g.ValidMoves() {
		discs := simulate(g, m).PointsFor(me)
		if i == 0 || discs > best.Score {
			best = ScoredMove{Move: m, Score: discs}
		}
	}
	return best.Move
}
