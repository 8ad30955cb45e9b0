package player

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/reversi/alphabeta"
	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/equity"
	"github.com/domino14/reversi/game"
	"github.com/domino14/reversi/move"
)

// AlphaBetaPlayer picks moves with a depth-limited alpha-beta search,
// after two shortcuts that skip the search entirely:
//
//  1. a move after which the opponent must pass is played at once;
//  2. otherwise a corner move is played at once.
//
// Candidates are considered in row-major order, so the first qualifying
// shortcut wins. These shortcuts are not always optimal.
type AlphaBetaPlayer struct {
	eval equity.Evaluator
}

// NewAlphaBetaPlayer returns a player scoring leaves with eval. A nil eval
// means equity.PositionalCalculator.
func NewAlphaBetaPlayer(eval equity.Evaluator) *AlphaBetaPlayer {
	if eval == nil {
		eval = equity.PositionalCalculator{}
	}
	return &AlphaBetaPlayer{eval: eval}
}

func (p *AlphaBetaPlayer) Name() string {
	return AlphaBetaPlayerName
}

// ChooseMove panics if g has no legal move; calling it that way is a
// programming error in the game loop.
func (p *AlphaBetaPlayer) ChooseMove(g *game.Game) move.Move {
	tstart := time.Now()
	// The side we play for is whoever is on turn right now.
	me := g.PlayerOnTurn()
	numMoves := g.NumValidMoves()
	if numMoves == 0 {
		panic("ChooseMove called without a legal move")
	}
	depth := DepthForBranching(numMoves)
	log.Debug().Int("depth", depth).Int("branching", numMoves).
		Str("player", me.String()).Msg("alphabeta-choose-move")

	solver := alphabeta.NewSolver(p.eval, me)
	var candidates []ScoredMove

	for row := 0; row < board.BoardDim; row++ {
		for col := 0; col < board.BoardDim; col++ {
			if !g.ValidMove(row, col) {
				continue
			}
			m := move.NewMove(row, col)
			c := simulate(g, m)
			if c.PlayerOnTurn() == me {
				log.Debug().Str("move", m.String()).Msg("forces-pass")
				return m
			}
			if m.IsCorner() {
				log.Debug().Str("move", m.String()).Msg("takes-corner")
				return m
			}
			candidates = append(candidates, ScoredMove{
				Move:  m,
				Score: solver.Search(c, depth-1, alphabeta.NegInfinity, alphabeta.Infinity),
			})
		}
	}

	best := bestCandidate(candidates)
	log.Debug().Str("move", best.Move.String()).Int("score", best.Score).
		Int("nodes", solver.Nodes()).Int("depth", depth).
		Dur("elapsed", time.Since(tstart)).Msg("alphabeta-best-move")
	return best.Move
}

// RankMoves scores every legal move with the same search ChooseMove uses,
// without the pass and corner shortcuts. Moves are in row-major order.
func (p *AlphaBetaPlayer) RankMoves(g *game.Game) []ScoredMove {
	me := g.PlayerOnTurn()
	depth := DepthForBranching(g.NumValidMoves())
	solver := alphabeta.NewSolver(p.eval, me)
	var ranked []ScoredMove
	for _, m := range g.ValidMoves() {
		ranked = append(ranked, ScoredMove{
			Move:  m,
			Score: solver.Search(simulate(g, m), depth-1, alphabeta.NegInfinity, alphabeta.Infinity),
		})
	}
	return ranked
}

// bestCandidate returns the first candidate with the highest score.
func bestCandidate(candidates []ScoredMove) ScoredMove {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	return best
}

// simulate returns a copy of g with the legal move m applied.
func simulate(g *game.Game, m move.Move) *game.Game {
	c := g.Copy()
	if err := c.PlayMove(m, false); err != nil {
		panic(err)
	}
	return c
}
