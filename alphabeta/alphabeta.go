// Package alphabeta implements a depth-limited minimax search with
// alpha-beta pruning over Othello positions.
package alphabeta

import (
	"math"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/equity"
	"github.com/domino14/reversi/game"
	"github.com/domino14/reversi/move"
)

// thanks Wikipedia:
/**function alphabeta(node, depth, α, β, maximizingPlayer) is
    if depth = 0 or node is a terminal node then
        return the heuristic value of node
    if maximizingPlayer then
		for each child of node do
            α := max(α, alphabeta(child, depth − 1, α, β, FALSE))
            if α ≥ β then
                return α (* β cut-off *)
        return α
    else
		for each child of node do
            β := min(β, alphabeta(child, depth − 1, α, β, TRUE))
            if α ≥ β then
                return β (* α cut-off *)
        return β
(* Initial call *)
alphabeta(origin, depth, −∞, +∞, TRUE)
**/

const (
	// Infinity bounds the root window.
	Infinity    = math.MaxInt
	NegInfinity = math.MinInt
)

// Solver searches on behalf of a single player. A Solver is meant to live
// for one decision; it is not safe for concurrent use.
type Solver struct {
	eval equity.Evaluator
	// maximizingPlayer is the player who we call this function for.
	maximizingPlayer board.Color
	totalNodes       int
}

// NewSolver returns a solver that maximizes for me using eval at the
// leaves.
func NewSolver(eval equity.Evaluator, me board.Color) *Solver {
	return &Solver{eval: eval, maximizingPlayer: me}
}

// Search returns the alpha-beta value of g searched depth plies deep.
// Children are generated in row-major order from independent copies of g;
// g itself is never modified.
func (s *Solver) Search(g *game.Game, depth int, alpha, beta int) int {
	s.totalNodes++
	if depth == 0 || g.Over() {
		return s.eval.Evaluate(g, s.maximizingPlayer)
	}
	if g.PlayerOnTurn() == s.maximizingPlayer {
		for row := 0; row < board.BoardDim; row++ {
			for col := 0; col < board.BoardDim; col++ {
				if !g.ValidMove(row, col) {
					continue
				}
				v := s.Search(child(g, row, col), depth-1, alpha, beta)
				if v > alpha {
					alpha = v
				}
				if alpha >= beta {
					return alpha
				}
			}
		}
		return alpha
	}
	for row := 0; row < board.BoardDim; row++ {
		for col := 0; col < board.BoardDim; col++ {
			if !g.ValidMove(row, col) {
				continue
			}
			v := s.Search(child(g, row, col), depth-1, alpha, beta)
			if v < beta {
				beta = v
			}
			if alpha >= beta {
				return beta
			}
		}
	}
	return beta
}

// Minimax is the same search without pruning. It visits every node and is
// kept as the reference that Search must agree with.
func (s *Solver) Minimax(g *game.Game, depth int) int {
	s.totalNodes++
	if depth == 0 || g.Over() {
		return s.eval.Evaluate(g, s.maximizingPlayer)
	}
	maximizing := g.PlayerOnTurn() == s.maximizingPlayer
	best := Infinity
	if maximizing {
		best = NegInfinity
	}
	for row := 0; row < board.BoardDim; row++ {
		for col := 0; col < board.BoardDim; col++ {
			if !g.ValidMove(row, col) {
				continue
			}
			v := s.Minimax(child(g, row, col), depth-1)
			if maximizing && v > best || !maximizing && v < best {
				best = v
			}
		}
	}
	return best
}

// Nodes returns the number of positions visited since the last reset.
func (s *Solver) Nodes() int {
	return s.totalNodes
}

// ResetNodes zeroes the visited-node counter.
func (s *Solver) ResetNodes() {
	s.totalNodes = 0
}

// child returns a copy of g with the move at (row, col) applied. The move
// has already been checked, so PlayMove cannot fail.
func child(g *game.Game, row, col int) *game.Game {
	c := g.Copy()
	if err := c.PlayMove(move.NewMove(row, col), false); err != nil {
		panic(err)
	}
	return c
}
