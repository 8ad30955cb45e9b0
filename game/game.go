// Package game encapsulates the mechanics of an Othello game: legality,
// flipping, turn passing and the end of the game. Players (human or AI)
// live outside this package and only query and mutate a Game.
package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/move"
)

var (
	// ErrInvalidMove is returned by PlayMove for a placement that does not
	// flank any opponent disc, is off the board, or lands on a disc.
	ErrInvalidMove = errors.New("invalid move")
	ErrGameOver    = errors.New("cannot play a move on a game that is over")
)

// Game is the state of an Othello game: the board, whose turn it is, and
// whether the game is still being played.
// Note: a Game doesn't care how it is played. AI players, human players,
// etc. play a game outside of the scope of this package.
type Game struct {
	board   board.GameBoard
	onturn  board.Color
	playing bool

	turnnum int
	// history is only written to when PlayMove is asked to record.
	history []Turn
}

// NewGame is how one instantiates a brand new game. Black moves first.
func NewGame() *Game {
	return &Game{
		board:   board.StandardStart(),
		onturn:  board.Black,
		playing: true,
	}
}

// NewFromBoard creates a game from an arbitrary position with onturn to
// move. If onturn has no legal move but the other side does, the turn is
// handed over; if neither side can move the game is already over.
func NewFromBoard(b board.GameBoard, onturn board.Color) *Game {
	g := &Game{
		board:   b,
		onturn:  onturn,
		playing: true,
	}
	if !hasLegalMove(&g.board, onturn) {
		if hasLegalMove(&g.board, onturn.Opponent()) {
			g.onturn = onturn.Opponent()
		} else {
			g.playing = false
		}
	}
	return g
}

// Copy returns an independent deep copy of the game. The history is not
// carried over; copies are meant for simulation.
func (g *Game) Copy() *Game {
	return &Game{
		board:   g.board,
		onturn:  g.onturn,
		playing: g.playing,
		turnnum: g.turnnum,
	}
}

// ValidMove returns true if the side to move may place a disc at (row, col).
func (g *Game) ValidMove(row, col int) bool {
	if !g.playing {
		return false
	}
	return isLegal(&g.board, row, col, g.onturn)
}

// ValidMoves returns every legal move for the side to move in row-major
// order.
func (g *Game) ValidMoves() []move.Move {
	var moves []move.Move
	for i := 0; i < board.BoardDim; i++ {
		for j := 0; j < board.BoardDim; j++ {
			if g.ValidMove(i, j) {
				moves = append(moves, move.NewMove(i, j))
			}
		}
	}
	return moves
}

// NumValidMoves returns the mobility of the side to move.
func (g *Game) NumValidMoves() int {
	if !g.playing {
		return 0
	}
	return countLegalMoves(&g.board, g.onturn)
}

// PlayMove places a disc for the side to move. On an illegal placement the
// game is left untouched and an error wrapping ErrInvalidMove is returned.
// After a legal placement the opponent is on turn if they can move; if they
// cannot, the mover goes again (a forced pass); if neither side can move the
// game is over.
func (g *Game) PlayMove(m move.Move, addToHistory bool) error {
	if !g.playing {
		return ErrGameOver
	}
	if m.Action() != move.MoveTypePlay || !isLegal(&g.board, m.Row(), m.Col(), g.onturn) {
		return fmt.Errorf("%w: %v for %v", ErrInvalidMove, m, g.onturn)
	}
	mover := g.onturn
	flipped := place(&g.board, m.Row(), m.Col(), mover)
	g.turnnum++
	if addToHistory {
		g.history = append(g.history, Turn{Player: mover, Move: m, Flipped: flipped})
	}

	opp := mover.Opponent()
	switch {
	case hasLegalMove(&g.board, opp):
		g.onturn = opp
	case hasLegalMove(&g.board, mover):
		// opp must pass; mover stays on turn.
		if addToHistory {
			g.history = append(g.history, Turn{Player: opp, Move: move.PassMove})
		}
	default:
		g.playing = false
		if addToHistory {
			log.Debug().Int("black", g.board.Count(board.Black)).
				Int("white", g.board.Count(board.White)).Msg("game-over")
		}
	}
	return nil
}

func (g *Game) Board() *board.GameBoard {
	return &g.board
}

// CellAt returns the owner of the square at (row, col).
func (g *Game) CellAt(row, col int) board.Color {
	return g.board.Get(row, col)
}

func (g *Game) PlayerOnTurn() board.Color {
	return g.onturn
}

func (g *Game) Playing() bool {
	return g.playing
}

// Over returns true once neither side can move.
func (g *Game) Over() bool {
	return !g.playing
}

// Turn returns the number of discs placed since this game was created.
func (g *Game) Turn() int {
	return g.turnnum
}

// PointsFor returns the number of discs c has on the board.
func (g *Game) PointsFor(c board.Color) int {
	return g.board.Count(c)
}

// SpreadFor returns c's disc count minus the opponent's.
func (g *Game) SpreadFor(c board.Color) int {
	return g.board.Count(c) - g.board.Count(c.Opponent())
}

// Winner returns the side with more discs, or Empty for a draw. It can be
// called at any point but is only final once the game is over.
func (g *Game) Winner() board.Color {
	s := g.SpreadFor(board.Black)
	switch {
	case s > 0:
		return board.Black
	case s < 0:
		return board.White
	}
	return board.Empty
}

func (g *Game) History() []Turn {
	return g.history
}
