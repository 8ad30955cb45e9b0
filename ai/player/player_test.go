package player

import (
	"errors"
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/game"
	"github.com/domino14/reversi/move"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func emptyRowsWith(rows map[int]string) []string {
	out := make([]string, board.BoardDim)
	for i := range out {
		out[i] = "........"
		if r, ok := rows[i]; ok {
			out[i] = r
		}
	}
	return out
}

func mustMove(t *testing.T, coords string) move.Move {
	m, err := move.FromBoardGameCoords(coords)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestDepthForBranching(t *testing.T) {
	is := is.New(t)
	for _, tc := range []struct {
		branching int
		depth     int
	}{
		{1, 6}, {2, 6}, {4, 6},
		{5, 5}, {6, 5},
		{7, 4}, {12, 4}, {20, 4},
	} {
		is.Equal(DepthForBranching(tc.branching), tc.depth)
	}
}

func TestOnlyMove(t *testing.T) {
	is := is.New(t)
	p := NewAlphaBetaPlayer(nil)

	b := board.MakeBoard(emptyRowsWith(map[int]string{0: "XO......"}))
	g := game.NewFromBoard(b, board.Black)
	is.Equal(g.NumValidMoves(), 1)
	is.Equal(p.ChooseMove(g), mustMove(t, "C1"))

	b = board.MakeBoard(emptyRowsWith(map[int]string{0: "OX......"}))
	g = game.NewFromBoard(b, board.White)
	is.Equal(g.NumValidMoves(), 1)
	is.Equal(p.ChooseMove(g), mustMove(t, "C1"))
}

func TestForcedPassBeatsHigherScore(t *testing.T) {
	is := is.New(t)
	b := board.MakeBoard(emptyRowsWith(map[int]string{
		0: "XO......",
		4: "....OX..",
	}))
	g := game.NewFromBoard(b, board.Black)
	p := NewAlphaBetaPlayer(nil)

	// C1 lets white reply at G5; D5 leaves white without a move.
	ranked := p.RankMoves(g)
	is.Equal(ranked, []ScoredMove{
		{Move: mustMove(t, "C1"), Score: 4220},
		{Move: mustMove(t, "D5"), Score: 4055},
	})
	is.Equal(p.ChooseMove(g), mustMove(t, "D5"))
}

func TestCornerBeatsHigherScore(t *testing.T) {
	is := is.New(t)
	b := board.MakeBoard(emptyRowsWith(map[int]string{
		0: ".XOO....",
		7: ".....XO.",
	}))
	g := game.NewFromBoard(b, board.Black)
	p := NewAlphaBetaPlayer(nil)

	ranked := p.RankMoves(g)
	is.Equal(ranked, []ScoredMove{
		{Move: mustMove(t, "E1"), Score: 400},
		{Move: mustMove(t, "H8"), Score: -400},
	})
	is.Equal(p.ChooseMove(g), mustMove(t, "H8"))
}

func TestCornerForWhite(t *testing.T) {
	is := is.New(t)
	b := board.MakeBoard(emptyRowsWith(map[int]string{
		0: ".OXX....",
		7: ".....OX.",
	}))
	g := game.NewFromBoard(b, board.White)
	is.Equal(NewAlphaBetaPlayer(nil).ChooseMove(g), mustMove(t, "H8"))
}

func TestChooseMoveLeavesGameAlone(t *testing.T) {
	is := is.New(t)
	g := game.NewGame()
	before := *g.Board()
	m := NewAlphaBetaPlayer(nil).ChooseMove(g)
	// The four openings are symmetric, so they tie and the first one wins.
	is.Equal(m, mustMove(t, "D3"))
	is.Equal(*g.Board(), before)
	is.Equal(g.PlayerOnTurn(), board.Black)
}

func TestChooseMovePanicsWithoutMoves(t *testing.T) {
	is := is.New(t)
	b := board.MakeBoard(emptyRowsWith(map[int]string{0: "XXX....."}))
	g := game.NewFromBoard(b, board.White)
	is.True(g.Over())
	defer func() {
		is.True(recover() != nil)
	}()
	NewAlphaBetaPlayer(nil).ChooseMove(g)
}

func TestGreedyPlayer(t *testing.T) {
	is := is.New(t)
	// Every opening flips one disc; the first one wins the tie.
	g := game.NewGame()
	is.Equal(GreedyPlayer{}.ChooseMove(g), mustMove(t, "D3"))

	// C1 flips one disc, D1 flips two.
	b := board.MakeBoard(emptyRowsWith(map[int]string{0: "XO..OOX."}))
	g = game.NewFromBoard(b, board.Black)
	is.Equal(GreedyPlayer{}.ChooseMove(g), mustMove(t, "D1"))
}

func TestRandomPlayerPlaysLegalMoves(t *testing.T) {
	is := is.New(t)
	g := game.NewGame()
	for g.Playing() {
		m := RandomPlayer{}.ChooseMove(g)
		is.True(g.ValidMove(m.Row(), m.Col()))
		is.NoErr(g.PlayMove(m, false))
	}
	is.Equal(g.NumValidMoves(), 0)
}

func TestNewAIPlayer(t *testing.T) {
	is := is.New(t)
	for _, name := range []string{AlphaBetaPlayerName, GreedyPlayerName, RandomPlayerName} {
		p, err := NewAIPlayer(name)
		is.NoErr(err)
		is.Equal(p.Name(), name)
	}
	_, err := NewAIPlayer("deep-blue")
	is.True(errors.Is(err, ErrUnknownPlayer))
}
