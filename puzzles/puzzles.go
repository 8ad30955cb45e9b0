// Package puzzles checks AI players against positions with known best
// moves.
package puzzles

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/domino14/reversi/ai/player"
	"github.com/domino14/reversi/cgp"
	"github.com/domino14/reversi/game"
	"github.com/domino14/reversi/move"
)

//go:embed default_suite.yaml
var defaultSuite []byte

var ErrBadPuzzle = errors.New("bad puzzle")

// Puzzle is a position and the moves that solve it. Position is in CGP
// form.
type Puzzle struct {
	Name     string   `yaml:"name"`
	Position string   `yaml:"position"`
	Best     []string `yaml:"best"`
	Comment  string   `yaml:"comment,omitempty"`
}

type Suite []Puzzle

// Result is the outcome of one puzzle.
type Result struct {
	Puzzle Puzzle
	Played string
	Passed bool
}

// Load reads a YAML suite and checks that every puzzle is playable.
func Load(r io.Reader) (Suite, error) {
	var s Suite
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, err
	}
	for i, p := range s {
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("puzzle %d (%s): %w", i+1, p.Name, err)
		}
	}
	return s, nil
}

// Default returns the built-in suite.
func Default() Suite {
	s, err := Load(bytes.NewReader(defaultSuite))
	if err != nil {
		panic(err)
	}
	return s
}

func (p Puzzle) validate() error {
	g, err := cgp.ParseCGP(p.Position)
	if err != nil {
		return err
	}
	if !g.Playing() {
		return fmt.Errorf("%w: game is over", ErrBadPuzzle)
	}
	if len(p.Best) == 0 {
		return fmt.Errorf("%w: no best move", ErrBadPuzzle)
	}
	for _, b := range p.Best {
		m, err := move.FromBoardGameCoords(b)
		if err != nil {
			return err
		}
		if !g.ValidMove(m.Row(), m.Col()) {
			return fmt.Errorf("%w: %s is not legal", ErrBadPuzzle, b)
		}
	}
	return nil
}

// Run asks p for a move in every puzzle of the suite.
func Run(suite Suite, p player.AIPlayer) []Result {
	results := make([]Result, 0, len(suite))
	for _, pz := range suite {
		g, err := cgp.ParseCGP(pz.Position)
		if err != nil {
			// Load validates; a hand-built suite might not be.
			log.Err(err).Str("puzzle", pz.Name).Msg("skipping-puzzle")
			results = append(results, Result{Puzzle: pz})
			continue
		}
		played := p.ChooseMove(g).String()
		passed := lo.ContainsBy(pz.Best, func(b string) bool { return strings.EqualFold(b, played) })
		log.Debug().Str("puzzle", pz.Name).Str("played", played).Bool("passed", passed).Msg("puzzle-result")
		results = append(results, Result{Puzzle: pz, Played: played, Passed: passed})
	}
	return results
}

// Score counts the passed puzzles.
func Score(results []Result) int {
	return lo.CountBy(results, func(r Result) bool { return r.Passed })
}

// CreatePuzzlesFromGame replays the history of g from the standard start and
// turns every position where the best move beats the runner-up by more than
// margin into a puzzle.
func CreatePuzzlesFromGame(g *game.Game, margin int) (Suite, error) {
	ranker := player.NewAlphaBetaPlayer(nil)
	replay := game.NewGame()
	var suite Suite
	for _, t := range g.History() {
		if t.Move.Action() == move.MoveTypePass {
			continue
		}
		ranked := ranker.RankMoves(replay)
		if len(ranked) > 1 {
			sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
			if ranked[0].Score > ranked[1].Score+margin {
				suite = append(suite, Puzzle{
					Name:     fmt.Sprintf("turn-%d", replay.Turn()+1),
					Position: cgp.ToCGP(replay),
					Best:     []string{ranked[0].Move.String()},
					Comment:  fmt.Sprintf("played %s", t.Move),
				})
			}
		}
		if err := replay.PlayMove(t.Move, false); err != nil {
			return nil, err
		}
	}
	return suite, nil
}
