package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/reversi/ai/player"
	"github.com/domino14/reversi/config"
	"github.com/domino14/reversi/puzzles"
)

func main() {
	cfg := config.DefaultConfig()
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	suite := puzzles.Default()
	if path := cfg.GetString(config.ConfigPuzzleFile); path != "" {
		f, err := os.Open(path)
		if err != nil {
			log.Fatal().Err(err).Msg("could not open puzzle file")
		}
		suite, err = puzzles.Load(f)
		f.Close()
		if err != nil {
			log.Fatal().Err(err).Msg("could not load puzzle file")
		}
	}

	results := puzzles.Run(suite, player.NewAlphaBetaPlayer(nil))
	for _, r := range results {
		if !r.Passed {
			fmt.Printf("FAIL %s: played %s, want one of %v\n", r.Puzzle.Name, r.Played, r.Puzzle.Best)
		}
	}
	solved := puzzles.Score(results)
	fmt.Printf("Solved %d of %d\n", solved, len(results))
	if solved != len(results) {
		os.Exit(1)
	}
}
