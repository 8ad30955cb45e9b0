// Package automatic plays computer-vs-computer Othello games, for
// comparing players and for collecting data.
package automatic

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/reversi/ai/player"
	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/game"
)

// LogHeader is the first line of the turn log.
const LogHeader = "playerID,gameID,turn,color,move,black,white,elapsedms\n"

// GameRunner is the master struct here for the automatic game logic.
type GameRunner struct {
	game      *game.Game
	gameID    string
	logchan   chan string
	aiplayers [2]player.AIPlayer
	// colors[i] is the color aiplayers[i] plays in the current game.
	colors [2]board.Color
}

// GameResult is the outcome of one finished game, seen from the first
// player's side.
type GameResult struct {
	GameID      string
	FirstColor  board.Color
	Winner      int // 0 or 1 for a player index, -1 for a draw
	FirstSpread int
	Turns       int
}

// NewGameRunner instantiates a runner for the two given players. logchan
// may be nil.
func NewGameRunner(logchan chan string, p1, p2 player.AIPlayer) *GameRunner {
	return &GameRunner{logchan: logchan, aiplayers: [2]player.AIPlayer{p1, p2}}
}

// StartGame sets up a fresh game. If firstIsBlack is false the second
// player gets the black discs.
func (r *GameRunner) StartGame(firstIsBlack bool) {
	r.game = game.NewGame()
	r.gameID = hex.EncodeToString(frand.Bytes(8))
	if firstIsBlack {
		r.colors = [2]board.Color{board.Black, board.White}
	} else {
		r.colors = [2]board.Color{board.White, board.Black}
	}
}

func (r *GameRunner) Game() *game.Game {
	return r.game
}

func (r *GameRunner) playerIdx(c board.Color) int {
	if r.colors[0] == c {
		return 0
	}
	return 1
}

// PlayBestTurn asks the player on turn for a move and plays it.
func (r *GameRunner) PlayBestTurn() error {
	onturn := r.game.PlayerOnTurn()
	idx := r.playerIdx(onturn)
	tstart := time.Now()
	m := r.aiplayers[idx].ChooseMove(r.game)
	elapsed := time.Since(tstart)

	if err := r.game.PlayMove(m, true); err != nil {
		return fmt.Errorf("player %s: %w", r.aiplayers[idx].Name(), err)
	}
	if r.logchan != nil {
		r.logchan <- fmt.Sprintf("%v,%v,%v,%v,%v,%v,%v,%v\n",
			r.aiplayers[idx].Name()+fmt.Sprintf("-%d", idx+1),
			r.gameID,
			r.game.Turn(),
			onturn.DisplayString(),
			m,
			r.game.PointsFor(board.Black),
			r.game.PointsFor(board.White),
			elapsed.Milliseconds())
	}
	return nil
}

// PlayFullGame plays a fresh game to the end and returns its result. It
// gives up between turns once ctx is done.
func (r *GameRunner) PlayFullGame(ctx context.Context, firstIsBlack bool) (GameResult, error) {
	r.StartGame(firstIsBlack)
	for r.game.Playing() {
		if err := ctx.Err(); err != nil {
			return GameResult{}, err
		}
		if err := r.PlayBestTurn(); err != nil {
			return GameResult{}, err
		}
	}
	res := GameResult{
		GameID:      r.gameID,
		FirstColor:  r.colors[0],
		Winner:      -1,
		FirstSpread: r.game.SpreadFor(r.colors[0]),
		Turns:       r.game.Turn(),
	}
	if w := r.game.Winner(); w != board.Empty {
		res.Winner = r.playerIdx(w)
	}
	log.Debug().Str("gameID", res.GameID).Int("spread", res.FirstSpread).
		Str("transcript", r.game.Transcript()).Msg("game-over")
	return res, nil
}
