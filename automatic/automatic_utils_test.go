package automatic

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/reversi/ai/player"
	"github.com/domino14/reversi/config"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigAutoplayPlayer1, player.GreedyPlayerName)
	cfg.Set(config.ConfigAutoplayPlayer2, player.RandomPlayerName)
	return &cfg
}

func TestCompVComp(t *testing.T) {
	is := is.New(t)
	var out bytes.Buffer
	summary, err := StartCompVComp(context.Background(), testConfig(), 6, 3, &out)
	is.NoErr(err)
	is.Equal(summary.Games, 6)
	is.Equal(summary.Players, [2]string{"greedy", "random"})
	is.Equal(summary.Wins[0]+summary.Wins[1]+summary.Draws, 6)
	is.True(strings.HasPrefix(out.String(), LogHeader))

	analyzed, err := AnalyzeLogFile(&out)
	is.NoErr(err)
	is.Equal(analyzed.Games, 6)
	is.Equal(analyzed.Players, summary.Players)
	is.Equal(analyzed.Wins, summary.Wins)
	is.Equal(analyzed.Draws, summary.Draws)
	assert.InDelta(t, summary.MeanSpread, analyzed.MeanSpread, 1e-9)
	assert.InDelta(t, summary.StdevSpread, analyzed.StdevSpread, 1e-9)
}

func TestCompVCompNoOutput(t *testing.T) {
	is := is.New(t)
	summary, err := StartCompVComp(context.Background(), testConfig(), 2, 1, nil)
	is.NoErr(err)
	is.Equal(summary.Games, 2)
}

func TestCompVCompCancelled(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	summary, err := StartCompVComp(ctx, testConfig(), 1000, 2, nil)
	is.True(errors.Is(err, context.Canceled))
	is.True(summary.Games < 1000)
}

func TestCompVCompStopsMidRun(t *testing.T) {
	is := is.New(t)
	cfg := testConfig()
	cfg.Set(config.ConfigAutoplayPlayer1, player.AlphaBetaPlayerName)
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	summary, err := StartCompVComp(ctx, cfg, 100000, 1, nil)
	is.True(errors.Is(err, context.DeadlineExceeded))
	// Queued games must not be played out after the deadline.
	is.True(time.Since(start) < 3*time.Second)
	is.True(summary.Games < 20)
	is.Equal(summary.Games, int(CVCCounter.Value()))
}

func TestCompVCompBadPlayer(t *testing.T) {
	is := is.New(t)
	cfg := testConfig()
	cfg.Set(config.ConfigAutoplayPlayer2, "deep-blue")
	_, err := StartCompVComp(context.Background(), cfg, 2, 1, nil)
	is.True(errors.Is(err, player.ErrUnknownPlayer))
}

func TestCompVCompAlreadyRunning(t *testing.T) {
	is := is.New(t)
	running.Store(true)
	defer running.Store(false)
	_, err := StartCompVComp(context.Background(), testConfig(), 2, 1, nil)
	is.True(errors.Is(err, ErrGamesInProgress))
}

func TestSummarize(t *testing.T) {
	is := is.New(t)
	s := Summarize([2]string{"a", "b"}, []GameResult{
		{FirstSpread: 4, Winner: 0},
		{FirstSpread: -2, Winner: 1},
		{FirstSpread: 0, Winner: -1},
	})
	is.Equal(s.Games, 3)
	is.Equal(s.Wins, [2]int{1, 1})
	is.Equal(s.Draws, 1)
	assert.InDelta(t, 2.0/3.0, s.MeanSpread, 1e-9)
	assert.InDelta(t, 3.0550504633, s.StdevSpread, 1e-9)
	is.True(strings.Contains(s.String(), "a wins: 1 (33.333%)"))
	is.Equal(s.Spreads, []float64{4, -2, 0})
	var hist bytes.Buffer
	is.NoErr(s.Histogram(&hist))
	is.True(hist.Len() > 0)

	empty := Summarize([2]string{"a", "b"}, nil)
	is.Equal(empty.Games, 0)
	is.Equal(empty.String(), "Games played: 0\n")
	hist.Reset()
	is.NoErr(empty.Histogram(&hist))
	is.Equal(hist.String(), "no games\n")
}

func TestAnalyzeLogFile(t *testing.T) {
	is := is.New(t)
	log := LogHeader +
		"alphabeta-1,g1,1,X,D3,4,1,10\n" +
		"greedy-2,g1,2,O,C3,3,3,0\n" +
		"alphabeta-1,g1,60,X,H8,40,24,12\n" +
		"greedy-2,g2,1,X,D3,4,1,0\n" +
		"alphabeta-1,g2,59,O,A1,20,44,11\n" +
		"greedy-2,g3,1,X,D3,4,1,0\n" +
		"alphabeta-1,g3,60,O,pass,32,32,11\n"
	s, err := AnalyzeLogFile(strings.NewReader(log))
	is.NoErr(err)
	is.Equal(s.Players, [2]string{"alphabeta", "greedy"})
	is.Equal(s.Games, 3)
	is.Equal(s.Wins, [2]int{2, 0})
	is.Equal(s.Draws, 1)
	assert.InDelta(t, 40.0/3.0, s.MeanSpread, 1e-9)
}

func TestAnalyzeLogFileBadLine(t *testing.T) {
	is := is.New(t)
	_, err := AnalyzeLogFile(strings.NewReader("nobody,g1,1,X,D3,4,1,10\n"))
	is.True(errors.Is(err, ErrBadLogLine))
}
