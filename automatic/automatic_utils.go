package automatic

// Data collection for automatic games. Allow computer vs computer games, etc.

import (
	"context"
	"errors"
	"expvar"
	"io"
	"sync"
	"sync/atomic"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/domino14/reversi/ai/player"
	"github.com/domino14/reversi/config"
)

var (
	CVCCounter *expvar.Int
	IsPlaying  *expvar.Int

	ErrGamesInProgress = errors.New("games are already being played, please wait till complete")

	running atomic.Bool
)

func init() {
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

// Summary aggregates the results of a batch of games.
type Summary struct {
	Players     [2]string
	Games       int
	Wins        [2]int
	Draws       int
	MeanSpread  float64 // from the first player's side
	StdevSpread float64
	Spreads     []float64
}

// Summarize computes win counts and spread statistics.
func Summarize(names [2]string, results []GameResult) Summary {
	s := Summary{Players: names, Games: len(results)}
	s.Wins[0] = lo.CountBy(results, func(r GameResult) bool { return r.Winner == 0 })
	s.Wins[1] = lo.CountBy(results, func(r GameResult) bool { return r.Winner == 1 })
	s.Draws = lo.CountBy(results, func(r GameResult) bool { return r.Winner == -1 })
	if len(results) == 0 {
		return s
	}
	spreads := lo.Map(results, func(r GameResult, _ int) float64 { return float64(r.FirstSpread) })
	s.Spreads = spreads
	s.MeanSpread = stat.Mean(spreads, nil)
	if len(spreads) > 1 {
		s.StdevSpread = stat.StdDev(spreads, nil)
	}
	return s
}

// Histogram draws the distribution of the first player's spreads.
func (s Summary) Histogram(w io.Writer) error {
	if len(s.Spreads) == 0 {
		_, err := io.WriteString(w, "no games\n")
		return err
	}
	return histogram.Fprint(w, histogram.Hist(15, s.Spreads), histogram.Linear(40))
}

// StartCompVComp plays numGames games between the two autoplay players
// named in cfg on the given number of threads, alternating colors every
// game. Turn lines are written to out (which may be nil). It blocks until
// all games are done or ctx is cancelled.
func StartCompVComp(ctx context.Context, cfg *config.Config, numGames, threads int,
	out io.Writer) (Summary, error) {

	p1name := cfg.GetString(config.ConfigAutoplayPlayer1)
	p2name := cfg.GetString(config.ConfigAutoplayPlayer2)
	names := [2]string{p1name, p2name}
	if !running.CompareAndSwap(false, true) {
		return Summary{}, ErrGamesInProgress
	}
	defer running.Store(false)
	// Fail before starting anything if a player name is bad.
	for _, n := range names {
		if _, err := player.NewAIPlayer(n); err != nil {
			return Summary{}, err
		}
	}
	if threads < 1 {
		threads = 1
	}
	log.Debug().Msgf("Starting %v games, %v threads", numGames, threads)

	CVCCounter.Set(0)
	jobs := make(chan int, 100)
	logChan := make(chan string, 100)
	var mu sync.Mutex
	results := make([]GameResult, 0, numGames)

	g, gctx := errgroup.WithContext(ctx)

	for i := 1; i <= threads; i++ {
		g.Go(func() error {
			p1, _ := player.NewAIPlayer(p1name)
			p2, _ := player.NewAIPlayer(p2name)
			var lc chan string
			if out != nil {
				lc = logChan
			}
			r := NewGameRunner(lc, p1, p2)
			IsPlaying.Add(1)
			defer IsPlaying.Add(-1)
			for {
				select {
				case <-gctx.Done():
					return gctx.Err()
				case gameNum, ok := <-jobs:
					if !ok {
						return nil
					}
					res, err := r.PlayFullGame(gctx, gameNum%2 == 0)
					if err != nil {
						return err
					}
					mu.Lock()
					results = append(results, res)
					mu.Unlock()
					CVCCounter.Add(1)
				}
			}
		})
	}

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < numGames; i++ {
			select {
			case jobs <- i:
			case <-gctx.Done():
				log.Info().Msg("Got stop signal, exiting soon...")
				return gctx.Err()
			}
			if (i+1)%1000 == 0 {
				log.Info().Msgf("Queued %v jobs", i+1)
			}
		}
		log.Info().Msg("Finished queueing all jobs.")
		return nil
	})

	writerDone := make(chan error, 1)
	go func() {
		var werr error
		if out != nil {
			_, werr = io.WriteString(out, LogHeader)
		}
		for msg := range logChan {
			if werr == nil && out != nil {
				_, werr = io.WriteString(out, msg)
			}
		}
		writerDone <- werr
	}()

	err := g.Wait()
	close(logChan)
	werr := <-writerDone
	log.Info().Int("games", len(results)).Msg("All games finished.")

	summary := Summarize(names, results)
	if err != nil {
		return summary, err
	}
	return summary, werr
}
