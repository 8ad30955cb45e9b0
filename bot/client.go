package bot

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/domino14/reversi/cgp"
	"github.com/domino14/reversi/game"
	"github.com/domino14/reversi/move"
)

// Requester is the part of *nats.Conn the client needs.
type Requester interface {
	Request(subj string, data []byte, timeout time.Duration) (*nats.Msg, error)
}

type Client struct {
	nc       Requester
	channel  string
	timeout  time.Duration
	attempts uint
	delay    time.Duration
}

func NewClient(nc Requester, channel string) *Client {
	return &Client{nc: nc, channel: channel, timeout: 10 * time.Second,
		attempts: 3, delay: 100 * time.Millisecond}
}

func MakeRequest(g *game.Game) ([]byte, error) {
	return json.Marshal(Request{Position: cgp.ToCGP(g)})
}

// RequestMove sends a game to the bot and gets a move back.
func (c *Client) RequestMove(g *game.Game) (move.Move, error) {
	data, err := MakeRequest(g)
	if err != nil {
		return move.Move{}, err
	}
	var res *nats.Msg
	err = retry.Do(
		func() error {
			res, err = c.nc.Request(c.channel, data, c.timeout)
			return err
		},
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			log.Err(err).Uint("n", n).Msg("bot-request-failed-try-again")
			return retry.BackOffDelay(n, err, config)
		}),
	)
	if err != nil {
		log.Error().Msgf("%v for request", err)
		return move.Move{}, err
	}
	log.Debug().Msgf("res: %v", string(res.Data))

	resp := Response{}
	if err := json.Unmarshal(res.Data, &resp); err != nil {
		return move.Move{}, err
	}
	if resp.Error != "" {
		return move.Move{}, errors.New("Bot returned: " + resp.Error)
	}
	return move.FromBoardGameCoords(resp.Move)
}
