// Package bot serves moves over NATS. A request carries a position in CGP
// form and the reply carries the move the AI player picks for the side on
// turn.
package bot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/domino14/reversi/ai/player"
	"github.com/domino14/reversi/cgp"
	"github.com/domino14/reversi/config"
)

var ErrGameOver = errors.New("no moves: the game is over")

// Request is the JSON payload the bot accepts.
type Request struct {
	Position string `json:"position"`
}

// Response is the JSON payload the bot replies with. Exactly one of Move
// and Error is set.
type Response struct {
	Move      string `json:"move,omitempty"`
	ElapsedMs int64  `json:"elapsed_ms,omitempty"`
	Error     string `json:"error,omitempty"`
}

type Bot struct {
	config *config.Config
	player player.AIPlayer
}

func NewBot(config *config.Config, p player.AIPlayer) *Bot {
	return &Bot{config: config, player: p}
}

func errorResponse(message string, err error) *Response {
	msg := message
	if err != nil {
		msg = fmt.Sprintf("%s: %s", msg, err.Error())
	}
	return &Response{Error: msg}
}

func (bot *Bot) handle(data []byte) *Response {
	req := Request{}
	if err := json.Unmarshal(data, &req); err != nil {
		return errorResponse("Could not parse request", err)
	}
	g, err := cgp.ParseCGP(req.Position)
	if err != nil {
		return errorResponse("Could not parse position", err)
	}
	if !g.Playing() {
		return errorResponse("Could not generate move", ErrGameOver)
	}
	tstart := time.Now()
	m := bot.player.ChooseMove(g)
	elapsed := time.Since(tstart)
	log.Info().Str("position", req.Position).Str("move", m.String()).
		Dur("elapsed", elapsed).Msg("generated-move")
	return &Response{Move: m.String(), ElapsedMs: elapsed.Milliseconds()}
}

// Handle answers one serialized request. It never fails; problems are
// reported in the Error field of the reply.
func (bot *Bot) Handle(data []byte) []byte {
	resp := bot.handle(data)
	out, err := json.Marshal(resp)
	if err != nil {
		// Should never happen, ideally, but we need to do something sensible here.
		return []byte(`{"error":"could not marshal response"}`)
	}
	return out
}

// Main subscribes the bot to channel on the configured NATS server and
// serves requests until ctx is done.
func Main(ctx context.Context, channel string, bot *Bot) error {
	nc, err := nats.Connect(bot.config.GetString(config.ConfigNatsURL))
	if err != nil {
		return err
	}
	defer nc.Close()

	// Simple Async Subscriber
	_, err = nc.Subscribe(channel, func(m *nats.Msg) {
		log.Info().Msgf("RECV: %d bytes", len(m.Data))
		if err := m.Respond(bot.Handle(m.Data)); err != nil {
			log.Err(err).Msg("respond-error")
		}
	})
	if err != nil {
		return err
	}
	if err := nc.Flush(); err != nil {
		return err
	}
	if err := nc.LastError(); err != nil {
		return err
	}

	log.Info().Msgf("Listening on [%s]", channel)
	<-ctx.Done()
	log.Info().Msg("draining connection")
	return nc.Drain()
}
