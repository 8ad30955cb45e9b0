package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/reversi/automatic"
	"github.com/domino14/reversi/config"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	outPath := cfg.GetString(config.ConfigAutoplayOutput)
	f, err := os.Create(outPath)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create output file")
	}
	defer f.Close()

	summary, err := automatic.StartCompVComp(ctx, &cfg,
		cfg.GetInt(config.ConfigAutoplayGames), cfg.GetInt(config.ConfigAutoplayThreads), f)
	fmt.Print(summary)
	summary.Histogram(os.Stdout)
	if err != nil {
		log.Error().Err(err).Msg("autoplay-error")
		return
	}
	log.Info().Str("file", outPath).Msg("wrote turn log")
}
