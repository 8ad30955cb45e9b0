package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.Equal(cfg.GetBool(ConfigDebug), false)
	is.Equal(cfg.GetInt(ConfigAutoplayThreads), 4)
	is.Equal(cfg.GetString(ConfigAutoplayPlayer1), "alphabeta")
	is.Equal(cfg.GetString(ConfigBotChannel), "reversi.bot")
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	err := cfg.Load([]string{"--debug", "--autoplay-games", "12", "--autoplay-player2=random"})
	is.NoErr(err)
	is.True(cfg.GetBool(ConfigDebug))
	is.Equal(cfg.GetInt(ConfigAutoplayGames), 12)
	is.Equal(cfg.GetString(ConfigAutoplayPlayer2), "random")
	// untouched flags keep their defaults
	is.Equal(cfg.GetInt(ConfigAutoplayThreads), 4)
}

func TestLoadEnv(t *testing.T) {
	is := is.New(t)
	t.Setenv("REVERSI_NATS_URL", "nats://example:4222")
	cfg := DefaultConfig()
	is.NoErr(cfg.Load(nil))
	is.Equal(cfg.GetString(ConfigNatsURL), "nats://example:4222")
}

func TestLoadConfigFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "reversi.yaml")
	is.NoErr(os.WriteFile(path, []byte("autoplay-threads: 9\nbot-channel: othello.moves\n"), 0644))
	cfg := DefaultConfig()
	is.NoErr(cfg.Load([]string{"--config-file", path}))
	is.Equal(cfg.GetInt(ConfigAutoplayThreads), 9)
	is.Equal(cfg.GetString(ConfigBotChannel), "othello.moves")
}

func TestLoadBadFlag(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.True(cfg.Load([]string{"--no-such-flag"}) != nil)
}
