package config

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug            = "debug"
	ConfigConfigFile       = "config-file"
	ConfigNatsURL          = "nats-url"
	ConfigBotChannel       = "bot-channel"
	ConfigAutoplayGames    = "autoplay-games"
	ConfigAutoplayThreads  = "autoplay-threads"
	ConfigAutoplayOutput   = "autoplay-output"
	ConfigAutoplayPlayer1  = "autoplay-player1"
	ConfigAutoplayPlayer2  = "autoplay-player2"
	ConfigPuzzleFile       = "puzzle-file"
	ConfigShellHistoryFile = "shell-history-file"
)

// Config wraps a viper instance. Settings come, in increasing order of
// precedence, from defaults, an optional config file, REVERSI_-prefixed
// environment variables and command-line flags.
type Config struct {
	viper.Viper
}

func DefaultConfig() Config {
	c := Config{Viper: *viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigNatsURL, "nats://localhost:4222")
	c.SetDefault(ConfigBotChannel, "reversi.bot")
	c.SetDefault(ConfigAutoplayGames, 100)
	c.SetDefault(ConfigAutoplayThreads, 4)
	c.SetDefault(ConfigAutoplayOutput, "/tmp/autoplay.txt")
	c.SetDefault(ConfigAutoplayPlayer1, "alphabeta")
	c.SetDefault(ConfigAutoplayPlayer2, "greedy")
	c.SetDefault(ConfigPuzzleFile, "")
	c.SetDefault(ConfigShellHistoryFile, "/tmp/reversi_readline.tmp")
}

// Load parses args (typically os.Args[1:]) and the environment into c.
func (c *Config) Load(args []string) error {
	c.setDefaults()
	fs := pflag.NewFlagSet("reversi", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigConfigFile, "", "optional yaml/json/toml config file")
	fs.String(ConfigNatsURL, "nats://localhost:4222", "the NATS server URL")
	fs.String(ConfigBotChannel, "reversi.bot", "the NATS subject the bot listens on")
	fs.Int(ConfigAutoplayGames, 100, "number of games to play in autoplay")
	fs.Int(ConfigAutoplayThreads, 4, "number of concurrent autoplay games")
	fs.String(ConfigAutoplayOutput, "/tmp/autoplay.txt", "autoplay turn log file")
	fs.String(ConfigAutoplayPlayer1, "alphabeta", "first autoplay player (alphabeta, greedy, random)")
	fs.String(ConfigAutoplayPlayer2, "greedy", "second autoplay player (alphabeta, greedy, random)")
	fs.String(ConfigPuzzleFile, "", "puzzle suite to run; empty for the built-in suite")
	fs.String(ConfigShellHistoryFile, "/tmp/reversi_readline.tmp", "readline history file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix("reversi")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if cfgFile := c.GetString(ConfigConfigFile); cfgFile != "" {
		c.SetConfigFile(cfgFile)
		if err := c.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return err
			}
		}
	}
	return nil
}
