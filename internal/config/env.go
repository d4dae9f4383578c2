package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable the command reads.
const EnvPrefix = "DOMINOES_"

// Runtime holds per-process settings: where the rules live, how to seed, who
// plays, and where logs go.
type Runtime struct {
	ConfigPath string `env:"CONFIG"`
	Seed       int64  `env:"SEED"` // 0 draws a fresh seed
	Player1    string `env:"PLAYER1"`
	Player2    string `env:"PLAYER2"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogDir     string `env:"LOG_DIR"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseRuntime loads defaults from env and then parses flags on top.
func ParseRuntime(fs *flag.FlagSet, args []string) (Runtime, error) {
	if fs == nil {
		return Runtime{}, errors.New("flag parser is required")
	}
	var rt Runtime
	if err := ParseEnv(&rt); err != nil {
		return Runtime{}, err
	}

	fs.StringVar(&rt.ConfigPath, "config", rt.ConfigPath, "path to a rules file (yaml or json)")
	fs.Int64Var(&rt.Seed, "seed", rt.Seed, "shuffle seed, 0 for random")
	fs.StringVar(&rt.Player1, "p1", rt.Player1, "name of player 1")
	fs.StringVar(&rt.Player2, "p2", rt.Player2, "name of player 2")
	fs.StringVar(&rt.LogLevel, "log-level", rt.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&rt.LogDir, "log-dir", rt.LogDir, "directory for rotating log files")

	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Runtime{}, err
	}
	return rt, nil
}
