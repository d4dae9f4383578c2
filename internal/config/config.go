package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"dominoes/internal/domain"
)

// MaxSupportedPip bounds the rules file; double-twelve is the largest common set.
const MaxSupportedPip = 12

// ErrInvalidConfig is returned when a loaded config fails validation.
var ErrInvalidConfig = errors.New("invalid game config")

// GameConfig is the optional rules file for a game session.
type GameConfig struct {
	Rules   RulesConfig `mapstructure:"rules"`
	Players []string    `mapstructure:"players"`
}

type RulesConfig struct {
	MaxPip   int `mapstructure:"max_pip"`
	HandSize int `mapstructure:"hand_size"`
}

// Load reads the game config at path. An empty path yields the defaults. The
// format follows the file extension (yaml, json, toml...).
func Load(path string) (*GameConfig, error) {
	v := viper.New()
	v.SetDefault("rules.max_pip", domain.DefaultMaxPip)
	v.SetDefault("rules.hand_size", domain.DefaultHandSize)
	v.SetDefault("players", []string{})

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read game config: %w", err)
		}
	}

	var cfg GameConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the rules are playable by two players.
func (c *GameConfig) Validate() error {
	r := c.Rules
	if r.MaxPip < 0 || r.MaxPip > MaxSupportedPip {
		return fmt.Errorf("%w: max_pip %d not in [0,%d]", ErrInvalidConfig, r.MaxPip, MaxSupportedPip)
	}
	if r.HandSize < 1 {
		return fmt.Errorf("%w: hand_size %d", ErrInvalidConfig, r.HandSize)
	}
	if len(c.Players) > domain.PlayerCount {
		return fmt.Errorf("%w: %d player names for %d seats", ErrInvalidConfig, len(c.Players), domain.PlayerCount)
	}
	return nil
}

// DomainRules converts the file rules into engine rules.
func (c *GameConfig) DomainRules() domain.Rules {
	return domain.Rules{MaxPip: c.Rules.MaxPip, HandSize: c.Rules.HandSize}
}

// PlayerName returns the configured name for seat, or "".
func (c *GameConfig) PlayerName(seat int) string {
	if seat < 0 || seat >= len(c.Players) {
		return ""
	}
	return c.Players[seat]
}
