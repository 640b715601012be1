package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
)

// Player types accepted in configuration.
const (
	TypeHuman   = "human"
	TypeRandom  = "random"
	TypeMinimax = "minimax"
)

// Config holds everything the console layer needs to assemble a game.
type Config struct {
	LogLevel  string `yaml:"log-level" env:"SOS_LOG_LEVEL" env-default:"info"`
	BoardSize int    `yaml:"board-size" env:"SOS_BOARD_SIZE" env-default:"4"`
	Seed      uint64 `yaml:"seed" env:"SOS_SEED" env-default:"1"`
	Player1   Player `yaml:"player1"`
	Player2   Player `yaml:"player2"`
}

// Player configures one seat at the board.
type Player struct {
	Type  string `yaml:"type" env-default:"human"`
	Depth int    `yaml:"depth" env-default:"3"` // minimax players only
}

// Load reads the config file at path, falling back to environment variables
// and defaults when the file does not exist.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	err := cleanenv.ReadConfig(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("read env config: %w", err)
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot start from.
func (c *Config) Validate() error {
	if c.BoardSize < 3 {
		return fmt.Errorf("board-size %d: minimum is 3", c.BoardSize)
	}
	for i, p := range []Player{c.Player1, c.Player2} {
		switch p.Type {
		case TypeHuman, TypeRandom:
		case TypeMinimax:
			if p.Depth < 1 {
				return fmt.Errorf("player%d: minimax depth %d: must be positive", i+1, p.Depth)
			}
		default:
			return fmt.Errorf("player%d: unknown type %q", i+1, p.Type)
		}
	}
	return nil
}
