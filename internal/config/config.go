// Package config reads process settings from the environment, after loading
// any .env files that are present.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the settings shared by the server, the bot and the terminal scorer
type Config struct {
	// HTTP
	HTTPAddr     string `env:"OHHELL_HTTP_ADDR" envDefault:":8888"`
	SecureCookie bool   `env:"OHHELL_SECURE_COOKIE"`

	// Redis
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// NATS is optional; events are dropped when no URL is set
	NATSURL           string `env:"NATS_URL"`
	NATSSubjectPrefix string `env:"OHHELL_NATS_SUBJECT_PREFIX" envDefault:"ohhell.games"`

	// Discord
	DiscordToken  string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	// Scoring
	HistoryLimit  int `env:"OHHELL_HISTORY_LIMIT" envDefault:"100"`
	ExactBidBonus int `env:"OHHELL_EXACT_BID_BONUS" envDefault:"5"`
}

// Load reads the given .env files, skipping any that do not exist, then parses
// the environment. Variables already set in the environment win over the files.
// With no files, ".env" in the working directory is tried.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values the environment parser cannot
func (c *Config) Validate() error {
	if c.RedisAddr == "" {
		return errors.New("REDIS_ADDR cannot be empty")
	}
	if c.RedisDB < 0 {
		return fmt.Errorf("REDIS_DB cannot be negative, got %d", c.RedisDB)
	}
	if c.HistoryLimit < 1 {
		return fmt.Errorf("OHHELL_HISTORY_LIMIT must be positive, got %d", c.HistoryLimit)
	}
	if c.ExactBidBonus < 0 {
		return fmt.Errorf("OHHELL_EXACT_BID_BONUS cannot be negative, got %d", c.ExactBidBonus)
	}
	return nil
}
