// Package config loads server settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything main needs to wire the server.
type Config struct {
	Addr           string        `env:"MEMORY_ADDR" envDefault:":8080"`
	Debug          bool          `env:"MEMORY_DEBUG"`
	ResolveDelay   time.Duration `env:"MEMORY_RESOLVE_DELAY" envDefault:"1s"`
	TickInterval   time.Duration `env:"MEMORY_TICK_INTERVAL" envDefault:"1s"`
	RoomIdleTTL    time.Duration `env:"MEMORY_ROOM_IDLE_TTL" envDefault:"30m"`
	ReapInterval   time.Duration `env:"MEMORY_REAP_INTERVAL" envDefault:"1m"`
	SSEBufferSize  int           `env:"MEMORY_SSE_BUFFER" envDefault:"16"`
	SSESendTimeout time.Duration `env:"MEMORY_SSE_SEND_TIMEOUT" envDefault:"1s"`
	PublicURL      string        `env:"MEMORY_PUBLIC_URL"`
}

// Load reads .env from the working directory if present, then parses the
// environment.
func Load() (Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit dotenv paths. Missing files are skipped;
// variables already set in the environment win.
func LoadFiles(files ...string) (Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Addr == "":
		return errors.New("MEMORY_ADDR must not be empty")
	case c.ResolveDelay <= 0:
		return fmt.Errorf("MEMORY_RESOLVE_DELAY must be positive, got %s", c.ResolveDelay)
	case c.TickInterval <= 0:
		return fmt.Errorf("MEMORY_TICK_INTERVAL must be positive, got %s", c.TickInterval)
	case c.RoomIdleTTL <= 0:
		return fmt.Errorf("MEMORY_ROOM_IDLE_TTL must be positive, got %s", c.RoomIdleTTL)
	case c.ReapInterval <= 0:
		return fmt.Errorf("MEMORY_REAP_INTERVAL must be positive, got %s", c.ReapInterval)
	case c.SSEBufferSize <= 0:
		return fmt.Errorf("MEMORY_SSE_BUFFER must be positive, got %d", c.SSEBufferSize)
	case c.SSESendTimeout <= 0:
		return fmt.Errorf("MEMORY_SSE_SEND_TIMEOUT must be positive, got %s", c.SSESendTimeout)
	}
	return nil
}
