// internal/config/config.go
//
// Process configuration. Values come from the environment, optionally
// seeded from a .env file in the working directory (development).
//
// Environment variables:
//   PORT           HTTP listen port (default 5175)
//   LOG_LEVEL      zerolog level name (default info)
//   LOG_FORMAT     json | pretty (default json)
//   LOG_FILE       write logs to this file instead of stderr
//   WORDS_FILE     newline-separated word list; embedded list when unset
//   DAILY_SALT     salt for daily puzzle selection
//   TOKEN_SECRET   HMAC key for game session tokens
//   TOKEN_TTL      lifetime of a session token (default 24h)
//   CLIENT_ORIGIN  allowed CORS origin for the browser client
//   SESSION_IDLE   drop server-side games untouched for this long (default 2h)
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the binaries read at startup.
type Config struct {
	Port         string        `env:"PORT" envDefault:"5175"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string        `env:"LOG_FORMAT" envDefault:"json"`
	LogFile      string        `env:"LOG_FILE"`
	WordsFile    string        `env:"WORDS_FILE"`
	DailySalt    string        `env:"DAILY_SALT" envDefault:"local_dev_salt"`
	TokenSecret  string        `env:"TOKEN_SECRET" envDefault:"dev_secret_change_me"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	ClientOrigin string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	SessionIdle  time.Duration `env:"SESSION_IDLE" envDefault:"2h"`
}

// Load reads .env (if present) and parses the environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse parses the current environment without touching .env files.
func Parse() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the binaries cannot run with.
func (c Config) Validate() error {
	switch c.LogFormat {
	case "json", "pretty":
	default:
		return fmt.Errorf("config: LOG_FORMAT must be json or pretty, got %q", c.LogFormat)
	}
	if c.TokenTTL <= 0 {
		return errors.New("config: TOKEN_TTL must be positive")
	}
	if c.SessionIdle <= 0 {
		return errors.New("config: SESSION_IDLE must be positive")
	}
	if c.TokenSecret == "" {
		return errors.New("config: TOKEN_SECRET must not be empty")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string { return ":" + c.Port }
