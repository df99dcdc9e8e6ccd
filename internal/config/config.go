package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"brisca-game/internal/bot"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the simulator settings.
type Config struct {
	Rounds     int      // Rounds to play
	Workers    int      // Rounds played concurrently
	Seed       uint64   // 0 picks a random seed
	LogLevel   string   // logrus level name
	Bots       []string // Policy name per seat
	MaxIllegal int      // Consecutive illegal plays before a round is aborted
	Events     bool     // Emit JSON events for single round runs
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Rounds:     1,
		Workers:    4,
		LogLevel:   "info",
		Bots:       []string{"random", "smart", "random", "smart"},
		MaxIllegal: 3,
	}
}

// Load reads an optional .env file from path (empty means ".env") and then
// the BRISCA_* environment variables on top of the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg := Default()
	var err error
	if cfg.Rounds, err = envInt("BRISCA_ROUNDS", cfg.Rounds); err != nil {
		return Config{}, err
	}
	if cfg.Workers, err = envInt("BRISCA_WORKERS", cfg.Workers); err != nil {
		return Config{}, err
	}
	if cfg.MaxIllegal, err = envInt("BRISCA_MAX_ILLEGAL", cfg.MaxIllegal); err != nil {
		return Config{}, err
	}
	if v, ok := os.LookupEnv("BRISCA_SEED"); ok {
		if cfg.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("failed to parse BRISCA_SEED: %w", err)
		}
	}
	if v, ok := os.LookupEnv("BRISCA_EVENTS"); ok {
		if cfg.Events, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("failed to parse BRISCA_EVENTS: %w", err)
		}
	}
	if v, ok := os.LookupEnv("BRISCA_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("BRISCA_BOTS"); ok {
		cfg.Bots = ParseBots(v)
	}
	return cfg, cfg.Validate()
}

func envInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return n, nil
}

// ParseBots splits a comma-separated list of policy names.
func ParseBots(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Validate rejects settings the simulator cannot run with.
func (c Config) Validate() error {
	if c.Rounds <= 0 {
		return fmt.Errorf("rounds must be positive, got %d", c.Rounds)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.MaxIllegal <= 0 {
		return fmt.Errorf("max illegal attempts must be positive, got %d", c.MaxIllegal)
	}
	if len(c.Bots) != 4 {
		return fmt.Errorf("need 4 bots, got %d", len(c.Bots))
	}
	for _, name := range c.Bots {
		if !bot.Known(name) {
			return fmt.Errorf("unknown bot %q (known: %v)", name, bot.Names())
		}
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// Logger builds a logrus logger at the configured level.
func (c Config) Logger() *logrus.Logger {
	logger := logrus.New()
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}
