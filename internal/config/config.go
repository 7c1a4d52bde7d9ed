// Package config reads the calculator's settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultAddr is where `calc serve` listens unless CALC_ADDR says otherwise.
const DefaultAddr = "127.0.0.1:8080"

// ErrNoAPIURL is returned when a remote operation is attempted without
// CALC_API_URL being set.
var ErrNoAPIURL = errors.New("CALC_API_URL is not set")

// Config holds every environment setting.
type Config struct {
	Addr     string
	APIURL   string
	APIKey   string
	Mouse    bool
	LogFile  string
	LogLevel slog.Level
}

// Load reads .env from the working directory when present, then the
// environment. Variables already set in the environment win over .env.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Addr:    getenv("CALC_ADDR"),
		APIURL:  getenv("CALC_API_URL"),
		APIKey:  getenv("CALC_API_KEY"),
		Mouse:   true,
		LogFile: getenv("CALC_LOG_FILE"),
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}

	switch v := strings.ToLower(getenv("CALC_MOUSE")); v {
	case "", "on", "true", "1":
	case "off", "false", "0":
		cfg.Mouse = false
	default:
		return Config{}, fmt.Errorf("CALC_MOUSE: expected on or off, got %q", v)
	}

	if v := getenv("CALC_LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("CALC_LOG_LEVEL: %w", err)
		}
	}

	return cfg, nil
}

// RequireAPIURL returns ErrNoAPIURL when no remote server is configured.
func (c Config) RequireAPIURL() error {
	if c.APIURL == "" {
		return ErrNoAPIURL
	}
	return nil
}
