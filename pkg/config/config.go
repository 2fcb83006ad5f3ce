// Package config loads game settings from the environment and a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"wumpus/pkg/game/locale"
)

// ErrInvalidConfig is returned when a setting is out of range
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the game configuration
type Config struct {
	Renderer  string `validate:"oneof=tui ebiten"`
	Seed      int64
	SaveDir   string `validate:"required"`
	LogLevel  string `validate:"oneof=debug info warn warning error"`
	LogFormat string `validate:"oneof=text json"`
	LogFile   string
	Locale    string `validate:"required"`
	Content   string // Path to a content table; empty uses the embedded one
	Pits      int    `validate:"min=0,max=10"`
	Bats      int    `validate:"min=0,max=10"`
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Renderer:  strings.ToLower(getEnv(EnvRenderer, DefaultRenderer)),
		SaveDir:   getEnv(EnvSaveDir, defaultSaveDir()),
		LogLevel:  strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat: strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogFile:   getEnv(EnvLogFile, DefaultLogFile),
		Content:   getEnv(EnvContent, ""),
		Pits:      getEnvAsInt(EnvPits, DefaultPits),
		Bats:      getEnvAsInt(EnvBats, DefaultBats),
	}

	if lang := getEnv(EnvLocale, ""); lang != "" {
		base, err := locale.Normalize(lang)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvLocale, err)
		}
		cfg.Locale = base
	} else if base, err := locale.Normalize(os.Getenv("LANG")); err == nil {
		cfg.Locale = base
	} else {
		// LANG=C and friends
		cfg.Locale = locale.DefaultLanguage
	}

	seedStr := getEnv(EnvSeed, "")
	if seedStr == "" {
		cfg.Seed = time.Now().UnixNano()
	} else {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvSeed, err)
		}
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field against its constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func defaultSaveDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "wumpus")
	}
	return "."
}
