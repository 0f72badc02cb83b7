// Package config reads bot configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultCipherURL   = "https://hamster-kombat.org/daily-cipher"
	defaultComboURL    = "https://hamster-kombat.org/daily-combo-cards/"
	defaultUsersDBPath = "users.db"
)

// Config holds everything main needs to wire the bot together.
type Config struct {
	BotToken    string
	OwnerID     int64
	UsersDBPath string
	CipherURL   string
	ComboURL    string
	LogLevel    slog.Level
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first if present; real environment variables win.
func Load() (Config, error) {
	// Missing .env is fine, the variables may be set directly.
	_ = godotenv.Load()

	cfg := Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		UsersDBPath: envOr("USERS_DB_PATH", defaultUsersDBPath),
		CipherURL:   envOr("CIPHER_URL", defaultCipherURL),
		ComboURL:    envOr("COMBO_URL", defaultComboURL),
		LogLevel:    slog.LevelInfo,
	}

	if cfg.BotToken == "" {
		return Config{}, fmt.Errorf("BOT_TOKEN is not set")
	}

	rawOwner := os.Getenv("OWNER_ID")
	if rawOwner == "" {
		return Config{}, fmt.Errorf("OWNER_ID is not set")
	}
	ownerID, err := strconv.ParseInt(rawOwner, 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("parsing OWNER_ID: %w", err)
	}
	cfg.OwnerID = ownerID

	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			return Config{}, fmt.Errorf("parsing LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
