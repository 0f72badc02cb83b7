package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("OWNER_ID", "777")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("USERS_DB_PATH", "")
	t.Setenv("CIPHER_URL", "")
	t.Setenv("COMBO_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "123:abc", cfg.BotToken)
	assert.Equal(t, int64(777), cfg.OwnerID)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, defaultUsersDBPath, cfg.UsersDBPath)
	assert.Equal(t, defaultCipherURL, cfg.CipherURL)
	assert.Equal(t, defaultComboURL, cfg.ComboURL)
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("OWNER_ID", "777")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadBadOwnerID(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("OWNER_ID", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}
