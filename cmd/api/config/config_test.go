package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, key := range []string{"BOT_TOKEN", "PORT", "TELEGRAM_API_URL", "TELEGRAM_TIMEOUT", "DEBUG"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	for key, value := range vars {
		t.Setenv(key, value)
	}
}

func TestNewDefaults(t *testing.T) {
	setEnv(t, map[string]string{"BOT_TOKEN": "123:abc"})

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.BotToken)
	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "https://api.telegram.org", cfg.TelegramAPIURL)
	assert.Equal(t, time.Duration(0), cfg.TelegramTimeout)
	assert.False(t, cfg.Debug)
}

func TestNewOverrides(t *testing.T) {
	setEnv(t, map[string]string{
		"BOT_TOKEN":        "123:abc",
		"PORT":             "8080",
		"TELEGRAM_API_URL": "http://localhost:8081",
		"TELEGRAM_TIMEOUT": "5s",
		"DEBUG":            "true",
	})

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:8081", cfg.TelegramAPIURL)
	assert.Equal(t, 5*time.Second, cfg.TelegramTimeout)
	assert.True(t, cfg.Debug)
}

func TestNewMissingToken(t *testing.T) {
	setEnv(t, nil)

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestNewEmptyToken(t *testing.T) {
	setEnv(t, map[string]string{"BOT_TOKEN": ""})

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BotToken is a required field")
}

func TestNewInvalidValues(t *testing.T) {
	setEnv(t, map[string]string{
		"BOT_TOKEN":        "123:abc",
		"PORT":             "http",
		"TELEGRAM_API_URL": "not a url",
	})

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Port must be a valid numeric value")
	assert.Contains(t, err.Error(), "TelegramAPIURL must be a valid URL")
}

func TestNewBadDuration(t *testing.T) {
	setEnv(t, map[string]string{"BOT_TOKEN": "123:abc", "TELEGRAM_TIMEOUT": "soon"})

	_, err := New()
	assert.Error(t, err)
}
