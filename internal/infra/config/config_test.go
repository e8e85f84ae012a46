package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv pins every variable Load reads so tests never depend on the
// machine's real environment.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PRACTICUM_TOKEN", "practicum-secret")
	t.Setenv("TELEGRAM_TOKEN", "telegram-secret")
	t.Setenv("TELEGRAM_CHAT_ID", "123456789")
	t.Setenv("ENDPOINT", "")
	t.Setenv("POLL_INTERVAL", "")
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ENVIRONMENT", "")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "practicum-secret", cfg.PracticumToken)
	assert.Equal(t, "telegram-secret", cfg.TelegramToken)
	assert.Equal(t, int64(123456789), cfg.TelegramChatID)
	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, 600*time.Second, cfg.PollInterval)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENDPOINT", "https://example.com/api/statuses/")
	t.Setenv("POLL_INTERVAL", "5m")
	t.Setenv("REQUEST_TIMEOUT", "10s")
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("ENVIRONMENT", "Production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/api/statuses/", cfg.Endpoint)
	assert.Equal(t, 5*time.Minute, cfg.PollInterval)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "production", cfg.Environment)
}

func TestLoad_AllMissingCredentialsReportedAtOnce(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PRACTICUM_TOKEN", "")
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "PRACTICUM_TOKEN")
	assert.Contains(t, err.Error(), "TELEGRAM_TOKEN")
	assert.Contains(t, err.Error(), "TELEGRAM_CHAT_ID")
}

func TestLoad_SingleMissingCredentialNamed(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TELEGRAM_TOKEN", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_TOKEN")
	assert.NotContains(t, err.Error(), "PRACTICUM_TOKEN")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "chat id is not a number", key: "TELEGRAM_CHAT_ID", value: "not-a-number"},
		{name: "poll interval is not a duration", key: "POLL_INTERVAL", value: "600"},
		{name: "poll interval below a second", key: "POLL_INTERVAL", value: "100ms"},
		{name: "request timeout is not a duration", key: "REQUEST_TIMEOUT", value: "soon"},
		{name: "endpoint is not a URL", key: "ENDPOINT", value: "not-a-url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_GroupChatIDIsAccepted(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TELEGRAM_CHAT_ID", "-1001234567890")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(-1001234567890), cfg.TelegramChatID)
}
