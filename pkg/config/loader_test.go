package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "slamon.yaml"), []byte(content), 0o644))
}

func TestInitialize_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	dir := t.TempDir()
	writeConfigFile(t, dir, "{}\n")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.System.ListenAddr)
	assert.Equal(t, "TELEGRAM_BOT_TOKEN", cfg.Telegram.TokenEnv)
	assert.Equal(t, 30, cfg.Telegram.MessagesPerSecond)
	assert.Equal(t, "gpt-4o-mini", cfg.Classifier.Model)
	assert.InDelta(t, 0.7, cfg.Classifier.ConfidenceThreshold, 0.001)
	assert.Equal(t, 24*time.Hour, cfg.Classifier.CacheTTL)
	assert.Equal(t, 5, cfg.Workers.WorkerCount)
	assert.Equal(t, 1*time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, 5, cfg.Delivery.MaxAttempts)
	assert.Equal(t, 180, cfg.Retention.RequestRetentionDays)
}

func TestInitialize_UserOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	dir := t.TempDir()
	writeConfigFile(t, dir, `
system:
  listen_addr: ":9090"
telegram:
  messages_per_second: 10
classifier:
  model: gpt-4o
  confidence_threshold: 0.85
workers:
  worker_count: 2
  poll_interval: 250ms
retention:
  request_retention_days: 30
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.System.ListenAddr)
	assert.Equal(t, 10, cfg.Telegram.MessagesPerSecond)
	assert.Equal(t, "gpt-4o", cfg.Classifier.Model)
	assert.InDelta(t, 0.85, cfg.Classifier.ConfidenceThreshold, 0.001)
	assert.Equal(t, 2, cfg.Workers.WorkerCount)
	assert.Equal(t, 250*time.Millisecond, cfg.Workers.PollInterval)
	assert.Equal(t, 30, cfg.Retention.RequestRetentionDays)
	// Unset values keep defaults.
	assert.Equal(t, 5, cfg.Workers.MaxAttempts)
	assert.Equal(t, 90, cfg.Retention.MessageRetentionDays)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("SLAMON_LISTEN", ":7070")

	dir := t.TempDir()
	writeConfigFile(t, dir, `
system:
  listen_addr: "{{.SLAMON_LISTEN}}"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.System.ListenAddr)
}

func TestInitialize_MissingFile(t *testing.T) {
	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitialize_MissingBotToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")

	dir := t.TempDir()
	writeConfigFile(t, dir, "{}\n")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "telegram", verr.Section)
}

func TestInitialize_InvalidThreshold(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	dir := t.TempDir()
	writeConfigFile(t, dir, `
classifier:
  confidence_threshold: 1.5
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}
