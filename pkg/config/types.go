package config

import "time"

// SystemConfig groups system-wide infrastructure settings.
type SystemConfig struct {
	// ListenAddr is the HTTP API bind address.
	ListenAddr string `yaml:"listen_addr"`

	// AdminIDs are Telegram user ids allowed to use admin commands and
	// the admin HTTP endpoints.
	AdminIDs []string `yaml:"admin_ids"`

	// AdminRateLimit caps admin API requests per client per window.
	AdminRateLimit int `yaml:"admin_rate_limit"`

	// AdminRateWindow is the sliding window for AdminRateLimit.
	AdminRateWindow time.Duration `yaml:"admin_rate_window"`
}

// TelegramConfig holds bot transport settings.
type TelegramConfig struct {
	// TokenEnv names the environment variable holding the bot token.
	TokenEnv string `yaml:"token_env"`

	// WebhookBaseURL, when set, switches the bot from long polling to
	// webhook mode. The webhook path includes the token for verification.
	WebhookBaseURL string `yaml:"webhook_base_url"`

	// MessagesPerSecond is the global outbound send budget shared by all
	// delivery workers.
	MessagesPerSecond int `yaml:"messages_per_second"`
}

// ClassifierConfig holds AI classification settings.
type ClassifierConfig struct {
	// BaseURL of the OpenAI-compatible chat completion endpoint.
	BaseURL string `yaml:"base_url"`

	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `yaml:"api_key_env"`

	// Model is the chat model used for classification.
	Model string `yaml:"model"`

	// Timeout bounds a single classification call.
	Timeout time.Duration `yaml:"timeout"`

	// ConfidenceThreshold below which the AI verdict is discarded and the
	// keyword fallback used instead.
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`

	// CacheTTL is how long a classification result is reused for
	// identical normalized text.
	CacheTTL time.Duration `yaml:"cache_ttl"`

	// BreakerFailures is the consecutive-failure count that opens the
	// circuit breaker.
	BreakerFailures int `yaml:"breaker_failures"`

	// BreakerCooldown is how long the breaker stays open before probing.
	BreakerCooldown time.Duration `yaml:"breaker_cooldown"`
}

// DeliveryConfig controls alert delivery retries.
type DeliveryConfig struct {
	// MaxAttempts per recipient before the recipient is counted failed.
	MaxAttempts int `yaml:"max_attempts"`

	// InitialBackoff is the first retry delay; subsequent delays grow
	// exponentially.
	InitialBackoff time.Duration `yaml:"initial_backoff"`

	// MaxElapsedTime bounds the total retry window per recipient.
	MaxElapsedTime time.Duration `yaml:"max_elapsed_time"`
}
