package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// RequestRetentionDays is how many days to keep answered/closed
	// requests before soft-deleting them (setting deleted_at).
	RequestRetentionDays int `yaml:"request_retention_days"`

	// MessageRetentionDays is how many days raw chat messages are kept.
	MessageRetentionDays int `yaml:"message_retention_days"`

	// CleanupInterval is how often the cleanup loop runs. The loop also
	// purges expired classification cache rows and invitations.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		RequestRetentionDays: 180,
		MessageRetentionDays: 90,
		CleanupInterval:      12 * time.Hour,
	}
}
