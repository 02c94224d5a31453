package config

import (
	"fmt"
	"os"
)

// Validator checks a loaded Config for internal consistency.
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator for the given config.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll runs every validation and returns the first failure.
func (v *Validator) ValidateAll() error {
	if err := v.validateSystem(); err != nil {
		return err
	}
	if err := v.validateTelegram(); err != nil {
		return err
	}
	if err := v.validateClassifier(); err != nil {
		return err
	}
	if err := v.validateWorkers(); err != nil {
		return err
	}
	if err := v.validateDelivery(); err != nil {
		return err
	}
	return nil
}

func (v *Validator) validateSystem() error {
	s := v.cfg.System
	if s.ListenAddr == "" {
		return NewValidationError("system", "listen_addr", ErrMissingRequiredField)
	}
	if s.AdminRateLimit <= 0 {
		return NewValidationError("system", "admin_rate_limit", ErrInvalidValue)
	}
	return nil
}

func (v *Validator) validateTelegram() error {
	t := v.cfg.Telegram
	if t.TokenEnv == "" {
		return NewValidationError("telegram", "token_env", ErrMissingRequiredField)
	}
	if os.Getenv(t.TokenEnv) == "" {
		return NewValidationError("telegram", "token_env",
			fmt.Errorf("%w: environment variable %s is empty", ErrMissingRequiredField, t.TokenEnv))
	}
	if t.MessagesPerSecond <= 0 {
		return NewValidationError("telegram", "messages_per_second", ErrInvalidValue)
	}
	return nil
}

func (v *Validator) validateClassifier() error {
	c := v.cfg.Classifier
	if c.Model == "" {
		return NewValidationError("classifier", "model", ErrMissingRequiredField)
	}
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return NewValidationError("classifier", "confidence_threshold", ErrInvalidValue)
	}
	if c.Timeout <= 0 {
		return NewValidationError("classifier", "timeout", ErrInvalidValue)
	}
	return nil
}

func (v *Validator) validateWorkers() error {
	w := v.cfg.Workers
	if w.WorkerCount <= 0 {
		return NewValidationError("workers", "worker_count", ErrInvalidValue)
	}
	if w.PollInterval <= 0 {
		return NewValidationError("workers", "poll_interval", ErrInvalidValue)
	}
	if w.MaxAttempts <= 0 {
		return NewValidationError("workers", "max_attempts", ErrInvalidValue)
	}
	return nil
}

func (v *Validator) validateDelivery() error {
	d := v.cfg.Delivery
	if d.MaxAttempts <= 0 {
		return NewValidationError("delivery", "max_attempts", ErrInvalidValue)
	}
	if d.InitialBackoff <= 0 {
		return NewValidationError("delivery", "initial_backoff", ErrInvalidValue)
	}
	return nil
}
