package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// SlamonYAMLConfig represents the complete slamon.yaml file structure
type SlamonYAMLConfig struct {
	System     *SystemConfig     `yaml:"system"`
	Telegram   *TelegramConfig   `yaml:"telegram"`
	Classifier *ClassifierConfig `yaml:"classifier"`
	Workers    *WorkerConfig     `yaml:"workers"`
	Delivery   *DeliveryConfig   `yaml:"delivery"`
	Retention  *RetentionConfig  `yaml:"retention"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load slamon.yaml from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge user values over built-in defaults
//  5. Validate all configuration
//  6. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"listen_addr", cfg.System.ListenAddr,
		"webhook", cfg.Telegram.WebhookBaseURL != "",
		"classifier_model", cfg.Classifier.Model,
		"workers", cfg.Workers.WorkerCount)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	yamlCfg, err := loader.loadSlamonYAML()
	if err != nil {
		return nil, NewLoadError("slamon.yaml", err)
	}

	system := &SystemConfig{
		ListenAddr:      ":8080",
		AdminRateLimit:  30,
		AdminRateWindow: time.Minute,
	}
	if yamlCfg.System != nil {
		if err := mergo.Merge(system, yamlCfg.System, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge system config: %w", err)
		}
	}

	telegram := &TelegramConfig{
		TokenEnv:          "TELEGRAM_BOT_TOKEN",
		MessagesPerSecond: 30,
	}
	if yamlCfg.Telegram != nil {
		if err := mergo.Merge(telegram, yamlCfg.Telegram, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge telegram config: %w", err)
		}
	}

	classifier := &ClassifierConfig{
		BaseURL:             "https://api.openai.com/v1",
		APIKeyEnv:           "OPENAI_API_KEY",
		Model:               "gpt-4o-mini",
		Timeout:             30 * time.Second,
		ConfidenceThreshold: 0.7,
		CacheTTL:            24 * time.Hour,
		BreakerFailures:     5,
		BreakerCooldown:     60 * time.Second,
	}
	if yamlCfg.Classifier != nil {
		if err := mergo.Merge(classifier, yamlCfg.Classifier, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge classifier config: %w", err)
		}
	}

	workers := DefaultWorkerConfig()
	if yamlCfg.Workers != nil {
		if err := mergo.Merge(workers, yamlCfg.Workers, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge workers config: %w", err)
		}
	}

	delivery := &DeliveryConfig{
		MaxAttempts:    5,
		InitialBackoff: 1 * time.Second,
		MaxElapsedTime: 1 * time.Hour,
	}
	if yamlCfg.Delivery != nil {
		if err := mergo.Merge(delivery, yamlCfg.Delivery, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge delivery config: %w", err)
		}
	}

	retention := DefaultRetentionConfig()
	if yamlCfg.Retention != nil {
		if err := mergo.Merge(retention, yamlCfg.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	return &Config{
		configDir:  configDir,
		System:     system,
		Telegram:   telegram,
		Classifier: classifier,
		Workers:    workers,
		Delivery:   delivery,
		Retention:  retention,
	}, nil
}

// validate performs validation on loaded configuration
func validate(cfg *Config) error {
	v := NewValidator(cfg)
	return v.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// Note: ExpandEnv passes through original data on parse/execution
	// errors, letting the YAML parser produce the clearer error message.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadSlamonYAML() (*SlamonYAMLConfig, error) {
	var config SlamonYAMLConfig
	if err := l.loadYAML("slamon.yaml", &config); err != nil {
		return nil, err
	}
	return &config, nil
}
