package config

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application. Everything here is startup-time
// configuration; runtime-tunable SLA parameters live in the
// global_settings table and are managed by the settings service.
type Config struct {
	configDir string

	System     *SystemConfig
	Telegram   *TelegramConfig
	Classifier *ClassifierConfig
	Workers    *WorkerConfig
	Delivery   *DeliveryConfig
	Retention  *RetentionConfig
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}
