package config

import "time"

// WorkerConfig contains timer worker pool configuration.
// These values control how due timer jobs are polled, claimed, and run.
type WorkerConfig struct {
	// WorkerCount is the number of worker goroutines per job group per
	// replica/pod. Each worker independently polls and claims due jobs.
	WorkerCount int `yaml:"worker_count"`

	// PollInterval is the base interval for checking due jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// JobTimeout is the maximum time a single job handler may run.
	JobTimeout time.Duration `yaml:"job_timeout"`

	// GracefulShutdownTimeout is the max time to wait for in-flight jobs
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// StaleClaimInterval is how often to scan for jobs stuck in running.
	StaleClaimInterval time.Duration `yaml:"stale_claim_interval"`

	// StaleClaimThreshold is how long a job may hold a claim before it is
	// considered abandoned and released back to scheduled.
	StaleClaimThreshold time.Duration `yaml:"stale_claim_threshold"`

	// MaxAttempts before a job is parked as failed.
	MaxAttempts int `yaml:"max_attempts"`
}

// DefaultWorkerConfig returns the built-in worker defaults.
func DefaultWorkerConfig() *WorkerConfig {
	return &WorkerConfig{
		WorkerCount:             5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		JobTimeout:              2 * time.Minute,
		GracefulShutdownTimeout: 2 * time.Minute,
		StaleClaimInterval:      5 * time.Minute,
		StaleClaimThreshold:     5 * time.Minute,
		MaxAttempts:             5,
	}
}
