package config

import "time"

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Auth       AuthConfig       `yaml:"auth"`
	Simulation SimulationConfig `yaml:"simulation"`
	Scenarios  ScenariosConfig  `yaml:"scenarios"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ServerConfig struct {
	Host         string          `yaml:"host"`
	Port         int             `yaml:"port"`
	PIDFile      string          `yaml:"pid_file"`
	MaxBodyBytes int64           `yaml:"max_body_bytes"`
	RateLimit    RateLimitConfig `yaml:"rate_limit"`
}

type RateLimitConfig struct {
	Enabled           bool    `yaml:"enabled"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

type AuthConfig struct {
	Enabled  bool   `yaml:"enabled"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// SimulationConfig holds engine defaults applied when a request leaves
// them unset.
type SimulationConfig struct {
	// DefaultTrials is used when a request does not specify a trial count.
	DefaultTrials int `yaml:"default_trials"`

	// HistogramBins is the number of bins for the duration histogram.
	HistogramBins int `yaml:"histogram_bins"`

	// Seed fixes the random source when non-zero. Zero means a
	// time-based seed.
	Seed int64 `yaml:"seed"`
}

type ScenariosConfig struct {
	DataDir          string `yaml:"data_dir"`
	FlushIntervalSec int    `yaml:"flush_interval_sec"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) FlushInterval() time.Duration {
	return time.Duration(c.Scenarios.FlushIntervalSec) * time.Second
}
