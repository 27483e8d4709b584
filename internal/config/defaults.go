package config

import "github.com/haskel/headroom/internal/simulation"

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			PIDFile:      "/var/run/headroom.pid",
			MaxBodyBytes: 1 << 20,
			RateLimit: RateLimitConfig{
				Enabled:           false,
				RequestsPerSecond: 100,
				Burst:             200,
			},
		},
		Auth: AuthConfig{
			Enabled:  false,
			User:     "",
			Password: "",
		},
		Simulation: SimulationConfig{
			DefaultTrials: 1000,
			HistogramBins: simulation.DefaultHistogramBins,
			Seed:          0,
		},
		Scenarios: ScenariosConfig{
			DataDir:          "/var/lib/headroom",
			FlushIntervalSec: 600,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
