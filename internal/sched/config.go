package sched

import (
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors config.yml and tunes slice sizing. Both values are in
// simulated time units.
type Config struct {
	TargetLatency  int64 `yaml:"target_latency"`  // window within which every runnable task should run once
	MinGranularity int64 `yaml:"min_granularity"` // floor for a single slice, keeps slices from degenerating
}

// DefaultConfig returns the tuning used when no file or flags override it.
func DefaultConfig() Config {
	return Config{
		TargetLatency:  20,
		MinGranularity: 1,
	}
}

// Load reads YAML and overrides defaults; empty or missing path = defaults only.
func Load(path string) Config {
	cfg := DefaultConfig()

	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	return cfg.sanitized()
}

// sanitized clamps nonpositive values back to their defaults so a partial
// or zeroed config still schedules sensibly.
func (c Config) sanitized() Config {
	def := DefaultConfig()
	if c.TargetLatency <= 0 {
		c.TargetLatency = def.TargetLatency
	}
	if c.MinGranularity <= 0 {
		c.MinGranularity = def.MinGranularity
	}
	return c
}
