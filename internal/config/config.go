// Package config is the ambient configuration stack (SPEC_FULL.md §10):
// a small YAML-loadable struct carrying the few process-wide knobs the
// executor and subscription driver need, with documented defaults.
package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds process-wide engine settings.
type Config struct {
	// ExecutorConcurrency bounds how many sibling fields/list elements the
	// executor resolves concurrently within one zip-parallel group (spec.md
	// §5 "Siblings under a query root execute concurrently"). Zero means
	// unbounded (bounded only by errgroup.Group's own goroutine-per-task
	// behavior).
	ExecutorConcurrency int `yaml:"executorConcurrency"`

	// SubscriptionBufferSize sets the buffer depth of the channel the
	// subscription driver uses to forward mapped execution results to the
	// consumer (spec.md §4.8).
	SubscriptionBufferSize int `yaml:"subscriptionBufferSize"`

	// DefaultFieldResolverStrict, when true, makes the default resolver
	// (spec.md §4.7 "fetch attribute/mapping key equal to the field name")
	// return an error for a source that has no such key/attribute instead
	// of silently resolving to nil.
	DefaultFieldResolverStrict bool `yaml:"defaultFieldResolverStrict"`
}

// Default returns the engine's documented default configuration.
func Default() *Config {
	return &Config{
		ExecutorConcurrency:        0,
		SubscriptionBufferSize:     8,
		DefaultFieldResolverStrict: false,
	}
}

// Load reads and parses a YAML config file at path, starting from Default()
// so a file that only overrides one field leaves the others at their
// documented defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
