package grid

import (
	"math/rand"
	"time"
)

// Option customizes New by mutating a gridConfig before obstacles are placed.
type Option func(*gridConfig)

// gridConfig holds construction parameters shared by all options.
type gridConfig struct {
	// rng drives obstacle placement; never shared across goroutines.
	rng *rand.Rand
}

// newConfig applies opts over the defaults. Without WithSeed or WithRand the
// source is seeded from the wall clock.
func newConfig(opts ...Option) gridConfig {
	var cfg gridConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return cfg
}

// WithRand provides an explicit random source for obstacle placement.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("grid: WithRand(nil)")
	}
	return func(c *gridConfig) {
		c.rng = r
	}
}

// WithSeed creates a deterministic source so the same seed always yields
// the same obstacle layout.
func WithSeed(seed int64) Option {
	return func(c *gridConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
