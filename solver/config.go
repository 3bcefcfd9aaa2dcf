package solver

import "go.uber.org/zap"

// Config bundles every tunable shared by the exact and heuristic entry
// points. Assembled via functional options, following the teacher's
// constructor pattern throughout its own package layer.
type Config struct {
	CrownBudget int
	Workers     int
	Logger      *zap.Logger
}

// Option configures a Config.
type Option func(*Config)

// WithCrownBudget overrides the CROWN rule's candidate-count ceiling
// (see reduction.Config.CrownBudget and the Open Question it resolves).
func WithCrownBudget(n int) Option {
	return func(c *Config) { c.CrownBudget = n }
}

// WithLogger supplies a structured logger; nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithWorkerCount caps the parallel driver's worker pool. Zero or
// negative (the default) means min(SCC count, runtime.GOMAXPROCS(0)).
func WithWorkerCount(n int) Option {
	return func(c *Config) { c.Workers = n }
}

// DefaultConfig mirrors reduction.DefaultConfig's CROWN budget and an
// unbounded (auto-sized) worker pool.
func DefaultConfig() Config {
	return Config{CrownBudget: 2000, Logger: zap.NewNop()}
}

func newConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
