package huffman

import (
	"runtime"

	"github.com/egonelbre/exp-huffman-compression/internal/logger"
)

// Config holds configuration for an encode or decode run.
type Config struct {
	Workers int           // Goroutines used for frequency counting (default runtime.NumCPU())
	Logger  logger.Logger // Receives per-phase diagnostics (default discards)
}

// Option is a functional option for configuring a run.
type Option func(*Config)

// WithWorkers sets the number of goroutines used to count symbol frequencies.
// The result does not depend on this value.
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}

// WithLogger sets the logger that receives diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

func newConfig(opts []Option) (Config, error) {
	cfg := Config{
		Workers: runtime.NumCPU(),
		Logger:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Workers < 1 {
		return cfg, ErrInvalidWorkers
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}
	return cfg, nil
}
