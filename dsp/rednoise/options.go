package rednoise

import "math"

// Config controls the block-size schedule.
type Config struct {
	// StartWidth is the initial and minimum block length in bins.
	StartWidth int
	// EndWidth is the maximum block length in bins. It also bounds the
	// memory held by a Whitener.
	EndWidth int
	// EndFreq is the frequency in Hz above which the block length stays at
	// EndWidth.
	EndFreq float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the classic defaults: blocks start at 6 bins, grow
// up to 100 bins and stop growing at 6 Hz.
func DefaultConfig() Config {
	return Config{
		StartWidth: 6,
		EndWidth:   100,
		EndFreq:    6,
	}
}

// WithStartWidth sets the initial block length.
func WithStartWidth(width int) Option {
	return func(cfg *Config) {
		if width > 0 {
			cfg.StartWidth = width
		}
	}
}

// WithEndWidth sets the maximum block length.
func WithEndWidth(width int) Option {
	return func(cfg *Config) {
		if width > 0 {
			cfg.EndWidth = width
		}
	}
}

// WithEndFreq sets the frequency at which block growth stops.
func WithEndFreq(freq float64) Option {
	return func(cfg *Config) {
		if freq > 0 && !math.IsInf(freq, 0) {
			cfg.EndFreq = freq
		}
	}
}

// WithConfig replaces the whole configuration. It is useful when the values
// come from a configuration file; the result is still validated by [New].
func WithConfig(c Config) Option {
	return func(cfg *Config) {
		*cfg = c
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
