package fit

import "github.com/zipflab/zipfit/internal/options"

// Config holds the tunable parameters of a fit.
type Config struct {
	SinglePrecision bool
}

func defaultConfig() Config {
	return Config{}
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithSinglePrecision narrows the three result values through 32-bit floats
// before returning them.
//
// The default is full double precision. Use this option only when fitted
// values must reproduce, bit for bit, the output of the historical tooling
// that stored results in single precision.
func WithSinglePrecision() Option {
	return options.NoError(func(cfg *Config) {
		cfg.SinglePrecision = true
	})
}
