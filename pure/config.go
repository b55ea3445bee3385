package pure

import "go.uber.org/zap"

// Config tunes a memo table.
type Config struct {
	MaxTableSize uint32 // 0: unbounded
	NumStripes   int    // default: 1, only used by Synchronized
	Logger       *zap.Logger
}

type Option func(*Config)

// WithLogger makes the table log its lifecycle and misses at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithStripes sets how many independently locked partitions Synchronized uses.
func WithStripes(n int) Option {
	return func(c *Config) {
		c.NumStripes = n
	}
}

func NewConfig(opts ...Option) Config {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.NumStripes <= 0 {
		cfg.NumStripes = 1
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg
}
