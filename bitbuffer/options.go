package bitbuffer

import (
	"go.uber.org/zap"
)

// DefaultCapacity is the number of bytes preallocated when no capacity hint is given.
const DefaultCapacity = 1024

type option struct {
	capacity int
	logger   *zap.Logger
}

func defaultOpts() *option {
	return &option{
		capacity: DefaultCapacity,
		logger:   zap.NewNop(),
	}
}

type OptionFunc func(*option)

// WithCapacity sets the preallocation hint. It is not a limit.
func WithCapacity(capacity int) OptionFunc {
	return func(o *option) {
		if capacity >= 0 {
			o.capacity = capacity
		}
	}
}

func WithLogger(logger *zap.Logger) OptionFunc {
	return func(o *option) {
		if logger != nil {
			o.logger = logger
		}
	}
}
