package scores

import (
	"runtime"

	"go.uber.org/zap"
)

// Config controls how a Scores matrix is computed.
type Config struct {
	// Workers is the number of goroutines Calculate spreads rows across.
	// Zero or negative selects runtime.NumCPU().
	Workers int

	// ForceFullMatrix disables the triangle optimization, computing every
	// cell independently even when the measure reports itself symmetric
	// and the two collections are the same.
	ForceFullMatrix bool

	// Progress, when non-nil, is invoked after each completed row with
	// the number of finished rows and the row total. Calls are serialized.
	Progress func(done, total int)

	// Logger receives start/finish log entries. Nil defaults to a no-op
	// logger.
	Logger *zap.Logger
}

// DefaultConfig returns the default computation settings.
func DefaultConfig() Config {
	return Config{
		Workers: runtime.NumCPU(),
	}
}

func (c Config) workers() int {
	if c.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
