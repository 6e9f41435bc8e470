package dashboard

import (
	"log/slog"

	"github.com/dmitrymomot/flagdeck/pkg/feature"
)

type settings struct {
	seed        []*feature.Flag
	log         *slog.Logger
	eventBuffer int
}

// Option customizes controller construction.
type Option func(*settings)

// WithFlags seeds the controller with the given flags instead of
// DefaultFlags(). Passing no flags starts an empty collection.
func WithFlags(flags ...*feature.Flag) Option {
	return func(s *settings) {
		s.seed = flags
	}
}

// WithLogger sets the structured logger used for mutation logging.
// Nil loggers are ignored; the default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(s *settings) {
		if log != nil {
			s.log = log
		}
	}
}

// WithEventBuffer overrides the per-subscriber event buffer size.
func WithEventBuffer(size int) Option {
	return func(s *settings) {
		if size > 0 {
			s.eventBuffer = size
		}
	}
}
