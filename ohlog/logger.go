// Package ohlog provides the single package-scoped logger used by the
// engine's soft-fail paths (spec.md §7): GeoLocale falling back to the
// fixed event times when the sun does not cross the needed elevation, and
// the iterator falling back when the locale cannot reverse-localize an
// input. These never escalate to an error, but they are worth a
// structured warning.
package ohlog

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	once   sync.Once
	logger zerolog.Logger
)

// L returns the package logger, initializing it on first use.
func L() *zerolog.Logger {
	once.Do(func() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
			With().Timestamp().Str("component", "openinghours").Logger().
			Level(zerolog.WarnLevel)
	})
	return &logger
}

// SetLevel adjusts the minimum level emitted by L(). Tests use this to
// silence the warning paths they intentionally exercise.
func SetLevel(level zerolog.Level) {
	L() // ensure initialized
	logger = logger.Level(level)
}
