package zipkit

import (
	"log/slog"
	"time"
)

// buildConfig holds configuration for one archive build.
type buildConfig struct {
	modTime time.Time
	logger  *slog.Logger
	workers int
}

// BuildOption configures an archive build.
type BuildOption func(*buildConfig)

// BuildWithModTime sets the modification timestamp stamped into every
// entry's headers. The zero value takes the wall clock at the start of the
// build; a fixed value makes rebuilds of the same entries byte-identical.
func BuildWithModTime(t time.Time) BuildOption {
	return func(cfg *buildConfig) {
		cfg.modTime = t
	}
}

// BuildWithLogger sets the logger for build progress. Nil discards logs.
func BuildWithLogger(logger *slog.Logger) BuildOption {
	return func(cfg *buildConfig) {
		cfg.logger = logger
	}
}

// BuildWithWorkers sets the number of goroutines encoding entries.
// Values below 2 keep encoding sequential. The assembled archive is
// identical either way; entries are emitted in input order regardless of
// which worker encoded them.
func BuildWithWorkers(n int) BuildOption {
	return func(cfg *buildConfig) {
		cfg.workers = n
	}
}
