package iqsource

import (
	"io"
	"log/slog"
	"time"
)

// Option configures behavior when opening capture files.
//
// Options use the functional options pattern:
//
//	src, err := iqsource.Open(path, cfg,
//	    iqsource.WithLogger(logger),
//	    iqsource.WithStrictFilename(),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening sources.
type openOptions struct {
	logger         *slog.Logger
	sleep          time.Duration
	strictFilename bool
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger injects a structured logger for diagnostic events (which
// open path was taken, where stream parameters came from, rewinds).
//
// By default diagnostics are discarded. Nothing is ever logged above
// debug level; the source's errors carry everything a caller needs.
func WithLogger(logger *slog.Logger) Option {
	return func(o *openOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSleepTime sets the initial inter-read delay, equivalent to
// calling SetSleepTime right after Open.
//
// Example:
//
//	// Pace 4096-sample snapshots to a 48 kHz capture rate.
//	src, err := iqsource.Open(path, cfg,
//	    iqsource.WithSleepTime(4096*time.Second/48000),
//	)
func WithSleepTime(d time.Duration) Option {
	return func(o *openOptions) {
		o.sleep = d
	}
}

// WithStrictFilename makes a raw-binary open fail when the filename
// grammar cannot be parsed, instead of silently falling back to the
// caller's defaults.
//
// By default an unparseable name is a soft degradation: the source
// opens with the configured encoding and rate, and only a debug-level
// diagnostic records the fallback. Strict mode is for pipelines where a
// misnamed capture is more likely a mistake than a convention-free
// file.
func WithStrictFilename() Option {
	return func(o *openOptions) {
		o.strictFilename = true
	}
}
