package iqsource

import (
	"github.com/simonhull/iqsource/internal/types"
)

// ConfigError is an alias to types.ConfigError.
// Re-exporting from internal/types to keep the public API at the root.
type ConfigError = types.ConfigError

// OpenError is an alias to types.OpenError.
// Re-exporting from internal/types to keep the public API at the root.
type OpenError = types.OpenError

// ReadError is an alias to types.ReadError.
// Re-exporting from internal/types to keep the public API at the root.
type ReadError = types.ReadError

// EndOfStreamError is an alias to types.EndOfStreamError.
// Re-exporting from internal/types to keep the public API at the root.
type EndOfStreamError = types.EndOfStreamError

// ErrEndOfStream is the sentinel matched by errors.Is when a Read runs
// past the last full snapshot:
//
//	snap, err := src.Read()
//	if errors.Is(err, iqsource.ErrEndOfStream) {
//	    // no more data; rewind or stop
//	}
var ErrEndOfStream = types.ErrEndOfStream
