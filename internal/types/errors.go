package types

import (
	"errors"
	"fmt"
)

// ErrEndOfStream is the sentinel matched by errors.Is when a Read runs
// past the last full snapshot in the file. It is an expected terminal
// condition, not a fault.
var ErrEndOfStream = errors.New("end of stream")

// ConfigError is returned at construction when the caller's input is
// unusable: an unsupported container layout, a capture that declares
// real (non-complex) samples, or invalid construction parameters.
//
// A ConfigError is unrecoverable; retrying with the same inputs will
// fail the same way.
type ConfigError struct {
	Path   string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// OpenError is returned at construction when the underlying path cannot
// be opened as either a container or a raw stream.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("%s: open failed: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// ReadError wraps an underlying I/O fault surfaced from Read.
// Retry policy is a caller concern; the source does not retry.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: read failed: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// EndOfStreamError is returned from Read when fewer bytes than one full
// snapshot remain. No partial sample array is returned.
//
// Matches ErrEndOfStream under errors.Is.
type EndOfStreamError struct {
	Path string
	Want int // bytes needed for one snapshot
	Got  int // bytes actually read
}

func (e *EndOfStreamError) Error() string {
	return fmt.Sprintf("%s: end of stream: got %d of %d snapshot bytes", e.Path, e.Got, e.Want)
}

func (e *EndOfStreamError) Is(target error) bool {
	return target == ErrEndOfStream
}
