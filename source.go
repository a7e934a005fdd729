package iqsource

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/iqsource/internal/container"
	"github.com/simonhull/iqsource/internal/grammar"
	"github.com/simonhull/iqsource/internal/pcm"
	"github.com/simonhull/iqsource/internal/rawbin"
	"github.com/simonhull/iqsource/internal/types"
)

// Config carries the caller-supplied stream parameters.
//
// All fields are required. Encoding, SampleRateHz and CentreFrequencyHz
// act as defaults: a WAV header overrides the sample rate, and a
// parseable capture filename overrides all three. SamplesPerRead is
// never overridden.
type Config struct {
	// SamplesPerRead is the number of complex samples each Read
	// returns. Must be positive.
	SamplesPerRead int

	// Encoding of the stream when the file itself cannot say.
	Encoding Encoding

	// SampleRateHz the stream is supposed to be captured at.
	SampleRateHz float64

	// CentreFrequencyHz the capture is referenced to. Zero means
	// unknown.
	CentreFrequencyHz float64
}

// handle is the open file behind a Source: exactly one of the WAV
// container handle or the raw-binary handle, never both.
type handle interface {
	ReadSnapshot(p []byte) (int, error)
	Rewind() error
	Close() error
}

// Source reads fixed-size snapshots of complex samples from a capture
// file, either a stereo I/Q WAV container or a headerless raw stream.
//
// A Source owns a single open file handle and is not safe for
// concurrent use; exactly one logical reader drives it at a time.
//
// Always call Close when done:
//
//	src, err := iqsource.Open("capture.cf100.cplx.48000.16tle", cfg)
//	if err != nil {
//		return err
//	}
//	defer src.Close()
type Source struct {
	path         string
	info         types.StreamInfo
	h            handle
	connected    bool
	sleep        time.Duration
	bytesPerSnap int
	buf          []byte
	log          *slog.Logger
}

// Open opens a capture file and resolves its stream parameters.
//
// The path is probed as a WAV container first. A WAV capture must have
// exactly 2 channels (I and Q) and at most 2 bytes per sample; its
// frame rate becomes the effective sample rate, while the caller's
// encoding is trusted verbatim (WAV headers do not distinguish signed
// from offset-binary samples).
//
// Anything that is not WAV is opened as a raw binary stream and the
// capture filename convention is consulted. A parseable complex name
// overrides the caller's encoding, rate and (when nonzero) centre
// frequency; a parseable name declaring real samples fails with a
// ConfigError; an unparseable name silently keeps the caller's
// defaults. See Source.Info for which of these happened.
//
// Example:
//
//	src, err := iqsource.Open("capture.bin", iqsource.Config{
//	    SamplesPerRead: 4096,
//	    Encoding:       iqsource.Encoding16tle,
//	    SampleRateHz:   2.4e6,
//	})
func Open(path string, cfg Config, opts ...Option) (*Source, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	if cfg.SamplesPerRead <= 0 {
		return nil, &ConfigError{Path: path, Reason: "SamplesPerRead must be positive"}
	}

	s := &Source{
		path:  path,
		sleep: options.sleep,
		log:   options.logger,
		info: types.StreamInfo{
			Encoding:          cfg.Encoding,
			SampleRateHz:      cfg.SampleRateHz,
			CentreFrequencyHz: cfg.CentreFrequencyHz,
			Origin:            types.OriginDefaults,
		},
	}

	ch, err := container.Open(path)
	switch {
	case err == nil:
		s.h = ch
		s.info.SampleRateHz = ch.SampleRate()
		s.info.Origin = types.OriginContainer
		s.log.Debug("opened WAV capture", "path", path,
			"sample_rate_hz", s.info.SampleRateHz, "encoding", s.info.Encoding)

	case errors.Is(err, container.ErrNotContainer):
		rh, rerr := rawbin.Open(path)
		if rerr != nil {
			return nil, rerr
		}

		parsed := grammar.Parse(path)
		switch {
		case parsed.OK && parsed.Complex:
			s.info.Encoding = parsed.Encoding
			s.info.SampleRateHz = parsed.SampleRateHz
			if parsed.CentreFrequencyHz != 0 {
				s.info.CentreFrequencyHz = parsed.CentreFrequencyHz
			}
			s.info.Origin = types.OriginFilename
			s.log.Debug("parameters from filename", "path", path,
				"encoding", s.info.Encoding,
				"sample_rate_hz", s.info.SampleRateHz,
				"centre_frequency_hz", s.info.CentreFrequencyHz)
		case parsed.OK:
			rh.Close()
			return nil, &ConfigError{
				Path:   path,
				Reason: "file declares real (non-complex) samples, which are unsupported",
			}
		default:
			if options.strictFilename {
				rh.Close()
				return nil, &OpenError{
					Path: path,
					Err:  errors.New("filename does not match the capture naming convention"),
				}
			}
			// Soft degradation: keep whatever the caller configured.
			s.log.Debug("filename not parseable, keeping caller defaults", "path", path)
		}
		s.h = rh

	default:
		// ConfigError (bad WAV layout) or OpenError from the probe.
		return nil, err
	}

	s.bytesPerSnap = pcm.BytesPerSnapshot(cfg.SamplesPerRead, s.info.Encoding)
	if s.bytesPerSnap <= 0 {
		s.h.Close()
		s.h = nil
		return nil, &ConfigError{
			Path:   path,
			Reason: fmt.Sprintf("no usable encoding: caller gave %s and the filename supplied none", cfg.Encoding),
		}
	}
	s.buf = make([]byte, s.bytesPerSnap)
	s.connected = true

	return s, nil
}

// OpenContext opens a capture file with context support for
// cancellation. The context is checked before the open starts; the open
// itself is a handful of local file operations and is not interrupted
// midway.
func OpenContext(ctx context.Context, path string, cfg Config, opts ...Option) (*Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, cfg, opts...)
}

// OpenMany opens multiple capture files concurrently with a shared
// configuration, using up to runtime.NumCPU() goroutines. Results are
// returned in the same order as the input paths.
//
// If any file fails to open, all successfully opened sources are closed
// and an error is returned.
func OpenMany(ctx context.Context, cfg Config, paths ...string) ([]*Source, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Source, len(paths))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			src, err := Open(path, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = src
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, src := range results {
			if src != nil {
				src.Close()
			}
		}
		return nil, err
	}

	return results, nil
}

// Read pulls exactly one snapshot of complex samples from the file.
//
// The timestamp is wall-clock time taken immediately after the blocking
// read returned, before decoding. When fewer bytes than one full
// snapshot remain, Read marks the source disconnected and returns an
// EndOfStreamError (errors.Is(err, ErrEndOfStream)); no partial sample
// array is ever returned. Other I/O faults come back as a ReadError and
// leave the connected flag alone; retrying is the caller's call.
//
// When a sleep time is configured, Read blocks for that duration after
// the bytes arrive and before returning, pacing playback to a nominal
// capture rate.
func (s *Source) Read() (*Snapshot, error) {
	if s.h == nil {
		return nil, &ReadError{Path: s.path, Err: errors.New("source is closed")}
	}

	n, err := s.h.ReadSnapshot(s.buf)
	rxTime := time.Now()
	if err != nil {
		return nil, &ReadError{Path: s.path, Err: err}
	}
	if n < s.bytesPerSnap {
		s.connected = false
		return nil, &EndOfStreamError{Path: s.path, Want: s.bytesPerSnap, Got: n}
	}

	if s.sleep > 0 {
		time.Sleep(s.sleep)
	}

	samples, err := pcm.Unpack(s.buf, s.info.Encoding)
	if err != nil {
		return nil, &ReadError{Path: s.path, Err: err}
	}

	return &Snapshot{Samples: samples, Time: rxTime}, nil
}

// Close releases whichever handle is open and clears the connected
// flag. Close is idempotent and safe to call after a failed Read.
func (s *Source) Close() error {
	s.connected = false
	if s.h == nil {
		return nil
	}
	err := s.h.Close()
	s.h = nil
	return err
}

// Reconnect rewinds the read cursor to the start of the sample stream
// for repeat playback and reports whether the rewind succeeded. On
// success the source is connected again, even after end-of-stream.
//
// Reconnect does not re-run filename parsing or re-validate the
// container format; the parameters resolved at open time stand.
func (s *Source) Reconnect() bool {
	s.connected = false
	if s.h == nil {
		return false
	}
	if err := s.h.Rewind(); err != nil {
		s.log.Debug("rewind failed", "path", s.path, "error", err)
		return false
	}
	s.connected = true
	s.log.Debug("rewound capture", "path", s.path)
	return true
}

// SetSleepTime sets the delay Read blocks for after each snapshot,
// simulating real-time playback of a recorded capture. Zero disables
// throttling. Affects only subsequent reads.
func (s *Source) SetSleepTime(d time.Duration) {
	s.sleep = d
}

// Connected reports whether the source believes it can still deliver
// snapshots. End-of-stream and Close clear it; Reconnect restores it.
func (s *Source) Connected() bool { return s.connected }

// Info returns the stream parameters resolved at open time, including
// where they came from (container header, filename, or caller
// defaults).
func (s *Source) Info() StreamInfo { return s.info }

// BytesPerSnapshot returns the raw byte size of one snapshot.
func (s *Source) BytesPerSnapshot() int { return s.bytesPerSnap }

// Path returns the path the source was opened from.
func (s *Source) Path() string { return s.path }
