// Package container opens WAV capture files and exposes their PCM
// payload as a byte stream.
//
// I/Q captures stored as WAV use the two channels as I and Q; the
// header contributes the frame rate, while the sample interpretation
// (signed vs offset binary) stays with the caller since WAV does not
// record it.
package container

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"

	"github.com/simonhull/iqsource/internal/types"
)

// ErrNotContainer reports that the path opened but is not a WAV file.
// Callers are expected to fall back to the raw-binary path.
var ErrNotContainer = errors.New("not a WAV container")

// Handle is an open WAV capture file positioned at its first PCM frame.
type Handle struct {
	file       *os.File
	pcmStart   int64 // file offset of the first PCM frame
	pcmLen     int64 // byte length of the PCM chunk
	cursor     int64 // PCM bytes consumed so far
	frameBytes int   // one frame = one sample per channel
	sampleRate float64
}

// Open probes path as a stereo I/Q WAV container.
//
// Returns ErrNotContainer when the file is readable but not WAV, a
// ConfigError when it is WAV with an unusable layout (channel count
// other than 2, or more than 2 bytes per sample), and an OpenError when
// the path cannot be opened at all.
func Open(path string) (*Handle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &types.OpenError{Path: path, Err: err}
	}

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		f.Close()
		return nil, ErrNotContainer
	}

	if dec.NumChans != 2 {
		f.Close()
		return nil, &types.ConfigError{
			Path:   path,
			Reason: fmt.Sprintf("WAV has %d channels, need exactly 2 (I and Q)", dec.NumChans),
		}
	}
	sampleBytes := int(dec.BitDepth) / 8
	if sampleBytes > 2 {
		f.Close()
		return nil, &types.ConfigError{
			Path:   path,
			Reason: fmt.Sprintf("WAV sample width is %d bytes, need at most 2", sampleBytes),
		}
	}

	if err := dec.FwdToPCM(); err != nil {
		f.Close()
		return nil, &types.OpenError{Path: path, Err: err}
	}
	// The decoder reads the source directly, so the file offset now
	// sits on the first PCM frame.
	start, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		f.Close()
		return nil, &types.OpenError{Path: path, Err: err}
	}

	return &Handle{
		file:       f,
		pcmStart:   start,
		pcmLen:     dec.PCMLen(),
		frameBytes: 2 * sampleBytes,
		sampleRate: float64(dec.SampleRate),
	}, nil
}

// SampleRate returns the frame rate declared by the WAV header, in Hz.
func (h *Handle) SampleRate() float64 { return h.sampleRate }

// ReadSnapshot fills p with PCM bytes, whole frames at a time, never
// reading past the PCM chunk boundary (trailing RIFF chunks are not
// sample data). The returned count is less than len(p) once the payload
// is exhausted; that accounting is the caller's end-of-stream signal.
func (h *Handle) ReadSnapshot(p []byte) (int, error) {
	frames := len(p) / h.frameBytes
	want := int64(frames * h.frameBytes)
	if remaining := h.pcmLen - h.cursor; remaining < want {
		want = remaining
	}
	if want <= 0 {
		return 0, nil
	}

	n, err := io.ReadFull(h.file, p[:want])
	h.cursor += int64(n)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		// Short PCM chunk; report what arrived and let byte accounting
		// decide.
		return n, nil
	}
	return n, err
}

// Rewind seeks back to the first PCM frame.
func (h *Handle) Rewind() error {
	if _, err := h.file.Seek(h.pcmStart, io.SeekStart); err != nil {
		return err
	}
	h.cursor = 0
	return nil
}

// Close releases the underlying file.
func (h *Handle) Close() error { return h.file.Close() }
