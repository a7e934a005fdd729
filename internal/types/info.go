package types

import (
	"fmt"
	"time"
)

// MetadataOrigin records where a stream's resolved parameters came
// from, so the default-vs-override decision made at open time stays
// visible to callers and tests.
type MetadataOrigin int

const (
	// OriginDefaults means the caller-supplied configuration was kept
	// verbatim (raw file with an unparseable name).
	OriginDefaults MetadataOrigin = iota
	// OriginFilename means encoding, rate and centre frequency were
	// recovered from the capture filename convention.
	OriginFilename
	// OriginContainer means the sample rate was adopted from the WAV
	// header (the encoding stays caller-supplied; WAV headers do not
	// distinguish signed from offset-binary samples).
	OriginContainer
)

// String returns a short identifier for the origin.
func (o MetadataOrigin) String() string {
	switch o {
	case OriginFilename:
		return "filename"
	case OriginContainer:
		return "container"
	default:
		return "defaults"
	}
}

// StreamInfo is the resolved description of an open sample stream.
//
// It is computed once at construction and never mutated afterwards.
type StreamInfo struct {
	Encoding          Encoding
	SampleRateHz      float64
	CentreFrequencyHz float64
	Origin            MetadataOrigin
}

// String returns a human-readable summary.
// Example output: "16tle 48.0kHz cf 100.0MHz (filename)".
func (si StreamInfo) String() string {
	s := fmt.Sprintf("%s %.1fkHz", si.Encoding, si.SampleRateHz/1000)
	if si.CentreFrequencyHz != 0 {
		s += fmt.Sprintf(" cf %.1fMHz", si.CentreFrequencyHz/1e6)
	}
	return fmt.Sprintf("%s (%s)", s, si.Origin)
}

// Snapshot is one fixed-size unit of complex samples pulled from a
// source, with the wall-clock time the raw bytes arrived.
type Snapshot struct {
	// Samples holds the decoded complex samples, normalized to [-1, 1).
	Samples []complex64

	// Time is the wall-clock timestamp taken immediately after the
	// blocking read returned, before decoding.
	Time time.Time
}

// Duration returns the span of time the snapshot covers at the given
// sample rate, or 0 when the rate is unknown.
func (s *Snapshot) Duration(sampleRateHz float64) time.Duration {
	if sampleRateHz <= 0 {
		return 0
	}
	return time.Duration(float64(len(s.Samples)) / sampleRateHz * float64(time.Second))
}
