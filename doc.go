// Package iqsource provides file-backed complex (I/Q) sample streams
// for signal-processing pipelines.
//
// A Source plays back a recorded capture in fixed-size snapshots,
// resolving the stream's encoding, sample rate and centre frequency
// from whatever the file can offer: a WAV header, the capture filename
// convention, or the caller's configuration.
//
// # Quick Start
//
// Reading snapshots from a capture file:
//
//	src, err := iqsource.Open("capture.cf100.cplx.48000.16tle", iqsource.Config{
//		SamplesPerRead: 4096,
//		Encoding:       iqsource.Encoding16tle,
//		SampleRateHz:   48000,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer src.Close()
//
//	for {
//		snap, err := src.Read()
//		if errors.Is(err, iqsource.ErrEndOfStream) {
//			break
//		}
//		if err != nil {
//			log.Fatal(err)
//		}
//		process(snap.Samples, snap.Time)
//	}
//
// # Capture Files
//
// Two kinds of file are supported, probed in this order:
//
//   - WAV containers: the two channels carry I and Q, the header
//     supplies the sample rate. Exactly 2 channels and at most 2 bytes
//     per sample; the caller's encoding is trusted verbatim since WAV
//     does not record signedness conventions.
//   - Raw binary streams: headerless interleaved I/Q. Parameters come
//     from the filename convention
//     <name>[.cf<MHz>[.<frac>]].{cplx|real}.<rate_hz>.<encoding_tag>
//     when the name parses, and from the caller's Config when it does
//     not.
//
// Supported encoding tags: 8t, 8o, 16tbe, 16tle.
//
// # Philosophy
//
// Capture filenames are an informal, field-engineer-authored
// convention, so the parser degrades gracefully: best-effort metadata,
// silent fallback to configured defaults, and hard failures only where
// decoding would otherwise be impossible. Source.Info reports which
// path was taken.
//
// # Error Handling
//
// Fatal and expected conditions are separated by call site:
//
//   - Open fails with a ConfigError (unusable layout, real-valued
//     capture, bad parameters) or an OpenError (path cannot be opened).
//   - Read returns an EndOfStreamError - matched by
//     errors.Is(err, ErrEndOfStream) - when the file runs out; this is
//     "no more data", not a bug. Other I/O faults surface as a
//     ReadError and are not retried internally.
//
// After end-of-stream, Reconnect rewinds to the start of the stream for
// repeat playback.
//
// # Throttling
//
// SetSleepTime (or WithSleepTime) makes each Read block after the bytes
// arrive, pacing playback of a recorded file to a nominal capture rate.
// This is deliberate blocking backpressure, not a timer loop; a Source
// has no internal goroutines.
package iqsource
