// Package pcm converts raw interleaved I/Q bytes into complex sample
// arrays.
//
// The byte layout is always I then Q, repeated: one complex sample
// costs two real-valued samples of the encoding's width. Values are
// normalized to [-1, 1) so downstream DSP stages are independent of the
// capture bit depth.
package pcm

import (
	"encoding/binary"
	"fmt"

	"github.com/simonhull/iqsource/internal/types"
)

// BytesPerSnapshot returns the raw byte size of one snapshot of n
// complex samples: n × 2 × bytes-per-sample (factor 2 for I/Q).
//
// Returns 0 when the encoding is unknown.
func BytesPerSnapshot(n int, enc types.Encoding) int {
	return n * 2 * enc.BytesPerSample()
}

// Unpack converts interleaved I/Q bytes into complex samples.
//
// len(raw) must be a whole number of complex frames (2 × the sample
// width); Unpack does not invent padding for truncated input.
func Unpack(raw []byte, enc types.Encoding) ([]complex64, error) {
	frame := 2 * enc.BytesPerSample()
	if frame == 0 {
		return nil, fmt.Errorf("cannot unpack %s samples", enc)
	}
	if len(raw)%frame != 0 {
		return nil, fmt.Errorf("%d bytes is not a whole number of %s complex frames (%d bytes each)",
			len(raw), enc, frame)
	}

	out := make([]complex64, len(raw)/frame)
	switch enc {
	case types.Encoding8t:
		for i := range out {
			out[i] = complex(
				float32(int8(raw[2*i]))/128,
				float32(int8(raw[2*i+1]))/128,
			)
		}
	case types.Encoding8o:
		// Offset binary: zero amplitude is 127.5, full scale 0..255.
		for i := range out {
			out[i] = complex(
				(float32(raw[2*i])-127.5)/128,
				(float32(raw[2*i+1])-127.5)/128,
			)
		}
	case types.Encoding16tbe:
		for i := range out {
			out[i] = complex(
				float32(int16(binary.BigEndian.Uint16(raw[4*i:])))/32768,
				float32(int16(binary.BigEndian.Uint16(raw[4*i+2:])))/32768,
			)
		}
	case types.Encoding16tle:
		for i := range out {
			out[i] = complex(
				float32(int16(binary.LittleEndian.Uint16(raw[4*i:])))/32768,
				float32(int16(binary.LittleEndian.Uint16(raw[4*i+2:])))/32768,
			)
		}
	default:
		return nil, fmt.Errorf("cannot unpack %s samples", enc)
	}

	return out, nil
}
