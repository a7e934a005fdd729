package types

// Encoding identifies the bit width and byte order of the samples in a
// capture stream.
//
// The catalogue is the vocabulary of the last dot-field of the capture
// filename convention: a "t" suffix marks two's-complement samples, an
// "o" suffix marks offset-binary samples, and "be"/"le" give the byte
// order of multi-byte widths.
type Encoding int

const (
	// EncodingUnknown represents an unknown or unsupported encoding.
	EncodingUnknown Encoding = iota
	// Encoding8t represents signed (two's-complement) 8-bit samples.
	Encoding8t
	// Encoding8o represents offset-binary 8-bit samples, the RTL-SDR
	// convention where zero amplitude sits at 127.5.
	Encoding8o
	// Encoding16tbe represents signed 16-bit big-endian samples.
	Encoding16tbe
	// Encoding16tle represents signed 16-bit little-endian samples.
	Encoding16tle
)

// Tag returns the filename tag for this encoding, e.g. "16tle".
func (e Encoding) Tag() string {
	switch e {
	case Encoding8t:
		return "8t"
	case Encoding8o:
		return "8o"
	case Encoding16tbe:
		return "16tbe"
	case Encoding16tle:
		return "16tle"
	default:
		return "unknown"
	}
}

// String returns the filename tag, making Encoding values readable in
// logs and error messages.
func (e Encoding) String() string {
	return e.Tag()
}

// BytesPerSample returns the width of a single real-valued sample in
// bytes. A complex sample is twice this (one I, one Q).
//
// Returns 0 for EncodingUnknown.
func (e Encoding) BytesPerSample() int {
	switch e {
	case Encoding8t, Encoding8o:
		return 1
	case Encoding16tbe, Encoding16tle:
		return 2
	default:
		return 0
	}
}

// ParseEncoding maps a filename encoding tag to its Encoding.
// The second return value reports whether the tag belongs to the
// supported catalogue.
func ParseEncoding(tag string) (Encoding, bool) {
	switch tag {
	case "8t":
		return Encoding8t, true
	case "8o":
		return Encoding8o, true
	case "16tbe":
		return Encoding16tbe, true
	case "16tle":
		return Encoding16tle, true
	default:
		return EncodingUnknown, false
	}
}

// Encodings returns the supported encoding catalogue.
func Encodings() []Encoding {
	return []Encoding{Encoding8t, Encoding8o, Encoding16tbe, Encoding16tle}
}
