package iqsource

import (
	"github.com/simonhull/iqsource/internal/types"
)

// Encoding is an alias to types.Encoding.
// Re-exporting from internal/types to keep the public API at the root.
type Encoding = types.Encoding

// Re-export the supported encoding catalogue.
const (
	EncodingUnknown = types.EncodingUnknown
	Encoding8t      = types.Encoding8t
	Encoding8o      = types.Encoding8o
	Encoding16tbe   = types.Encoding16tbe
	Encoding16tle   = types.Encoding16tle
)

// ParseEncoding maps a filename encoding tag (e.g. "16tle") to its
// Encoding. The second return value reports whether the tag belongs to
// the supported catalogue.
func ParseEncoding(tag string) (Encoding, bool) {
	return types.ParseEncoding(tag)
}

// Encodings returns the supported encoding catalogue.
func Encodings() []Encoding {
	return types.Encodings()
}
