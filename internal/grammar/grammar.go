// Package grammar parses the capture-file naming convention used by
// field-recorded I/Q files.
//
// Capture files are named by an informal, engineer-authored convention:
//
//	<name>[.cf<int>[.<frac>]].{cplx|real}.<rate_hz>.<encoding_tag>
//
// e.g. "xyz.cf1234.45.cplx.200000.16tbe". The parser is best-effort:
// malformed names yield OK=false rather than an error, and a bad centre
// frequency degrades to 0 without failing the whole parse. Only the
// fields without which decoding is impossible (encoding tag, sample
// rate, cplx/real marker) gate the result.
package grammar

import (
	"strconv"
	"strings"

	"github.com/simonhull/iqsource/internal/types"
)

// Result is the outcome of parsing a capture filename.
//
// If OK is false the remaining fields are meaningless and must not be
// consulted.
type Result struct {
	OK                bool
	Encoding          types.Encoding
	Complex           bool
	SampleRateHz      float64
	CentreFrequencyHz float64
}

// partial holds the raw dot-fields of interest before any numeric
// conversion. Each default-vs-override decision happens in resolve,
// never while scanning.
type partial struct {
	encodingTag string
	rateField   string
	markerField string

	cfPresent   bool
	cfAmbiguous bool   // more than one field contained "cf"
	cfDigits    string // integer part, "cf" prefix stripped
	cfFraction  string // long form only
}

// Parse extracts stream parameters from a capture file path.
//
// Fields are dot-separated and read from the right: encoding tag, then
// sample rate in Hz, then a cplx/real marker. An optional centre
// frequency field (containing "cf", value in MHz) may appear anywhere
// earlier, either immediately before the marker (short form, "cf100")
// or with a separate fractional field between it and the marker (long
// form, "cf100.5"). The whole path participates in field splitting, as
// directories rarely contain dots and the ambiguity rule covers the
// ones that do.
//
// Parse never panics and never returns an error: anything it cannot
// make sense of yields OK=false or a zero centre frequency.
func Parse(name string) Result {
	if name == "" {
		return Result{}
	}

	parts := strings.Split(name, ".")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	// Fewer than 4 fields cannot carry name + marker + rate + tag.
	if len(parts) < 4 {
		return Result{}
	}

	p := partial{
		encodingTag: parts[len(parts)-1],
		rateField:   parts[len(parts)-2],
		markerField: parts[len(parts)-3],
	}

	if strings.Contains(name, ".cf") {
		var indices []int
		for i, part := range parts {
			if strings.Contains(part, "cf") {
				indices = append(indices, i)
			}
		}
		switch len(indices) {
		case 0:
			// ".cf" straddled a field boundary; nothing usable.
		case 1:
			idx := indices[0]
			p.cfPresent = true
			field := parts[idx]
			p.cfDigits = field[strings.Index(field, "cf")+2:]
			if idx+1 < len(parts) && !isMarker(parts[idx+1]) {
				// Long form: the next field is the decimal fraction.
				p.cfFraction = parts[idx+1]
			}
		default:
			// Two or more cf fields: extraction is abandoned, not
			// resolved and not an error.
			p.cfAmbiguous = true
		}
	}

	return p.resolve()
}

// resolve converts the collected fields into the final Result.
func (p partial) resolve() Result {
	if !isMarker(p.markerField) {
		return Result{}
	}

	enc, ok := types.ParseEncoding(p.encodingTag)
	if !ok {
		return Result{}
	}

	rate, err := strconv.ParseFloat(p.rateField, 64)
	if err != nil || rate < 0 {
		// Without a sample rate the stream cannot be described at all.
		return Result{}
	}

	res := Result{
		OK:           true,
		Encoding:     enc,
		Complex:      p.markerField == "cplx",
		SampleRateHz: rate,
	}

	if p.cfPresent && !p.cfAmbiguous {
		text := p.cfDigits
		if p.cfFraction != "" {
			text += "." + p.cfFraction
		}
		// Value is in MHz. Conversion failure leaves the frequency at
		// its zero default; the rest of the parse stands.
		if mhz, err := strconv.ParseFloat(text, 64); err == nil && mhz >= 0 {
			res.CentreFrequencyHz = mhz * 1e6
		}
	}

	return res
}

func isMarker(field string) bool {
	return field == "cplx" || field == "real"
}
