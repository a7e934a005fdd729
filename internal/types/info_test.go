package types

import (
	"testing"
	"time"
)

func TestStreamInfo_String(t *testing.T) {
	tests := []struct {
		info StreamInfo
		want string
	}{
		{
			StreamInfo{Encoding: Encoding16tle, SampleRateHz: 48000, CentreFrequencyHz: 100e6, Origin: OriginFilename},
			"16tle 48.0kHz cf 100.0MHz (filename)",
		},
		{
			StreamInfo{Encoding: Encoding8o, SampleRateHz: 2.4e6, Origin: OriginDefaults},
			"8o 2400.0kHz (defaults)",
		},
		{
			StreamInfo{Encoding: Encoding16tbe, SampleRateHz: 96000, Origin: OriginContainer},
			"16tbe 96.0kHz (container)",
		},
	}

	for _, tt := range tests {
		if got := tt.info.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSnapshot_Duration(t *testing.T) {
	snap := &Snapshot{Samples: make([]complex64, 48000)}

	if got := snap.Duration(48000); got != time.Second {
		t.Errorf("Duration(48000) = %v, want 1s", got)
	}
	if got := snap.Duration(0); got != 0 {
		t.Errorf("Duration(0) = %v, want 0", got)
	}
}
