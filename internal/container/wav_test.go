package container

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/simonhull/iqsource/internal/types"
)

// writeWAV writes a PCM WAV fixture and returns its path. data holds
// interleaved per-channel sample values.
func writeWAV(t *testing.T, numChans, bitDepth, sampleRate int, data []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "capture.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	enc := wav.NewEncoder(f, sampleRate, bitDepth, numChans, 1)
	buf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{NumChannels: numChans, SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpen_StereoWAV(t *testing.T) {
	path := writeWAV(t, 2, 16, 96000, []int{100, -100, 200, -200})

	h, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer h.Close()

	if h.SampleRate() != 96000 {
		t.Errorf("SampleRate() = %v, want 96000", h.SampleRate())
	}
}

func TestOpen_NotAContainer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.bin")
	if err := os.WriteFile(path, []byte("headerless capture bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(path)
	if !errors.Is(err, ErrNotContainer) {
		t.Errorf("expected ErrNotContainer, got %v", err)
	}
}

func TestOpen_MonoRejected(t *testing.T) {
	path := writeWAV(t, 1, 16, 48000, []int{1, 2, 3, 4})

	_, err := Open(path)
	var cfgErr *types.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %T: %v", err, err)
	}
}

func TestOpen_WideSamplesRejected(t *testing.T) {
	path := writeWAV(t, 2, 24, 48000, []int{1, 2, 3, 4})

	_, err := Open(path)
	var cfgErr *types.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %T: %v", err, err)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.wav"))
	var openErr *types.OpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("expected OpenError, got %T: %v", err, err)
	}
}

func TestReadSnapshot_Accounting(t *testing.T) {
	// 3 stereo 16-bit frames = 12 PCM bytes.
	path := writeWAV(t, 2, 16, 48000, []int{1, -1, 2, -2, 3, -3})

	h, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	// Two frames per snapshot: first read full, second read short.
	buf := make([]byte, 8)
	n, err := h.ReadSnapshot(buf)
	if err != nil {
		t.Fatalf("first ReadSnapshot failed: %v", err)
	}
	if n != 8 {
		t.Fatalf("first ReadSnapshot = %d bytes, want 8", n)
	}

	n, err = h.ReadSnapshot(buf)
	if err != nil {
		t.Fatalf("second ReadSnapshot failed: %v", err)
	}
	if n != 4 {
		t.Errorf("second ReadSnapshot = %d bytes, want 4 (short read at PCM boundary)", n)
	}

	n, err = h.ReadSnapshot(buf)
	if err != nil || n != 0 {
		t.Errorf("exhausted ReadSnapshot = (%d, %v), want (0, nil)", n, err)
	}
}

func TestRewind_ReproducesFirstBytes(t *testing.T) {
	path := writeWAV(t, 2, 16, 48000, []int{10, -10, 20, -20})

	h, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	first := make([]byte, 8)
	if _, err := h.ReadSnapshot(first); err != nil {
		t.Fatal(err)
	}

	if err := h.Rewind(); err != nil {
		t.Fatalf("Rewind failed: %v", err)
	}

	again := make([]byte, 8)
	if _, err := h.ReadSnapshot(again); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, again) {
		t.Errorf("rewound bytes differ: %v vs %v", first, again)
	}
}
