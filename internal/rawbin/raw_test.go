package rawbin

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/simonhull/iqsource/internal/types"
)

func writeRaw(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "capture.bin")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.bin"))
	var openErr *types.OpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("expected OpenError, got %T: %v", err, err)
	}
}

func TestReadSnapshot_ShortReadAtEOF(t *testing.T) {
	h, err := Open(writeRaw(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}))
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	buf := make([]byte, 4)
	for i := 0; i < 2; i++ {
		n, err := h.ReadSnapshot(buf)
		if err != nil || n != 4 {
			t.Fatalf("read %d = (%d, %v), want (4, nil)", i, n, err)
		}
	}

	// Two trailing bytes left: short read, then empty.
	n, err := h.ReadSnapshot(buf)
	if err != nil || n != 2 {
		t.Fatalf("trailing read = (%d, %v), want (2, nil)", n, err)
	}
	n, err = h.ReadSnapshot(buf)
	if err != nil || n != 0 {
		t.Errorf("exhausted read = (%d, %v), want (0, nil)", n, err)
	}
}

func TestRewind(t *testing.T) {
	data := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	h, err := Open(writeRaw(t, data))
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	buf := make([]byte, 4)
	if _, err := h.ReadSnapshot(buf); err != nil {
		t.Fatal(err)
	}
	if err := h.Rewind(); err != nil {
		t.Fatalf("Rewind failed: %v", err)
	}

	again := make([]byte, 4)
	if _, err := h.ReadSnapshot(again); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf, again) {
		t.Errorf("rewound bytes differ: %v vs %v", buf, again)
	}
}
