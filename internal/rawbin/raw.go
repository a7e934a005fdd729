// Package rawbin reads headerless capture files as a raw byte stream.
//
// A raw capture carries no metadata at all; everything about its
// interpretation comes from the filename convention or from the
// caller's configuration.
package rawbin

import (
	"io"
	"os"

	"github.com/simonhull/iqsource/internal/types"
)

// Handle is an open raw binary capture file.
type Handle struct {
	file *os.File
}

// Open opens path as a raw stream. Failure to open (missing file,
// permissions) is an OpenError; there is no format to validate.
func Open(path string) (*Handle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &types.OpenError{Path: path, Err: err}
	}
	return &Handle{file: f}, nil
}

// ReadSnapshot fills p from the stream. A count shorter than len(p)
// means the file ended inside the snapshot; the trailing fragment is
// still consumed so repeated calls do not spin on it.
func (h *Handle) ReadSnapshot(p []byte) (int, error) {
	n, err := io.ReadFull(h.file, p)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return n, nil
	}
	return n, err
}

// Rewind seeks back to the start of the stream.
func (h *Handle) Rewind() error {
	_, err := h.file.Seek(0, io.SeekStart)
	return err
}

// Close releases the underlying file.
func (h *Handle) Close() error { return h.file.Close() }
