// internal/writers/sink.go
package writers

import (
	"errors"
	"io"
	"os"
	"syscall"
)

// StdoutPath selects standard output as the destination.
const StdoutPath = "-"

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// OpenSink opens path for writing, truncating any existing file. "-"
// returns stdout wrapped so that Close leaves it open.
func OpenSink(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == StdoutPath {
		return nopCloser{stdout}, nil
	}
	return os.Create(path)
}

// IsBrokenPipe reports whether err comes from a reader (like `head`) closing
// stdout early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
