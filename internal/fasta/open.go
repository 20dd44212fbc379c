// internal/fasta/open.go
package fasta

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// StdinPath is the path that selects standard input.
const StdinPath = "-"

// Stdin is the reader used for StdinPath. Tests may swap it.
var Stdin io.Reader = os.Stdin

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openReader handles "-" (stdin) and transparently decodes gzip input,
// detected by magic number (1F 8B) or a .gz suffix.
func openReader(path string) (io.ReadCloser, error) {
	if path == StdinPath {
		return sniffGzip(io.NopCloser(Stdin), false)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return sniffGzip(fh, strings.HasSuffix(path, ".gz"))
}

func sniffGzip(rc io.ReadCloser, forceGzip bool) (io.ReadCloser, error) {
	br := bufio.NewReader(rc)
	sig, _ := br.Peek(2)
	if !forceGzip && !(len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b) {
		return &multiReadCloser{Reader: br, closers: []io.Closer{rc}}, nil
	}
	gr, err := gzip.NewReader(br)
	if err != nil {
		_ = rc.Close()
		return nil, err
	}
	return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, rc}}, nil
}
