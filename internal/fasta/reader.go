// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"io"
)

// Record is one aligned sequence: the full header text (without '>') and its
// gapped sequence.
type Record struct {
	Header string
	Seq    string
}

const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)

// ReadAlignment parses the FASTA alignment at path, preserving record order.
// An empty file yields zero records and no error.
func ReadAlignment(ctx context.Context, path string) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer rc.Close()

	recs, err := Parse(ctx, rc)
	if err != nil {
		return nil, withPath(err, path)
	}
	return recs, nil
}

// Headers returns only the headers of the alignment at path.
func Headers(ctx context.Context, path string) ([]string, error) {
	recs, err := ReadAlignment(ctx, path)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Header
	}
	return out, nil
}

// Sequences returns only the sequences of the alignment at path.
func Sequences(ctx context.Context, path string) ([]string, error) {
	recs, err := ReadAlignment(ctx, path)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Seq
	}
	return out, nil
}

// Parse scans FASTA text from r. Multi-line sequences are folded into one
// upper-cased string; blank lines are ignored. Cancellation via ctx is
// honored between lines.
func Parse(ctx context.Context, r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		recs   = []Record{}
		header string
		seq    []byte
		open   bool
		lineNo int
	)
	flush := func() {
		if open {
			recs = append(recs, Record{Header: header, Seq: string(bytes.ToUpper(seq))})
		}
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		lineNo++
		// ScanLines already drops "\n" and a preceding "\r"; headers keep
		// everything else byte for byte.
		line := sc.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		if line[0] == '>' {
			flush()
			header = string(line[1:])
			seq = seq[:0]
			open = true
			continue
		}
		if !open {
			return nil, &ParseError{Line: lineNo, Err: ErrNoHeader}
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{Line: lineNo, Err: err}
	}
	flush()
	return recs, nil
}

// Reader reads alignments from the filesystem (or stdin for "-").
type Reader struct{}

func (Reader) Headers(ctx context.Context, path string) ([]string, error) {
	return Headers(ctx, path)
}

func (Reader) Sequences(ctx context.Context, path string) ([]string, error) {
	return Sequences(ctx, path)
}
