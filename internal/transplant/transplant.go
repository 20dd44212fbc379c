// Package transplant reattaches the headers of one alignment to the
// sequences of another, pairing records purely by position.
//
// Only record counts are compared. Two alignments with the same number of
// records but a different order produce a silently wrong result; callers
// must guarantee the order.
package transplant

import (
	"context"
	"errors"
	"fmt"
	"io"

	"alnheaders/internal/fasta"
)

// Source supplies the two halves of an alignment the transplant needs.
type Source interface {
	Headers(ctx context.Context, path string) ([]string, error)
	Sequences(ctx context.Context, path string) ([]string, error)
}

// Sink opens the output destination. It is called only after validation
// succeeds.
type Sink func() (io.WriteCloser, error)

// Request names the inputs of one run.
type Request struct {
	HeadersPath string
	SeqsPath    string
}

// Validate reports a *UsageError if either input path is missing.
func (r Request) Validate() error {
	var missing []string
	if r.HeadersPath == "" {
		missing = append(missing, "headers")
	}
	if r.SeqsPath == "" {
		missing = append(missing, "seqs")
	}
	if len(missing) > 0 {
		return &UsageError{Missing: missing}
	}
	return nil
}

// Transplant zips headers[i] with seqs[i]. It fails with *MismatchError
// when the counts differ.
func Transplant(headers, seqs []string) ([]fasta.Record, error) {
	if len(seqs) != len(headers) {
		return nil, &MismatchError{Headers: len(headers), Sequences: len(seqs)}
	}
	out := make([]fasta.Record, len(headers))
	for i, h := range headers {
		out[i] = fasta.Record{Header: h, Seq: seqs[i]}
	}
	return out, nil
}

// TransplantRecords is Transplant over already parsed alignments.
func TransplantRecords(headerSrc, seqSrc []fasta.Record) ([]fasta.Record, error) {
	headers := make([]string, len(headerSrc))
	for i, r := range headerSrc {
		headers[i] = r.Header
	}
	seqs := make([]string, len(seqSrc))
	for i, r := range seqSrc {
		seqs[i] = r.Seq
	}
	return Transplant(headers, seqs)
}

// Run performs one complete transplant: validate, read both inputs, check
// counts, then write. The sink is never opened unless the counts match.
func Run(ctx context.Context, req Request, src Source, open Sink) Result {
	if err := req.Validate(); err != nil {
		return Result{Kind: KindUsage, Err: err}
	}

	headers, err := src.Headers(ctx, req.HeadersPath)
	if err != nil {
		return readFailure(err, "headers")
	}
	seqs, err := src.Sequences(ctx, req.SeqsPath)
	if err != nil {
		return readFailure(err, "sequences")
	}

	recs, err := Transplant(headers, seqs)
	if err != nil {
		return Result{Kind: KindMismatch, Err: err}
	}

	w, err := open()
	if err != nil {
		return Result{Kind: KindIO, Err: &OutputError{Op: "open", Err: err}}
	}
	if err := fasta.WriteAlignment(w, recs); err != nil {
		_ = w.Close()
		return Result{Kind: KindIO, Err: &OutputError{Op: "write", Err: err}}
	}
	if err := w.Close(); err != nil {
		return Result{Kind: KindIO, Err: &OutputError{Op: "close", Err: err}}
	}
	return Result{Kind: KindSuccess, Records: len(recs)}
}

func readFailure(err error, what string) Result {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return Result{Kind: KindCanceled, Err: err}
	}
	return Result{Kind: KindParse, Err: fmt.Errorf("read %s alignment: %w", what, err)}
}
