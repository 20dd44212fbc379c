// internal/fasta/writer.go
package fasta

import (
	"bufio"
	"fmt"
	"io"
)

// WriteAlignment writes recs as FASTA, one header line and one sequence
// line per record, in slice order.
func WriteAlignment(w io.Writer, recs []Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range recs {
		if _, err := fmt.Fprintf(bw, ">%s\n%s\n", r.Header, r.Seq); err != nil {
			return err
		}
	}
	return bw.Flush()
}
