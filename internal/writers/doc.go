// Package writers opens output destinations for alignments.
//
// A destination is either a file, created or truncated, or "-" for stdout.
// Nothing is opened until the caller has validated its inputs.
package writers
