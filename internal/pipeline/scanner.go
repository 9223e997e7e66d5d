// internal/pipeline/scanner.go
package pipeline

import (
	"context"
	"time"

	"kmerscan/internal/kmer"
)

// Scanner is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Scanner interface {
	ScanRange(ctx context.Context, seqID string, seq []byte) (kmer.Range, error)
}

// Tracker is told when each sequence starts and finishes.
type Tracker interface {
	SequenceStarted()
	SequenceDone(took time.Duration)
}
