// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"kmerscan/internal/fasta"
	"kmerscan/internal/kmer"
)

// Result is one scanned FASTA record.
type Result struct {
	SequenceID string
	SourceFile string
	Length     int
	Range      kmer.Range
}

// Config wires the pipeline's collaborators. Logger and Tracker are optional.
type Config struct {
	Logger  *zap.Logger
	Tracker Tracker
}

// ForEachSequence reads every record of seqFiles, builds its k range with sc
// and calls visit with the result. A file that cannot be opened does not stop
// the remaining files; its error is returned at the end. Any scan or visit
// error stops the run immediately and is returned.
func ForEachSequence(
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	sc Scanner,
	visit func(Result) error,
) error {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var firstOpenErr error
	for _, fa := range seqFiles {
		if err := ctx.Err(); err != nil {
			return err
		}
		rc, err := fasta.Open(fa)
		if err != nil {
			log.Error("cannot open sequence file", zap.String("file", fa), zap.Error(err))
			if firstOpenErr == nil {
				firstOpenErr = err
			}
			continue
		}
		err = fasta.StreamCtx(ctx, rc, func(rec fasta.Record) error {
			return scanRecord(ctx, log, cfg.Tracker, fa, rec, sc, visit)
		})
		_ = rc.Close()
		if err != nil {
			return err
		}
	}
	return firstOpenErr
}

func scanRecord(
	ctx context.Context,
	log *zap.Logger,
	tr Tracker,
	file string,
	rec fasta.Record,
	sc Scanner,
	visit func(Result) error,
) error {
	log.Info("scanning sequence",
		zap.String("file", file),
		zap.String("name", rec.ID),
		zap.Int("seq_len", len(rec.Seq)))

	if tr != nil {
		tr.SequenceStarted()
	}
	start := time.Now()
	rng, err := sc.ScanRange(ctx, rec.ID, rec.Seq)
	took := time.Since(start)
	if tr != nil {
		tr.SequenceDone(took)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	log.Info("k range built",
		zap.String("name", rec.ID),
		zap.Int("tables", len(rng)),
		zap.Duration("took", took))

	return visit(Result{
		SequenceID: rec.ID,
		SourceFile: file,
		Length:     len(rec.Seq),
		Range:      rng,
	})
}
