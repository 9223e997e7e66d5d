// internal/engine/engine.go
package engine

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"kmerscan/internal/kmer"
)

// ErrInvalidRange reports MinK < 1 or MinK > MaxK.
var ErrInvalidRange = errors.New("invalid k range")

// Config holds range-scan parameters.
type Config struct {
	MinK     int
	MaxK     int
	Threads  int // concurrent k scans (0 = all CPUs)
	Alphabet int // symbols expected in the input, used to pre-size tables (0 = 4)
}

// Validate checks 1 <= MinK <= MaxK.
func (c Config) Validate() error {
	if c.MinK < 1 {
		return fmt.Errorf("%w: min k %d < 1", ErrInvalidRange, c.MinK)
	}
	if c.MinK > c.MaxK {
		return fmt.Errorf("%w: min k %d > max k %d", ErrInvalidRange, c.MinK, c.MaxK)
	}
	return nil
}

// Observer is told about every finished table. Implementations must be safe
// for concurrent use.
type Observer interface {
	ObserveTable(seqID string, k, keys int, st kmer.ScanStats, took time.Duration)
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithObserver registers an Observer.
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.obs = o }
}

// Engine builds k-mer tables for every k in a configured range.
type Engine struct {
	cfg Config
	log *zap.Logger
	obs Observer
}

// New creates an Engine. Threads and Alphabet defaults are resolved here.
func New(c Config, opts ...Option) *Engine {
	if c.Threads <= 0 {
		c.Threads = runtime.NumCPU()
	}
	if c.Alphabet <= 0 {
		c.Alphabet = 4
	}
	e := &Engine{cfg: c, log: zap.NewNop()}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Config returns the resolved configuration.
func (e *Engine) Config() Config { return e.cfg }

// Bounds returns the k values to scan for a sequence of length n:
// MinK..min(MaxK, n). ok is false when no k fits.
func (e *Engine) Bounds(n int) (lo, hi int, ok bool) {
	lo, hi = e.cfg.MinK, e.cfg.MaxK
	if hi > n {
		hi = n
	}
	return lo, hi, lo <= hi
}

// ScanRange extracts one table per k. Tables are built independently on up
// to Threads goroutines; the first failure cancels the rest and no partial
// range is returned.
func (e *Engine) ScanRange(ctx context.Context, seqID string, seq []byte) (kmer.Range, error) {
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}
	lo, hi, ok := e.Bounds(len(seq))
	out := make(kmer.Range)
	if !ok {
		e.log.Debug("sequence shorter than min k",
			zap.String("sequence", seqID),
			zap.Int("length", len(seq)),
			zap.Int("min_k", lo))
		return out, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Threads)

	for k := lo; k <= hi; k++ {
		if gctx.Err() != nil {
			break
		}
		k := k
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tab, err := e.scanOne(seqID, seq, k)
			if err != nil {
				return err
			}
			mu.Lock()
			out[k] = tab
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// scanOne builds the table for a single k. k is already known to fit seq.
func (e *Engine) scanOne(seqID string, seq []byte, k int) (kmer.Table, error) {
	windows := len(seq) - k + 1
	if windows <= 0 {
		return nil, fmt.Errorf("k=%d exceeds sequence length %d", k, len(seq))
	}
	start := time.Now()
	tab := make(kmer.Table, kmer.Capacity(e.cfg.Alphabet, k, windows))
	tab, st, err := kmer.ExtractWithStats(seq, k, tab)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", seqID, err)
	}
	took := time.Since(start)

	e.log.Info("k-mer table built",
		zap.String("sequence", seqID),
		zap.Int("k", k),
		zap.Int("kmers", len(tab)),
		zap.Int("accepted", st.Accepted),
		zap.Int("rejected", st.Rejected),
		zap.Int("skipped", st.Skipped),
		zap.Duration("took", took))
	if e.obs != nil {
		e.obs.ObserveTable(seqID, k, len(tab), st, took)
	}
	return tab, nil
}
