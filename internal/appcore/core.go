// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kmerscan/internal/config"
	"kmerscan/internal/engine"
	"kmerscan/internal/logging"
	"kmerscan/internal/metrics"
	"kmerscan/internal/output"
	"kmerscan/internal/pipeline"
	"kmerscan/internal/writers"
)

var errWriterStopped = errors.New("report writer stopped")

// Options are the run inputs that do not live in config.Config.
type Options struct {
	SeqFiles        []string
	NoMatchExitCode int
}

// Run scans every record of o.SeqFiles with cfg and reports on stdout.
// It returns the process exit code.
func Run(parent context.Context, stdout, stderr io.Writer, cfg *config.Config, o Options) int {
	runID := uuid.NewString()
	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	logger = logger.With(zap.String("run_id", runID))
	defer func() { _ = logger.Sync() }()

	thr := cfg.Scan.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	m := metrics.New()
	if cfg.Metrics.Addr != "" {
		srv := metrics.NewServer(cfg.Metrics.Addr, m, logger)
		if err := srv.Start(); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 2
		}
		defer func() {
			if err := srv.Stop(); err != nil {
				logger.Warn("metrics server stop", zap.Error(err))
			}
		}()
	}

	eng := engine.New(engine.Config{
		MinK:     cfg.Scan.MinK,
		MaxK:     cfg.Scan.MaxK,
		Threads:  thr,
		Alphabet: cfg.Scan.AlphabetSize,
	}, engine.WithLogger(logger), engine.WithObserver(m))

	logger.Info("run started",
		zap.Int("min_k", cfg.Scan.MinK),
		zap.Int("max_k", cfg.Scan.MaxK),
		zap.Int("threads", thr),
		zap.Strings("inputs", o.SeqFiles))

	outw := bufio.NewWriter(stdout)
	inCh, writeErr := writers.StartWriter(outw, writers.Options{
		Format: cfg.Output.Format,
		Sort:   cfg.Output.Sort,
		Header: cfg.HeaderEnabled(),
		RunID:  runID,
	}, 4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var (
		werr       error
		writerDone bool
	)
	stopWriter := func(err error) error {
		werr, writerDone = err, true
		cancel()
		return errWriterStopped
	}

	total, sequences := 0, 0
	perr := pipeline.ForEachSequence(ctx, pipeline.Config{Logger: logger, Tracker: m}, o.SeqFiles, eng,
		func(r pipeline.Result) error {
			select {
			case err := <-writeErr:
				return stopWriter(err)
			default:
			}
			sequences++
			for _, t := range r.Range {
				total += len(t)
			}
			s := output.Sequence{ID: r.SequenceID, SourceFile: r.SourceFile, Length: r.Length, Range: r.Range}
			select {
			case inCh <- s:
				return nil
			case err := <-writeErr:
				return stopWriter(err)
			case <-ctx.Done():
				return ctx.Err()
			}
		})

	close(inCh)
	if !writerDone {
		werr = <-writeErr
	}
	ferr := outw.Flush()

	switch {
	case perr != nil && !errors.Is(perr, context.Canceled) && !errors.Is(perr, errWriterStopped):
		fmt.Fprintf(stderr, "error: %v\n", perr)
		return 3
	case writers.IsBrokenPipe(werr):
		return 0
	case werr != nil:
		fmt.Fprintln(stderr, werr)
		return 3
	case writers.IsBrokenPipe(ferr):
		return 0
	case ferr != nil:
		fmt.Fprintln(stderr, ferr)
		return 3
	case errors.Is(perr, context.Canceled):
		logger.Warn("run cancelled")
		return 130
	case perr != nil:
		// the writer stopped cleanly on a closed pipe
		return 0
	}

	logger.Info("run finished", zap.Int("sequences", sequences), zap.Int("kmers", total))
	if total == 0 {
		return o.NoMatchExitCode
	}
	return 0
}
