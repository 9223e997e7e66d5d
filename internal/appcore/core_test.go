package appcore

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kmerscan/internal/config"
)

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func fasta(t *testing.T, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "in.fa")
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}

func tsvConfig() *config.Config {
	cfg := config.Default()
	cfg.Scan.MinK, cfg.Scan.MaxK = 2, 3
	cfg.Output.Format = config.FormatTSV
	cfg.Logging.Level = "error"
	return cfg
}

func TestRun_OK(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := Run(context.Background(), &out, &errBuf, tsvConfig(), Options{
		SeqFiles: []string{fasta(t, ">a\nACGT\n")}, NoMatchExitCode: 1,
	})
	require.Equal(t, 0, code, errBuf.String())
	assert.Contains(t, out.String(), "a\t2\tAC\t1\t0\t0\t-")
}

func TestRun_ScanErrorWinsOverBrokenPipe(t *testing.T) {
	var errBuf bytes.Buffer
	code := Run(context.Background(), failWriter{err: syscall.EPIPE}, &errBuf, tsvConfig(), Options{
		SeqFiles: []string{fasta(t, ">a\nACGT\n>b\nAC\xffGT\n")}, NoMatchExitCode: 1,
	})
	assert.Equal(t, 3, code)
	assert.Contains(t, errBuf.String(), "not valid UTF-8")
}

func TestRun_BrokenPipeIsSuccess(t *testing.T) {
	var errBuf bytes.Buffer
	code := Run(context.Background(), failWriter{err: syscall.EPIPE}, &errBuf, tsvConfig(), Options{
		SeqFiles: []string{fasta(t, ">a\nACGT\n>b\nGGCC\n")}, NoMatchExitCode: 1,
	})
	assert.Equal(t, 0, code, errBuf.String())
}

func TestRun_WriteFailureStopsRun(t *testing.T) {
	// enough rows to overflow the stdout buffer while records are still coming
	var b strings.Builder
	for i := 0; i < 50; i++ {
		b.WriteString(">r\n")
		b.WriteString(strings.Repeat("ACGGTCATTGCA", 40))
		b.WriteByte('\n')
	}
	cfg := tsvConfig()
	cfg.Scan.MaxK = 6

	var errBuf bytes.Buffer
	code := Run(context.Background(), failWriter{err: errors.New("disk full")}, &errBuf, cfg, Options{
		SeqFiles: []string{fasta(t, b.String())}, NoMatchExitCode: 1,
	})
	assert.Equal(t, 3, code)
	assert.Contains(t, errBuf.String(), "disk full")
}

func TestRun_CancelledParent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errBuf bytes.Buffer
	code := Run(ctx, &out, &errBuf, tsvConfig(), Options{
		SeqFiles: []string{fasta(t, ">a\nACGT\n")}, NoMatchExitCode: 1,
	})
	assert.Equal(t, 130, code)
}

func TestRun_BadLogLevel(t *testing.T) {
	cfg := tsvConfig()
	cfg.Logging.Level = "loud"
	var out, errBuf bytes.Buffer
	code := Run(context.Background(), &out, &errBuf, cfg, Options{SeqFiles: []string{"-"}})
	assert.Equal(t, 2, code)
}
