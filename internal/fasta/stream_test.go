package fasta

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plain = `>seq1 first record
ACgt
acgt
>seq2
NNnn

>empty
`

func collect(t *testing.T, r io.Reader) []Record {
	t.Helper()
	var recs []Record
	err := StreamCtx(context.Background(), r, func(rec Record) error {
		recs = append(recs, rec)
		return nil
	})
	require.NoError(t, err)
	return recs
}

func TestStreamCtx_Records(t *testing.T) {
	recs := collect(t, strings.NewReader(plain))
	require.Len(t, recs, 3)
	assert.Equal(t, Record{ID: "seq1", Seq: []byte("ACGTACGT")}, recs[0])
	assert.Equal(t, Record{ID: "seq2", Seq: []byte("NNNN")}, recs[1])
	assert.Equal(t, "empty", recs[2].ID)
	assert.Empty(t, recs[2].Seq)
}

func TestStreamCtx_CRLFAndHeaderless(t *testing.T) {
	recs := collect(t, strings.NewReader("acg\r\ntt\r\n"))
	require.Len(t, recs, 1)
	assert.Equal(t, "", recs[0].ID)
	assert.Equal(t, []byte("ACGTT"), recs[0].Seq)
}

func TestStreamCtx_KeepsNonASCIIBytes(t *testing.T) {
	recs := collect(t, strings.NewReader(">x\nac\xffg\n"))
	require.Len(t, recs, 1)
	assert.Equal(t, []byte("AC\xffG"), recs[0].Seq)
}

func TestStreamCtx_EmitErrorStops(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	err := StreamCtx(context.Background(), strings.NewReader(plain), func(Record) error {
		n++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, n)
}

func TestStreamCtx_CancelImmediately(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n := 0
	err := StreamCtx(ctx, strings.NewReader(plain), func(Record) error { n++; return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
}

func streamPath(t *testing.T, path string, emit func(Record) error) error {
	t.Helper()
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return StreamCtx(context.Background(), rc, emit)
}

// writeGz creates a gzipped FASTA file with provided data, returns the file path.
func writeGz(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	fh, err := os.Create(path)
	require.NoError(t, err)
	gw := gzip.NewWriter(fh)
	_, err = gw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, fh.Close())
	return path
}

func TestOpen_Gzip(t *testing.T) {
	for _, name := range []string{"x.fa.gz", "x.fa"} { // magic number detection without suffix
		path := writeGz(t, name, plain)
		var ids []string
		err := streamPath(t, path, func(r Record) error {
			ids = append(ids, r.ID)
			return nil
		})
		require.NoError(t, err, name)
		assert.Equal(t, []string{"seq1", "seq2", "empty"}, ids, name)
	}
}

func TestOpen_Stdin(t *testing.T) {
	orig := os.Stdin
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	go func() {
		_, _ = io.WriteString(w, plain)
		_ = w.Close()
	}()

	count := 0
	err = streamPath(t, "-", func(Record) error { count++; return nil })
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestOpen_Missing(t *testing.T) {
	err := streamPath(t, filepath.Join(t.TempDir(), "nope.fa"), func(Record) error { return nil })
	assert.ErrorIs(t, err, os.ErrNotExist)
}
