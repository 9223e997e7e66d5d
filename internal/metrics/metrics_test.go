package metrics

import (
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kmerscan/internal/kmer"
)

func TestObserveTable(t *testing.T) {
	m := New()
	m.ObserveTable("s", 2, 1, kmer.ScanStats{Windows: 4, Accepted: 2, Rejected: 2}, time.Millisecond)
	m.ObserveTable("s", 3, 1, kmer.ScanStats{Windows: 3, Accepted: 1, Rejected: 1, Skipped: 1}, time.Millisecond)

	assert.Equal(t, 7.0, testutil.ToFloat64(m.WindowsTotal))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.AcceptedTotal))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.RejectedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SkippedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TablesTotal.WithLabelValues("3")))
}

func TestSequenceLifecycle(t *testing.T) {
	m := New()
	m.SequenceStarted()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SequencesInFlight))
	m.SequenceDone(time.Second)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.SequencesInFlight))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SequencesTotal))
}

func TestServer(t *testing.T) {
	m := New()
	m.ObserveTable("s", 4, 9, kmer.ScanStats{Windows: 10}, time.Millisecond)

	srv := NewServer("127.0.0.1:0", m, nil)
	require.NoError(t, srv.Start())
	defer func() { _ = srv.Stop() }()

	resp, err := http.Get("http://" + srv.Addr() + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "kmerscan_scan_windows_total 10")
	assert.Contains(t, string(body), `kmerscan_scan_table_kmers{k="4"} 9`)

	resp, err = http.Get("http://" + srv.Addr() + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
