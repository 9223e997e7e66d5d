// internal/kmer/extract.go
package kmer

import (
	"bytes"
	"unicode/utf8"
)

// Excluded is the unknown-base symbol. Windows containing it are skipped.
const Excluded = 'N'

// ScanStats counts what happened to each window of one scan.
type ScanStats struct {
	Windows  int // windows visited
	Accepted int // new keys plus accepted repeats
	Rejected int // repeats overlapping the last accepted occurrence
	Skipped  int // windows containing Excluded
}

// Extract scans seq with window length k and records accepted occurrences
// into t (allocated when nil). See ExtractWithStats.
func Extract(seq []byte, k int, t Table) (Table, error) {
	t, _, err := ExtractWithStats(seq, k, t)
	return t, err
}

// ExtractWithStats visits every window seq[i:i+k] left to right. An occurrence
// of a k-mer already in the table is accepted only if it starts at or after
// the end of that k-mer's last accepted occurrence; otherwise it is dropped
// and never compared against again.
//
// k > len(seq) yields an empty table. A window that is not valid UTF-8 aborts
// the scan with a *MalformedError and a nil table.
func ExtractWithStats(seq []byte, k int, t Table) (Table, ScanStats, error) {
	var st ScanStats
	if k < 1 {
		return nil, st, ErrInvalidK
	}
	if t == nil {
		t = make(Table)
	}
	n := len(seq) - k + 1
	if n <= 0 {
		return t, st, nil
	}

	for i := 0; i < n; i++ {
		w := seq[i : i+k]
		st.Windows++
		if !utf8.Valid(w) {
			return nil, st, &MalformedError{K: k, Pos: i}
		}
		if bytes.IndexByte(w, Excluded) >= 0 {
			st.Skipped++
			continue
		}
		rec, ok := t[string(w)]
		if !ok {
			t[string(w)] = newRecord(i)
			st.Accepted++
			continue
		}
		gap := i - rec.Last() - k
		if gap < 0 {
			st.Rejected++
			continue
		}
		rec.accept(i, gap)
		st.Accepted++
	}

	for _, rec := range t {
		rec.Compact()
	}
	return t, st, nil
}
