// internal/kmer/record.go
package kmer

import (
	"fmt"
	"math"
	"sort"
)

// Record holds the accepted occurrences of one k-mer for a fixed k.
type Record struct {
	Count     int
	Positions []int // starts of accepted occurrences, increasing
	Scores    []int // gap to the previous accepted occurrence, len(Positions)-1 entries
	Zeros     int   // number of Scores equal to 0
}

func newRecord(pos int) *Record {
	return &Record{Count: 1, Positions: []int{pos}}
}

// accept records an occurrence at pos with the given non-negative gap.
func (r *Record) accept(pos, gap int) {
	r.Scores = append(r.Scores, gap)
	if gap == 0 {
		r.Zeros++
	}
	r.Positions = append(r.Positions, pos)
	r.Count++
}

// Last returns the most recently accepted position.
func (r *Record) Last() int { return r.Positions[len(r.Positions)-1] }

// Compact trims slice capacity once the record is final.
func (r *Record) Compact() {
	if cap(r.Positions) > len(r.Positions) {
		r.Positions = append(make([]int, 0, len(r.Positions)), r.Positions...)
	}
	if len(r.Scores) == 0 {
		r.Scores = nil
	} else if cap(r.Scores) > len(r.Scores) {
		r.Scores = append(make([]int, 0, len(r.Scores)), r.Scores...)
	}
}

// Check verifies the record's invariants for window length k.
func (r *Record) Check(k int) error {
	if r.Count < 1 {
		return &InvariantError{Reason: fmt.Sprintf("count %d < 1", r.Count)}
	}
	if len(r.Positions) != r.Count {
		return &InvariantError{Reason: fmt.Sprintf("%d positions for count %d", len(r.Positions), r.Count)}
	}
	if len(r.Scores) != r.Count-1 {
		return &InvariantError{Reason: fmt.Sprintf("%d scores for count %d", len(r.Scores), r.Count)}
	}
	zeros := 0
	for i, s := range r.Scores {
		want := r.Positions[i+1] - r.Positions[i] - k
		if s != want {
			return &InvariantError{Reason: fmt.Sprintf("score[%d]=%d, want %d", i, s, want)}
		}
		if s < 0 {
			return &InvariantError{Reason: fmt.Sprintf("score[%d]=%d is negative", i, s)}
		}
		if s == 0 {
			zeros++
		}
	}
	if zeros != r.Zeros {
		return &InvariantError{Reason: fmt.Sprintf("zeros=%d, counted %d", r.Zeros, zeros)}
	}
	return nil
}

// Table maps a k-mer to its record. All keys share the same length.
type Table map[string]*Record

// Keys returns the table's k-mers in lexical order.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Accepted is the total number of accepted occurrences across the table.
func (t Table) Accepted() int {
	n := 0
	for _, r := range t {
		n += r.Count
	}
	return n
}

// Range maps k to the table built for that k.
type Range map[int]Table

// Ks returns the window lengths present, ascending.
func (r Range) Ks() []int {
	ks := make([]int, 0, len(r))
	for k := range r {
		ks = append(ks, k)
	}
	sort.Ints(ks)
	return ks
}

// Capacity returns a pre-size hint for a table of k-mers: alphabet^k, capped
// at the number of windows. It never overflows.
func Capacity(alphabet, k, windows int) int {
	if windows <= 0 || k < 1 {
		return 0
	}
	if alphabet < 1 {
		return windows
	}
	c := 1
	for i := 0; i < k; i++ {
		if c > math.MaxInt/alphabet || c*alphabet >= windows {
			return windows
		}
		c *= alphabet
	}
	return c
}
