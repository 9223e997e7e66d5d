package kmer

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput is wrapped by MalformedError.
	ErrMalformedInput = errors.New("malformed sequence input")
	// ErrInvalidK reports a window length below 1.
	ErrInvalidK = errors.New("k must be >= 1")
)

// MalformedError reports a window whose bytes are not valid text. It aborts
// the whole scan of the sequence.
type MalformedError struct {
	K   int
	Pos int
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("k=%d: window at %d is not valid UTF-8", e.K, e.Pos)
}

func (e *MalformedError) Unwrap() error { return ErrMalformedInput }

// InvariantError describes a Record that breaks its bookkeeping rules.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string { return "record invariant: " + e.Reason }
