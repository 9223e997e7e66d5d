// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"kmerscan/internal/output"
)

// Reuse a 64 KiB buffered writer across JSONL writers to avoid per-writer mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// startJSONL streams one api.KmerRecordV1 per line as sequences arrive.
func startJSONL(out io.Writer, bufSize int) (chan<- output.Sequence, <-chan error) {
	in := make(chan output.Sequence, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		enc := json.NewEncoder(bw)
		var err error
	loop:
		for s := range in {
			for _, r := range output.ToAPIRecords(s) {
				if err = enc.Encode(r); err != nil {
					break loop
				}
			}
		}
		if err == nil {
			err = bw.Flush()
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		done <- err
		for range in {
		}
	}()

	return in, done
}

func writeJSONL(w io.Writer, list []output.Sequence) error {
	enc := json.NewEncoder(w)
	for _, s := range list {
		for _, r := range output.ToAPIRecords(s) {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
	}
	return nil
}
