// internal/writers/writer.go
package writers

import (
	"errors"
	"fmt"
	"io"
	"syscall"

	"kmerscan/internal/output"
)

// Options selects the report format.
type Options struct {
	Format string // text | tsv | jsonl | json
	Sort   bool   // buffer everything and order sequences by ID
	Header bool   // header line for text/tsv
	RunID  string // stamped into json documents
}

// StartWriter spins up a writer goroutine. Send finished sequences on the
// returned channel, close it, then read the single result from the error
// channel. The result may arrive before the channel is closed when writing
// fails; the goroutine then discards whatever is still sent.
func StartWriter(out io.Writer, o Options, bufSize int) (chan<- output.Sequence, <-chan error) {
	if bufSize <= 0 {
		bufSize = 4
	}
	if o.Format == "jsonl" && !o.Sort {
		return startJSONL(out, bufSize)
	}

	in := make(chan output.Sequence, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch o.Format {
		case "json":
			err = output.WriteJSON(out, drain(in, true), o.RunID)

		case "jsonl":
			err = writeJSONL(out, drain(in, true))

		case "tsv":
			if o.Sort {
				err = output.WriteTSV(out, drain(in, true), o.Header)
			} else {
				err = output.StreamTSV(out, in, o.Header)
			}

		case "text":
			if o.Sort {
				for _, s := range drain(in, true) {
					if err = output.WriteText(out, s, o.Header); err != nil {
						break
					}
				}
			} else {
				for s := range in {
					if err = output.WriteText(out, s, o.Header); err != nil {
						break
					}
				}
			}

		default:
			err = fmt.Errorf("unsupported output %q", o.Format)
		}
		// report first so the producer can stop early, then keep it from blocking
		errCh <- err
		for range in {
		}
	}()

	return in, errCh
}

// drain collects everything from in, sorting by sequence ID when asked.
func drain(in <-chan output.Sequence, sorted bool) []output.Sequence {
	var buf []output.Sequence
	for s := range in {
		buf = append(buf, s)
	}
	if sorted {
		output.SortSequences(buf)
	}
	return buf
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
