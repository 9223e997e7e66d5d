// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteTSV writes one row per k-mer. The header row is printed when header
// is true.
func WriteTSV(w io.Writer, list []Sequence, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, s := range list {
		if err := writeTSVRows(w, s); err != nil {
			return err
		}
	}
	return nil
}

// StreamTSV writes rows as sequences arrive on in.
func StreamTSV(w io.Writer, in <-chan Sequence, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for s := range in {
		if err := writeTSVRows(w, s); err != nil {
			return err
		}
	}
	return nil
}

func writeTSVRows(w io.Writer, s Sequence) error {
	for _, r := range ToAPIRecords(s) {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}

// WriteText writes a column-aligned block per sequence:
//
//	# seq1 length=8 source=in.fa
//	k  kmer  count  zeros  positions  scores
//	2  AC    2      1      0,2        0
func WriteText(w io.Writer, s Sequence, header bool) error {
	title := fmt.Sprintf("# %s length=%d", s.ID, s.Length)
	if s.SourceFile != "" {
		title += " source=" + s.SourceFile
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if header {
		if _, err := fmt.Fprintln(tw, TextColumns); err != nil {
			return err
		}
	}
	for _, r := range ToAPIRecords(s) {
		if _, err := fmt.Fprintln(tw, formatRowText(r)); err != nil {
			return err
		}
	}
	return tw.Flush()
}
