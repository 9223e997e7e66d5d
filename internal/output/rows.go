// internal/output/rows.go
package output

import (
	"fmt"
	"strconv"
	"strings"

	"kmerscan/pkg/api"
)

// IntsCSV joins a as comma-separated decimals; "-" when empty.
func IntsCSV(a []int) string {
	if len(a) == 0 {
		return "-"
	}
	var b strings.Builder
	for i, v := range a {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// FormatRowTSV returns the TSV columns for r (no trailing newline).
func FormatRowTSV(r api.KmerRecordV1) string {
	return fmt.Sprintf("%s\t%d\t%s\t%d\t%d\t%s\t%s",
		r.SequenceID, r.K, r.Kmer, r.Count, r.Zeros,
		IntsCSV(r.Positions), IntsCSV(r.Scores),
	)
}

// formatRowText is FormatRowTSV without the sequence column.
func formatRowText(r api.KmerRecordV1) string {
	return fmt.Sprintf("%d\t%s\t%d\t%d\t%s\t%s",
		r.K, r.Kmer, r.Count, r.Zeros,
		IntsCSV(r.Positions), IntsCSV(r.Scores),
	)
}
