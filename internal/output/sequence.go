// internal/output/sequence.go
package output

import (
	"sort"

	"kmerscan/internal/kmer"
	"kmerscan/pkg/api"
)

// Sequence is one finished k range ready for reporting.
type Sequence struct {
	ID         string
	SourceFile string
	Length     int
	Range      kmer.Range
}

// ToAPIRecords flattens s into wire records ordered by k, then k-mer.
func ToAPIRecords(s Sequence) []api.KmerRecordV1 {
	var out []api.KmerRecordV1
	for _, k := range s.Range.Ks() {
		out = append(out, tableRecords(s, k)...)
	}
	return out
}

// ToAPISequence converts s to the nested wire schema.
func ToAPISequence(s Sequence, runID string) api.SequenceV1 {
	v := api.SequenceV1{
		RunID:      runID,
		SequenceID: s.ID,
		SourceFile: s.SourceFile,
		Length:     s.Length,
		Tables:     []api.TableV1{},
	}
	for _, k := range s.Range.Ks() {
		v.Tables = append(v.Tables, api.TableV1{K: k, Kmers: tableRecords(s, k)})
	}
	return v
}

func tableRecords(s Sequence, k int) []api.KmerRecordV1 {
	tab := s.Range[k]
	out := make([]api.KmerRecordV1, 0, len(tab))
	for _, key := range tab.Keys() {
		r := tab[key]
		out = append(out, api.KmerRecordV1{
			SequenceID: s.ID,
			SourceFile: s.SourceFile,
			K:          k,
			Kmer:       key,
			Count:      r.Count,
			Zeros:      r.Zeros,
			Positions:  append([]int{}, r.Positions...),
			Scores:     append([]int{}, r.Scores...),
		})
	}
	return out
}

// SortSequences orders by sequence ID, then source file.
func SortSequences(list []Sequence) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].ID != list[j].ID {
			return list[i].ID < list[j].ID
		}
		return list[i].SourceFile < list[j].SourceFile
	})
}
