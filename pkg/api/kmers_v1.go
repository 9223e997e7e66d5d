// pkg/api/kmers_v1.go
package api

// KmerRecordV1 is the stable JSON/JSONL schema for one k-mer of one sequence.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type KmerRecordV1 struct {
	SequenceID string `json:"sequence_id"`
	SourceFile string `json:"source_file,omitempty"`
	K          int    `json:"k"`
	Kmer       string `json:"kmer"`
	Count      int    `json:"count"`
	Zeros      int    `json:"zeros"`
	Positions  []int  `json:"positions"`
	Scores     []int  `json:"scores"` // len(positions)-1 gaps; [] when count is 1
}

// TableV1 is every k-mer found for one k, ordered by k-mer.
type TableV1 struct {
	K     int            `json:"k"`
	Kmers []KmerRecordV1 `json:"kmers"`
}

// SequenceV1 is the stable schema for a whole k range of one sequence.
type SequenceV1 struct {
	RunID      string    `json:"run_id,omitempty"`
	SequenceID string    `json:"sequence_id"`
	SourceFile string    `json:"source_file,omitempty"`
	Length     int       `json:"length"`
	Tables     []TableV1 `json:"tables"`
}
