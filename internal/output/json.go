// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"kmerscan/pkg/api"
)

// WriteJSON writes a single JSON array of v1 sequences (pretty-indented).
func WriteJSON(w io.Writer, list []Sequence, runID string) error {
	docs := make([]api.SequenceV1, 0, len(list))
	for _, s := range list {
		docs = append(docs, ToAPISequence(s, runID))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(docs)
}
