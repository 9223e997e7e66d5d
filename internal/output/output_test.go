package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kmerscan/internal/kmer"
	"kmerscan/pkg/api"
)

func sample() Sequence {
	return Sequence{
		ID:         "seq1",
		SourceFile: "in.fa",
		Length:     5,
		Range: kmer.Range{
			3: kmer.Table{
				"CGT": {Count: 1, Positions: []int{1}},
				"ACG": {Count: 1, Positions: []int{0}},
			},
			2: kmer.Table{
				"AC": {Count: 2, Positions: []int{0, 3}, Scores: []int{1}},
				"CG": {Count: 1, Positions: []int{1}},
			},
		},
	}
}

func TestToAPIRecords_Ordered(t *testing.T) {
	recs := ToAPIRecords(sample())
	require.Len(t, recs, 4)
	var keys []string
	for _, r := range recs {
		keys = append(keys, r.Kmer)
	}
	assert.Equal(t, []string{"AC", "CG", "ACG", "CGT"}, keys)
	assert.Equal(t, api.KmerRecordV1{
		SequenceID: "seq1", SourceFile: "in.fa", K: 2, Kmer: "AC",
		Count: 2, Positions: []int{0, 3}, Scores: []int{1},
	}, recs[0])
	assert.NotNil(t, recs[1].Scores)
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, []Sequence{sample()}, true))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, TSVHeader, lines[0])
	assert.Equal(t, "seq1\t2\tAC\t2\t0\t0,3\t1", lines[1])
	assert.Equal(t, "seq1\t2\tCG\t1\t0\t1\t-", lines[2])
}

func TestStreamTSV_NoHeader(t *testing.T) {
	in := make(chan Sequence, 1)
	in <- sample()
	close(in)
	var buf bytes.Buffer
	require.NoError(t, StreamTSV(&buf, in, false))
	assert.False(t, strings.HasPrefix(buf.String(), "sequence_id"))
	assert.Equal(t, 4, strings.Count(buf.String(), "\n"))
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sample(), true))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# seq1 length=5 source=in.fa\n"))
	assert.Contains(t, out, "kmer")
	assert.Contains(t, out, "0,3")
	assert.NotContains(t, out, "\t")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, []Sequence{sample()}, "run-1"))
	var got []api.SequenceV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "run-1", got[0].RunID)
	require.Len(t, got[0].Tables, 2)
	assert.Equal(t, 2, got[0].Tables[0].K)
	assert.Equal(t, 3, got[0].Tables[1].K)
}

func TestWriteJSON_EmptyRange(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, []Sequence{{ID: "n", Length: 0}}, ""))
	assert.Contains(t, buf.String(), `"tables": []`)
}

func TestSortSequences(t *testing.T) {
	list := []Sequence{{ID: "b"}, {ID: "a", SourceFile: "2"}, {ID: "a", SourceFile: "1"}}
	SortSequences(list)
	assert.Equal(t, []Sequence{{ID: "a", SourceFile: "1"}, {ID: "a", SourceFile: "2"}, {ID: "b"}}, list)
}

func TestIntsCSV(t *testing.T) {
	assert.Equal(t, "-", IntsCSV(nil))
	assert.Equal(t, "1,22,333", IntsCSV([]int{1, 22, 333}))
}
