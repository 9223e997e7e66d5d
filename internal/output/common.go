package output

// TSVHeader is the canonical header row for TSV output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "sequence_id\tk\tkmer\tcount\tzeros\tpositions\tscores"

// TextColumns is the column header printed inside each text block.
const TextColumns = "k\tkmer\tcount\tzeros\tpositions\tscores"
