// Package engine drives the k-mer extractor over a range of window lengths.
// It never imports app, report, cli, or pipeline; keep it domain-only.
//
// External outputs must not depend on the internal shape here; use pkg/api
// for stable wire types (JSON/JSONL v1).
package engine
