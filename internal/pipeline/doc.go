// Package pipeline streams FASTA records through a Scanner, one record at a
// time in input order, and calls a visit callback with each finished range.
//
// The only contract to implement is Scanner (ScanRange).
// This keeps the pipeline swappable and testable.
package pipeline
