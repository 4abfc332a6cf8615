package model

import "fmt"

// FieldFailure records one per-track, per-category write that failed.
// Failures are scoped: they never abort the batch.
type FieldFailure struct {
	Path     string
	Category FieldCategory
	Reason   string
}

// Summary is the per-album outcome of an enrichment run.
type Summary struct {
	Album    string
	Written  int
	Skipped  int
	Failed   int
	Failures []FieldFailure
}

// AddFailure records a scoped failure and bumps the counter.
func (s *Summary) AddFailure(path string, cat FieldCategory, reason string) {
	s.Failed++
	s.Failures = append(s.Failures, FieldFailure{Path: path, Category: cat, Reason: reason})
}

// FullySucceeded reports whether every attempted write succeeded.
func (s *Summary) FullySucceeded() bool {
	return s.Failed == 0
}

// String renders the one-line outcome shown at the end of a run.
func (s *Summary) String() string {
	if s.Failed == 0 {
		return fmt.Sprintf("%s: %d written, %d skipped", s.Album, s.Written, s.Skipped)
	}
	return fmt.Sprintf("%s: %d written, %d skipped, %d failed", s.Album, s.Written, s.Skipped, s.Failed)
}
