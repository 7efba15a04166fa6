package models

import (
	"time"
)

// CheckStatus represents the overall result of a check run
type CheckStatus string

const (
	// StatusClean indicates every file matched and none diverged
	StatusClean CheckStatus = "clean"
	// StatusMissing indicates some files had no local match but none diverged
	StatusMissing CheckStatus = "missing"
	// StatusDiffs indicates at least one file diverged from the proposal
	StatusDiffs CheckStatus = "diffs"
)

// ExitCode returns the appropriate process exit code for the status
func (s CheckStatus) ExitCode() int {
	switch s {
	case StatusClean:
		return 0
	case StatusMissing:
		return 1
	case StatusDiffs:
		return 2
	default:
		return 3
	}
}

// CheckReport aggregates the results of a single check run.
// It is built once per run, handed to a presenter, then discarded.
type CheckReport struct {
	// Run identity
	RunID           string
	Customer        string
	ProposalAddress string

	// Revision is the HEAD commit of the local checkout, empty when the
	// checkout is not a git repository
	Revision string

	// Timing
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// Total is the number of proposal files processed
	Total int

	// Missing holds the proposal files with no unique local match, in input order
	Missing []SourceCode

	// Diffs holds one entry per divergent file, in input order
	Diffs []Compared

	// Clean is the number of files that matched and were identical
	Clean int
}

// ComparedCount returns the number of files that had a local match
func (r *CheckReport) ComparedCount() int {
	return r.Total - len(r.Missing)
}

// Status derives the overall check status. Divergences dominate missing
// files, which dominate a clean run.
func (r *CheckReport) Status() CheckStatus {
	if len(r.Diffs) > 0 {
		return StatusDiffs
	}
	if len(r.Missing) > 0 {
		return StatusMissing
	}
	return StatusClean
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
