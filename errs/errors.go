// Package errs defines the sentinel errors shared across zipfit packages.
//
// All validation failures are reported as (or wrapped around) one of these
// sentinels, so callers can classify failures with errors.Is without parsing
// messages:
//
//	_, err := fit.BySize(sizes, counts)
//	if errors.Is(err, errs.ErrSizeMismatch) {
//	    // lengths differed; fix the input and retry
//	}
package errs

import "errors"

var (
	// ErrEmptyCounts indicates an empty counts sequence.
	ErrEmptyCounts = errors.New("counts must contain at least one element")

	// ErrEmptyRanks indicates an empty ranks/keys sequence.
	ErrEmptyRanks = errors.New("ranks/keys must contain at least one element")

	// ErrSizeMismatch indicates the ranks/keys and counts sequences have
	// different lengths. Wrapped errors report both lengths.
	ErrSizeMismatch = errors.New("ranks/keys and counts must have the same size")

	// ErrNonPositiveRank indicates a rank or key value that is zero or negative.
	ErrNonPositiveRank = errors.New("positions must be strictly positive")

	// ErrNonPositiveCount indicates a count value that is zero or negative.
	ErrNonPositiveCount = errors.New("counts must be strictly positive")
)
