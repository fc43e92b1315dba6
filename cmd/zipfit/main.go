package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/zipflab/zipfit/errs"
)

// Exit codes for different failure modes
const (
	ExitSuccess = 0 // Fit computed and printed
	ExitBadData = 1 // Input data failed validation
	ExitError   = 2 // Usage or runtime error
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps validation failures to ExitBadData so batch callers can
// separate "fix your data" from genuine runtime errors.
func exitCode(err error) int {
	for _, sentinel := range []error{
		errs.ErrEmptyCounts,
		errs.ErrEmptyRanks,
		errs.ErrSizeMismatch,
		errs.ErrNonPositiveRank,
		errs.ErrNonPositiveCount,
	} {
		if errors.Is(err, sentinel) {
			return ExitBadData
		}
	}

	return ExitError
}
