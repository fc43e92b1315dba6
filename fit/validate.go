package fit

import (
	"fmt"

	"github.com/zipflab/zipfit/errs"
)

// validate checks the invariants the regression engine assumes: at least one
// observation, every position strictly positive, every count strictly
// positive. Positions are checked before counts.
func validate(obs []Observation) error {
	if len(obs) == 0 {
		return errs.ErrEmptyCounts
	}

	for i, o := range obs {
		if o.Position <= 0 {
			return fmt.Errorf("%w: position %d at index %d", errs.ErrNonPositiveRank, o.Position, i)
		}
	}

	for i, o := range obs {
		if o.Count <= 0 {
			return fmt.Errorf("%w: count %g at index %d", errs.ErrNonPositiveCount, o.Count, i)
		}
	}

	return nil
}
