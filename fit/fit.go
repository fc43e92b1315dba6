package fit

import (
	"fmt"
	"slices"

	"github.com/zipflab/zipfit/errs"
	"github.com/zipflab/zipfit/internal/options"
)

// ByRank fits the rank-frequency distribution of the given counts.
//
// The counts may arrive in any order: a working copy is sorted ascending and
// paired with synthetic ranks so that the largest count receives rank 1 and
// the smallest receives rank len(counts). The caller's slice is never
// modified.
//
// Parameters:
//   - counts: Observed magnitudes, strictly positive, length >= 1
//   - opts: Optional configuration (see WithSinglePrecision)
//
// Returns:
//   - Result: Fitted slope, R² and y-intercept
//   - error: A typed validation error from the errs package
//
// A single count is valid input and yields the single-observation regime
// (slope 0, R² 0).
func ByRank(counts []float64, opts ...Option) (Result, error) {
	if len(counts) == 0 {
		return Result{}, errs.ErrEmptyCounts
	}

	sorted := slices.Clone(counts)
	slices.Sort(sorted)

	obs := make([]Observation, len(sorted))
	for i, c := range sorted {
		// Ascending counts paired with descending ranks: the i-th smallest
		// count gets rank len-i, so the largest ends up with rank 1.
		obs[i] = Observation{Position: len(sorted) - i, Count: c}
	}

	return Fit(obs, opts...)
}

// BySize fits the size-frequency distribution of the given counts against
// caller-supplied keys.
//
// sizes[i] is the key of counts[i]; no sorting or rank synthesis is
// performed. Duplicate keys are accepted and fed to the regression as-is.
//
// Parameters:
//   - sizes: Size keys, strictly positive, index-aligned with counts
//   - counts: Observed magnitudes, strictly positive
//   - opts: Optional configuration (see WithSinglePrecision)
//
// Returns:
//   - Result: Fitted slope, R² and y-intercept
//   - error: A typed validation error from the errs package
func BySize(sizes []int, counts []float64, opts ...Option) (Result, error) {
	if len(counts) == 0 {
		return Result{}, errs.ErrEmptyCounts
	}
	if len(sizes) == 0 {
		return Result{}, errs.ErrEmptyRanks
	}
	if len(sizes) != len(counts) {
		return Result{}, fmt.Errorf("%w: %d ranks/keys vs %d counts",
			errs.ErrSizeMismatch, len(sizes), len(counts))
	}

	obs := make([]Observation, len(sizes))
	for i := range sizes {
		obs[i] = Observation{Position: sizes[i], Count: counts[i]}
	}

	return Fit(obs, opts...)
}

// Fit runs the log-log regression over a sequence of observations.
//
// This is the configurable entry point behind ByRank and BySize; call it
// directly when the observations are already paired. The input is validated
// (non-empty, strictly positive element-wise) and then handed to the
// regression engine, which has no failure mode of its own: divide-by-zero
// hazards are guarded deterministically and never produce NaN or Inf.
//
// Fit is a pure function. Identical input always produces a bit-identical
// Result, and concurrent calls need no coordination.
func Fit(obs []Observation, opts ...Option) (Result, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return Result{}, err
	}

	if err := validate(obs); err != nil {
		return Result{}, err
	}

	res := solve(obs)
	if cfg.SinglePrecision {
		res = res.narrow()
	}

	return res, nil
}
