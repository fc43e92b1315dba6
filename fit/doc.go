// Package fit computes the trendline parameters of a Zipf (power-law)
// distribution through least-squares regression in log-log space.
//
// Given a set of strictly positive counts keyed by rank or size, the package
// reports the slope and y-intercept of the best-fit line of log10(count)
// against log10(position), together with the coefficient of determination
// (R²) of the fit.
//
// # Entry Points
//
// Two adapters cover the common input shapes:
//
//   - ByRank: counts in any order; ranks are synthesized internally so that
//     the largest count receives rank 1.
//   - BySize: caller supplies the keys, index-aligned with the counts; no
//     sorting or transformation is performed.
//
// Both delegate to Fit, which operates on a single sequence of
// (position, count) observations and can be called directly.
//
// # Degenerate Regimes
//
// Two input shapes cannot be fitted by the general formula and are reported
// with fixed values instead:
//
//   - A single observation (a monotonous phenomenon): slope = 0, R² = 0.
//     One point cannot determine a line.
//   - Uniformly distributed counts (every count exactly equal): slope = 0,
//     R² = 1. The log-log relationship is a horizontal line, a perfect fit.
//
// The distinction lets callers separate "insufficient data" from "no rank
// effect". The remaining divide-by-zero hazards (for example, all positions
// equal) are guarded internally and never surface as errors or NaN/Inf.
//
// # Validation
//
// Inputs are validated before any arithmetic runs: sequences must be
// non-empty, equal in length, and strictly positive element-wise. Violations
// are returned as typed errors from the errs package; no partial result is
// produced.
//
// # Precision
//
// All accumulation and results use float64. The historical tooling this
// package descends from narrowed results to single precision; callers that
// need bit-compatibility with it can opt in via WithSinglePrecision.
//
// # Example
//
//	res, err := fit.ByRank([]float64{120, 60, 40, 30})
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("slope=%.2f r2=%.2f\n", res.Slope, res.R2)
package fit
