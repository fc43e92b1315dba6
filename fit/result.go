package fit

import "fmt"

// Observation pairs a position (a rank or caller-defined size key) with the
// count observed at that position.
//
// Carrying both values in one struct makes the index alignment between the
// two sequences structural instead of a caller obligation. Positions and
// counts must be strictly positive; Fit validates both.
type Observation struct {
	// Position is the rank (1 = largest) or size key of the observation.
	Position int
	// Count is the observed magnitude at this position.
	Count float64
}

// Result holds the fitted trendline of a Zipf distribution.
//
// Slope and YIntercept describe the least-squares line of log10(count)
// against log10(position); R2 is the coefficient of determination of that
// line, in [0, 1].
//
// The two degenerate regimes are encoded as fixed values: a single
// observation yields Slope 0 and R2 0, uniformly distributed counts yield
// Slope 0 and R2 1. See the package documentation.
type Result struct {
	// Slope is the regression coefficient of log10(count) on log10(position).
	Slope float64
	// R2 is the coefficient of determination of the fit, in [0, 1].
	R2 float64
	// YIntercept is the intercept of the fitted line in log-log space.
	YIntercept float64
}

// String returns a human-readable summary of the fit.
func (r Result) String() string {
	return fmt.Sprintf("Result{Slope: %.4f, R²: %.4f, YIntercept: %.4f}",
		r.Slope, r.R2, r.YIntercept)
}

// narrow rounds the result through single precision. Used by the
// WithSinglePrecision option for compatibility with the historical tooling,
// which stored fitted values as 32-bit floats.
func (r Result) narrow() Result {
	return Result{
		Slope:      float64(float32(r.Slope)),
		R2:         float64(float32(r.R2)),
		YIntercept: float64(float32(r.YIntercept)),
	}
}
