package fit

import "math"

// solve computes the least-squares trendline of log10(count) against
// log10(position). The input is assumed validated: length >= 1, every
// position and count strictly positive.
//
// The standard regression sums are accumulated in float64 for all
// observations, including the degenerate regimes, so the y-intercept is
// always the mean of log10(count) corrected by the established slope. For a
// single observation that makes the y-intercept log10(count) rather than an
// arbitrary zero.
func solve(obs []Observation) Result {
	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for _, o := range obs {
		x := math.Log10(float64(o.Position))
		y := math.Log10(o.Count)

		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
		sumY2 += y * y
	}

	n := float64(len(obs))

	var slope, r2 float64
	switch {
	case len(obs) == 1:
		// Monotonous phenomenon: one point cannot determine a line.
		// slope = 0 with R² = 0 signals "undefined" rather than a fit.

	case uniformCounts(obs):
		// Uniformly distributed counts: a horizontal line in log-log space,
		// which the constant fits perfectly. R² = 1 distinguishes this from
		// the single-observation regime.
		r2 = 1

	default:
		if denom := n*sumX2 - sumX*sumX; denom != 0 {
			slope = (n*sumXY - sumX*sumY) / denom
		}
		// denom == 0 only when all positions are equal; slope stays 0.

		if denom := math.Sqrt((n*sumX2 - sumX*sumX) * (n*sumY2 - sumY*sumY)); denom != 0 {
			r := (n*sumXY - sumX*sumY) / denom
			r2 = r * r
		}
	}

	return Result{
		Slope:      slope,
		R2:         r2,
		YIntercept: (sumY - slope*sumX) / n,
	}
}

// uniformCounts reports whether every count is exactly equal, comparing
// consecutive elements and short-circuiting on the first inequality.
func uniformCounts(obs []Observation) bool {
	for i := 0; i < len(obs)-1; i++ {
		if obs[i].Count != obs[i+1].Count {
			return false
		}
	}

	return true
}
