// Package zipfit computes the trendline parameters of Zipf (power-law)
// distributions: the slope, y-intercept and R² of the least-squares fit of
// log10(count) against log10(rank or size).
//
// # Core Features
//
//   - Rank-frequency fits (ByRank): ranks synthesized internally, largest
//     count gets rank 1
//   - Size-frequency fits (BySize): caller-supplied keys, index-aligned
//   - Explicit degenerate regimes: one observation (slope 0, R² 0) vs
//     uniformly distributed counts (slope 0, R² 1)
//   - Typed validation errors, classified with errors.Is
//   - Histogram building from raw event streams (histogram package)
//   - Dataset loading with transparent Zstd/S2/LZ4 decompression
//     (dataset package)
//
// # Basic Usage
//
// Fitting observed counts directly:
//
//	import "github.com/zipflab/zipfit"
//
//	res, err := zipfit.ByRank([]float64{120, 60, 40, 30})
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("slope=%.2f r2=%.2f\n", res.Slope, res.R2)
//
// Fitting a raw event stream, counting occurrences first:
//
//	res, err := zipfit.RankEvents([]string{"a", "b", "a", "b", "a", "c"})
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the fit and
// histogram packages, covering the most common use cases. For fine-grained
// control (pre-paired observations, fit options), use the fit package
// directly.
package zipfit

import (
	"github.com/zipflab/zipfit/fit"
	"github.com/zipflab/zipfit/histogram"
)

// Result is the fitted trendline returned by every entry point.
type Result = fit.Result

// Observation pairs a position with an observed count; see fit.Fit.
type Observation = fit.Observation

// ByRank fits the rank-frequency distribution of counts; ranks are
// synthesized internally so the largest count gets rank 1.
//
// See fit.ByRank.
func ByRank(counts []float64, opts ...fit.Option) (Result, error) {
	return fit.ByRank(counts, opts...)
}

// BySize fits the size-frequency distribution of counts against the
// caller-supplied, index-aligned size keys.
//
// See fit.BySize.
func BySize(sizes []int, counts []float64, opts ...fit.Option) (Result, error) {
	return fit.BySize(sizes, counts, opts...)
}

// Fit runs the log-log regression over pre-paired observations.
//
// See fit.Fit.
func Fit(obs []Observation, opts ...fit.Option) (Result, error) {
	return fit.Fit(obs, opts...)
}

// RankEvents counts the occurrences of each distinct event and fits the
// rank-frequency distribution of those counts.
//
// This is the common end-to-end path for raw phenomena: a sequence such as
// ["a", "b", "a", "b", "a", "c"] becomes the counts {3, 2, 1}, which are
// then ranked and fitted.
func RankEvents(events []string, opts ...fit.Option) (Result, error) {
	counter := histogram.NewCounter()
	for _, event := range events {
		counter.Add(event)
	}

	return fit.ByRank(counter.Counts(), opts...)
}
