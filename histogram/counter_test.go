package histogram

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zipflab/zipfit/fit"
)

func TestCounterAdd(t *testing.T) {
	c := NewCounter()
	for _, event := range []string{"a", "b", "a", "c", "a", "b"} {
		c.Add(event)
	}

	require.Equal(t, 3, c.Len())
	require.Equal(t, uint64(6), c.Total())

	counts := c.Counts()
	slices.Sort(counts)
	require.Equal(t, []float64{1, 2, 3}, counts)
}

func TestCounterAddTokens(t *testing.T) {
	c := NewCounter()

	n, err := c.AddTokens(strings.NewReader("the quick fox\nthe lazy dog the\n"))
	require.NoError(t, err)
	require.Equal(t, 7, n)
	require.Equal(t, 5, c.Len())
	require.Equal(t, uint64(7), c.Total())

	counts := c.Counts()
	slices.Sort(counts)
	require.Equal(t, []float64{1, 1, 1, 1, 3}, counts)
}

func TestCounterEmpty(t *testing.T) {
	c := NewCounter()
	require.Zero(t, c.Len())
	require.Zero(t, c.Total())
	require.Empty(t, c.Counts())
}

func TestSizeCounterPairs(t *testing.T) {
	s := NewSizeCounter()
	for _, size := range []int{3, 1, 1, 2, 3, 3} {
		s.Add(size)
	}

	sizes, counts := s.Pairs()
	require.Equal(t, []int{1, 2, 3}, sizes)
	require.Equal(t, []float64{2, 1, 3}, counts)
	require.Equal(t, 3, s.Len())
}

func TestCounterFeedsRankFit(t *testing.T) {
	// The sequence [1, 2, 2, 3, 3, 3, 3] has occurrence counts {1, 2, 4},
	// a roughly zipfian phenomenon: the fit slope must come out negative.
	c := NewCounter()
	for _, event := range []string{"1", "2", "2", "3", "3", "3", "3"} {
		c.Add(event)
	}

	res, err := fit.ByRank(c.Counts())
	require.NoError(t, err)
	require.Less(t, res.Slope, 0.0)
	require.Greater(t, res.R2, 0.9)

	// Order of Counts() is unspecified, but the rank fit is insensitive
	// to it: the result matches fitting the bare counts directly.
	want, err := fit.ByRank([]float64{1, 2, 4})
	require.NoError(t, err)
	require.Equal(t, want, res)
}

func TestSizeCounterFeedsSizeFit(t *testing.T) {
	s := NewSizeCounter()
	for _, size := range []int{1, 2, 2, 3, 3, 3, 3} {
		s.Add(size)
	}

	sizes, counts := s.Pairs()
	res, err := fit.BySize(sizes, counts)
	require.NoError(t, err)
	require.Greater(t, res.Slope, 0.0)
}
