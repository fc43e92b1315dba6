// Package histogram builds count distributions from raw event streams, the
// input shape consumed by the fit package.
//
// Counter tallies occurrences of arbitrary string events (words, symbols,
// message types) and yields the counts for a rank-frequency fit. SizeCounter
// tallies occurrences of integer sizes and yields aligned (size, count)
// pairs for a size-frequency fit.
package histogram

import (
	"bufio"
	"fmt"
	"io"

	"github.com/zipflab/zipfit/internal/hash"
)

// Counter tallies occurrences of string events.
//
// Events are interned as 64-bit xxHash IDs, so counting a large corpus does
// not retain every distinct token string. Distinct events that collide on
// the same hash are merged into one bucket; with a 64-bit hash this is
// negligible for any realistic vocabulary.
//
// Counter is not safe for concurrent mutation.
type Counter struct {
	counts map[uint64]uint64
	total  uint64
}

// NewCounter creates an empty event counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[uint64]uint64)}
}

// Add records one occurrence of the given event.
func (c *Counter) Add(event string) {
	c.counts[hash.ID(event)]++
	c.total++
}

// AddTokens scans r for whitespace-separated tokens and records one
// occurrence of each.
//
// Returns the number of tokens consumed and any read error. Token counts
// recorded before a failed read are kept.
func (c *Counter) AddTokens(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	n := 0
	for scanner.Scan() {
		c.Add(scanner.Text())
		n++
	}
	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("scanning tokens: %w", err)
	}

	return n, nil
}

// Counts returns the occurrence count of every distinct event.
//
// The order is unspecified; a rank-frequency fit sorts the counts itself.
func (c *Counter) Counts() []float64 {
	counts := make([]float64, 0, len(c.counts))
	for _, v := range c.counts {
		counts = append(counts, float64(v))
	}

	return counts
}

// Len returns the number of distinct events observed.
func (c *Counter) Len() int {
	return len(c.counts)
}

// Total returns the total number of occurrences recorded.
func (c *Counter) Total() uint64 {
	return c.total
}
