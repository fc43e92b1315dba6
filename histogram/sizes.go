package histogram

import "slices"

// SizeCounter tallies occurrences of integer sizes, preserving the size
// value as the key of each bucket.
//
// SizeCounter is not safe for concurrent mutation.
type SizeCounter struct {
	counts map[int]uint64
}

// NewSizeCounter creates an empty size counter.
func NewSizeCounter() *SizeCounter {
	return &SizeCounter{counts: make(map[int]uint64)}
}

// Add records one occurrence of the given size.
func (s *SizeCounter) Add(size int) {
	s.counts[size]++
}

// Pairs returns the distinct sizes and their occurrence counts,
// index-aligned and ordered by ascending size for deterministic output.
func (s *SizeCounter) Pairs() (sizes []int, counts []float64) {
	sizes = make([]int, 0, len(s.counts))
	for size := range s.counts {
		sizes = append(sizes, size)
	}
	slices.Sort(sizes)

	counts = make([]float64, len(sizes))
	for i, size := range sizes {
		counts[i] = float64(s.counts[size])
	}

	return sizes, counts
}

// Len returns the number of distinct sizes observed.
func (s *SizeCounter) Len() int {
	return len(s.counts)
}
