package backend

import (
	"sync"
)

// Sample is one generated (x, y) pair.
type Sample struct {
	X, Y float64
}

// Series is a bounded window of samples ordered by X. Once full, each
// insertion evicts the oldest sample.
type Series struct {
	lock     sync.RWMutex
	xs, ys   []float64
	capacity int
}

// NewSeries returns a series retaining at most capacity samples. A
// capacity below one is treated as one.
func NewSeries(capacity int) *Series {
	capacity = max(capacity, 1)
	return &Series{
		xs:       make([]float64, 0, capacity),
		ys:       make([]float64, 0, capacity),
		capacity: capacity,
	}
}

// Insert appends a sample to the series. Samples whose X does not advance
// past the newest sample are rejected and the method returns false.
// Otherwise, the method returns true.
func (s *Series) Insert(sample Sample) (inserted bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if n := len(s.xs); n > 0 && !(sample.X > s.xs[n-1]) {
		return false
	}
	if len(s.xs) == s.capacity {
		s.xs = s.xs[:copy(s.xs, s.xs[1:])]
		s.ys = s.ys[:copy(s.ys, s.ys[1:])]
	}
	s.xs = append(s.xs, sample.X)
	s.ys = append(s.ys, sample.Y)
	return true
}

// Len returns the number of retained samples.
func (s *Series) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return len(s.xs)
}

// Last returns the newest sample. The ok return is false if the series is
// empty.
func (s *Series) Last() (sample Sample, ok bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	n := len(s.xs)
	if n < 1 {
		return Sample{}, false
	}
	return Sample{X: s.xs[n-1], Y: s.ys[n-1]}, true
}

// Snapshot returns copies of the retained x and y values.
func (s *Series) Snapshot() (xs, ys []float64) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	xs = append([]float64(nil), s.xs...)
	ys = append([]float64(nil), s.ys...)
	return xs, ys
}

// Reset drops every retained sample.
func (s *Series) Reset() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.xs = s.xs[:0]
	s.ys = s.ys[:0]
}
