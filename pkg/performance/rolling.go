package performance

import "time"

// RollingAverage maintains a rolling average of durations over a fixed window
type RollingAverage struct {
	samples []time.Duration
	sum     time.Duration
	index   int
	filled  bool
}

// NewRollingAverage creates a rolling average tracker with specified window size
func NewRollingAverage(windowSize int) *RollingAverage {
	if windowSize < 1 {
		windowSize = 1
	}
	return &RollingAverage{
		samples: make([]time.Duration, windowSize),
	}
}

// Add records a new sample, evicting the oldest once the window is full
func (r *RollingAverage) Add(d time.Duration) {
	if r.filled {
		r.sum -= r.samples[r.index]
	}

	r.samples[r.index] = d
	r.sum += d

	r.index++
	if r.index >= len(r.samples) {
		r.index = 0
		r.filled = true
	}
}

// Average returns the current rolling average, zero with no samples
func (r *RollingAverage) Average() time.Duration {
	count := r.Count()
	if count == 0 {
		return 0
	}
	return r.sum / time.Duration(count)
}

// Count returns the number of samples currently tracked
func (r *RollingAverage) Count() int {
	if r.filled {
		return len(r.samples)
	}
	return r.index
}

// Reset clears all samples
func (r *RollingAverage) Reset() {
	r.sum = 0
	r.index = 0
	r.filled = false
	clear(r.samples)
}
