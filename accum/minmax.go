package accum

import "math"

// MinMax tracks the running minimum and maximum of a pushed value stream.
type MinMax struct {
	min, max float64
	n        int
}

// NewMinMax returns an empty MinMax accumulator.
func NewMinMax() *MinMax {
	return &MinMax{min: math.Inf(1), max: math.Inf(-1)}
}

// Push folds one more sample in. Complexity: O(1).
func (m *MinMax) Push(v float64) {
	if v < m.min {
		m.min = v
	}
	if v > m.max {
		m.max = v
	}
	m.n++
}

// Merge folds another MinMax's observations into m.
func (m *MinMax) Merge(o *MinMax) {
	if o.n == 0 {
		return
	}
	if o.min < m.min {
		m.min = o.min
	}
	if o.max > m.max {
		m.max = o.max
	}
	m.n += o.n
}

// N reports how many samples were pushed.
func (m *MinMax) N() int { return m.n }

// Min returns the running minimum, or NaN if nothing was pushed.
func (m *MinMax) Min() float64 {
	if m.n == 0 {
		return math.NaN()
	}
	return m.min
}

// Max returns the running maximum, or NaN if nothing was pushed.
func (m *MinMax) Max() float64 {
	if m.n == 0 {
		return math.NaN()
	}
	return m.max
}
