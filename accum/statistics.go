package accum

import "math"

// Statistics is a single-pass accumulator for mean, standard deviation,
// skewness, and excess kurtosis, using Terriberry's online extension of
// Welford's algorithm to third and fourth central moments. Requires n>=1 for
// mean/stddev; skewness/kurtosis degrade to NaN below the sample counts they
// need (n>=2 and n>=3 respectively) rather than dividing by zero.
type Statistics struct {
	n          int
	mean       float64
	m2, m3, m4 float64
}

// NewStatistics returns an empty Statistics accumulator.
func NewStatistics() *Statistics { return &Statistics{} }

// Push folds in one sample. Complexity: O(1).
func (s *Statistics) Push(x float64) {
	n1 := float64(s.n)
	s.n++
	n := float64(s.n)
	delta := x - s.mean
	deltaN := delta / n
	deltaN2 := deltaN * deltaN
	term1 := delta * deltaN * n1

	s.mean += deltaN
	s.m4 += term1*deltaN2*(n*n-3*n+3) + 6*deltaN2*s.m2 - 4*deltaN*s.m3
	s.m3 += term1*deltaN*(n-2) - 3*deltaN*s.m2
	s.m2 += term1
}

// N reports the number of pushed samples.
func (s *Statistics) N() int { return s.n }

// Mean returns the running mean (NaN if n==0).
func (s *Statistics) Mean() float64 {
	if s.n == 0 {
		return math.NaN()
	}
	return s.mean
}

// Variance returns the population variance (NaN if n==0).
func (s *Statistics) Variance() float64 {
	if s.n == 0 {
		return math.NaN()
	}
	return s.m2 / float64(s.n)
}

// StdDev returns the population standard deviation.
func (s *Statistics) StdDev() float64 { return math.Sqrt(s.Variance()) }

// Skewness returns the (biased) sample skewness, NaN below n==2 or when the
// variance is zero (a constant stream has no meaningful skew).
func (s *Statistics) Skewness() float64 {
	if s.n < 2 {
		return math.NaN()
	}
	n := float64(s.n)
	if s.m2 == 0 {
		return math.NaN()
	}
	return math.Sqrt(n) * s.m3 / math.Pow(s.m2, 1.5)
}

// ExcessKurtosis returns the (biased) sample excess kurtosis (kurtosis - 3),
// NaN below n==3 or when the variance is zero.
func (s *Statistics) ExcessKurtosis() float64 {
	if s.n < 3 {
		return math.NaN()
	}
	n := float64(s.n)
	if s.m2 == 0 {
		return math.NaN()
	}
	return n*s.m4/(s.m2*s.m2) - 3.0
}
