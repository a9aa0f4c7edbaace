package accum

import "math"

// Variance is a single-pass Welford accumulator for mean and variance.
// Grounded on the spec's explicit correction (§9): use a Welford-style
// accumulator rather than a naive sum-of-squares ("sum3") estimator, which is
// numerically non-robust for large or shifted datasets.
type Variance struct {
	n    int
	mean float64
	m2   float64 // sum of squared deviations from the running mean
}

// NewVariance returns an empty Welford accumulator.
func NewVariance() *Variance { return &Variance{} }

// Push folds in one sample. Complexity: O(1).
func (v *Variance) Push(x float64) {
	v.n++
	delta := x - v.mean
	v.mean += delta / float64(v.n)
	delta2 := x - v.mean
	v.m2 += delta * delta2
}

// Merge combines another Variance accumulator's observations into v using
// Chan et al.'s parallel-variance combination formula.
func (v *Variance) Merge(o *Variance) {
	if o.n == 0 {
		return
	}
	if v.n == 0 {
		*v = *o
		return
	}
	n := v.n + o.n
	delta := o.mean - v.mean
	mean := v.mean + delta*float64(o.n)/float64(n)
	m2 := v.m2 + o.m2 + delta*delta*float64(v.n)*float64(o.n)/float64(n)
	v.n, v.mean, v.m2 = n, mean, m2
}

// N reports how many samples were pushed.
func (v *Variance) N() int { return v.n }

// Mean returns the running mean, or NaN if n == 0.
func (v *Variance) Mean() float64 {
	if v.n == 0 {
		return math.NaN()
	}
	return v.mean
}

// Variance returns the population variance (divide by n). Per spec §4.2,
// numeric degeneracies (n==0) resolve to NaN rather than raising.
func (v *Variance) Variance() float64 {
	if v.n == 0 {
		return math.NaN()
	}
	return v.m2 / float64(v.n)
}

// StdDev returns the population standard deviation.
func (v *Variance) StdDev() float64 {
	return math.Sqrt(v.Variance())
}
