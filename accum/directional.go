package accum

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// DirectionalStatistics accumulates circular (angular) statistics via a
// running unit-vector sum, as specified (§4.6): each pushed angle
// contributes (cos θ, sin θ) to a running total, avoiding the wrap-around
// discontinuity a linear mean would hit at the ±π boundary.
type DirectionalStatistics struct {
	n              int
	sumCos, sumSin float64
}

// NewDirectionalStatistics returns an empty accumulator.
func NewDirectionalStatistics() *DirectionalStatistics { return &DirectionalStatistics{} }

// Push folds in one angle, in radians.
func (d *DirectionalStatistics) Push(theta float64) {
	d.n++
	d.sumCos += math.Cos(theta)
	d.sumSin += math.Sin(theta)
}

// N reports the number of pushed samples.
func (d *DirectionalStatistics) N() int { return d.n }

// resultantLength is the mean resultant vector length R in [0,1]: 1 for a
// perfectly concentrated distribution, 0 for a uniform spread.
func (d *DirectionalStatistics) resultantLength() float64 {
	if d.n == 0 {
		return math.NaN()
	}
	n := float64(d.n)
	return math.Hypot(d.sumCos, d.sumSin) / n
}

// Mean returns the circular mean direction in radians, in (-π, π].
func (d *DirectionalStatistics) Mean() float64 {
	if d.n == 0 {
		return math.NaN()
	}
	return math.Atan2(d.sumSin, d.sumCos)
}

// Variance returns the circular variance 1-R (0 = concentrated, 1 = uniform).
func (d *DirectionalStatistics) Variance() float64 {
	r := d.resultantLength()
	if math.IsNaN(r) {
		return math.NaN()
	}
	return 1 - r
}

// StdDev returns the circular standard deviation sqrt(-2 ln R).
func (d *DirectionalStatistics) StdDev() float64 {
	r := d.resultantLength()
	if math.IsNaN(r) || r <= 0 {
		return math.NaN()
	}
	return math.Sqrt(-2 * math.Log(r))
}

// CircularMeanOfSamples is a non-streaming convenience wrapper around
// gonum's stat.CircularMean for callers holding a full angle slice already
// (tests, offline recomputation) rather than a pixel-by-pixel stream.
func CircularMeanOfSamples(angles, weights []float64) float64 {
	return stat.CircularMean(angles, weights)
}
