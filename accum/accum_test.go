package accum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMax_EmptyIsNaN(t *testing.T) {
	m := NewMinMax()
	assert.True(t, math.IsNaN(m.Min()))
	assert.True(t, math.IsNaN(m.Max()))
}

func TestMinMax_Basic(t *testing.T) {
	m := NewMinMax()
	for _, v := range []float64{3, 1, 4, 1, 5} {
		m.Push(v)
	}
	assert.Equal(t, 1.0, m.Min())
	assert.Equal(t, 5.0, m.Max())
	assert.Equal(t, 5, m.N())
}

func TestMinMax_Merge(t *testing.T) {
	a, b := NewMinMax(), NewMinMax()
	a.Push(1)
	a.Push(5)
	b.Push(-3)
	b.Push(2)
	a.Merge(b)
	assert.Equal(t, -3.0, a.Min())
	assert.Equal(t, 5.0, a.Max())
}

func TestVariance_KnownSequence(t *testing.T) {
	v := NewVariance()
	for _, x := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		v.Push(x)
	}
	assert.InDelta(t, 5.0, v.Mean(), 1e-9)
	assert.InDelta(t, 4.0, v.Variance(), 1e-9)
}

func TestVariance_MergeMatchesSinglePass(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7}
	whole := NewVariance()
	for _, x := range data {
		whole.Push(x)
	}
	a, b := NewVariance(), NewVariance()
	for _, x := range data[:3] {
		a.Push(x)
	}
	for _, x := range data[3:] {
		b.Push(x)
	}
	a.Merge(b)
	assert.InDelta(t, whole.Mean(), a.Mean(), 1e-9)
	assert.InDelta(t, whole.Variance(), a.Variance(), 1e-9)
}

func TestStatistics_SymmetricDistributionHasZeroSkew(t *testing.T) {
	s := NewStatistics()
	for _, x := range []float64{-2, -1, 0, 1, 2} {
		s.Push(x)
	}
	assert.InDelta(t, 0.0, s.Mean(), 1e-9)
	assert.InDelta(t, 0.0, s.Skewness(), 1e-9)
}

func TestStatistics_NaNBelowMinimumN(t *testing.T) {
	s := NewStatistics()
	s.Push(1)
	assert.True(t, math.IsNaN(s.Skewness()))
	assert.True(t, math.IsNaN(s.ExcessKurtosis()))
}

func TestDirectionalStatistics_ConcentratedAtZero(t *testing.T) {
	d := NewDirectionalStatistics()
	for i := 0; i < 10; i++ {
		d.Push(0)
	}
	assert.InDelta(t, 0.0, d.Mean(), 1e-9)
	assert.InDelta(t, 0.0, d.Variance(), 1e-9)
}

func TestDirectionalStatistics_WrapAround(t *testing.T) {
	d := NewDirectionalStatistics()
	d.Push(math.Pi - 0.01)
	d.Push(-math.Pi + 0.01)
	// Mean direction should be near +/-pi, not 0.
	assert.True(t, math.Abs(d.Mean()) > math.Pi/2)
}

func TestMomentAccumulator_SquarePixelCentroidAndMu(t *testing.T) {
	acc := NewMomentAccumulator(2)
	// 2x2 block of unit-weight points centred at (0.5, 0.5).
	for _, p := range [][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		acc.Push(pos2(p), 1)
	}
	mean := acc.Mean()
	assert.InDelta(t, 0.5, mean[0], 1e-9)
	assert.InDelta(t, 0.5, mean[1], 1e-9)
	assert.Equal(t, 4.0, acc.Mass())

	mu := acc.MuPacked()
	assert.InDelta(t, 0.25, mu[0], 1e-9) // mu20
	assert.InDelta(t, 0.0, mu[1], 1e-9)  // mu11
	assert.InDelta(t, 0.25, mu[2], 1e-9) // mu02
}

func pos2(p [2]float64) []float64 { return []float64{p[0], p[1]} }
