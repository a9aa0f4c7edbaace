package measure

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/rmeasure/accum"
)

// Minimum returns the minimum value of featureName's scalar column.
func Minimum(m *Measurement, featureName string) (float64, error) {
	values, err := m.ScalarColumn(featureName)
	if err != nil {
		return math.NaN(), fmt.Errorf("Minimum(%q): %w", featureName, err)
	}
	mm := accum.NewMinMax()
	for _, v := range values {
		mm.Push(v)
	}
	return mm.Min(), nil
}

// Maximum returns the maximum value of featureName's scalar column.
func Maximum(m *Measurement, featureName string) (float64, error) {
	values, err := m.ScalarColumn(featureName)
	if err != nil {
		return math.NaN(), fmt.Errorf("Maximum(%q): %w", featureName, err)
	}
	mm := accum.NewMinMax()
	for _, v := range values {
		mm.Push(v)
	}
	return mm.Max(), nil
}

// MaximumAndMinimum returns both extrema in a single pass.
func MaximumAndMinimum(m *Measurement, featureName string) (max, min float64, err error) {
	values, err := m.ScalarColumn(featureName)
	if err != nil {
		return math.NaN(), math.NaN(), fmt.Errorf("MaximumAndMinimum(%q): %w", featureName, err)
	}
	mm := accum.NewMinMax()
	for _, v := range values {
		mm.Push(v)
	}
	return mm.Max(), mm.Min(), nil
}

// Mean returns the arithmetic mean of featureName's scalar column.
func Mean(m *Measurement, featureName string) (float64, error) {
	values, err := m.ScalarColumn(featureName)
	if err != nil {
		return math.NaN(), fmt.Errorf("Mean(%q): %w", featureName, err)
	}
	stats := accum.NewStatistics()
	for _, v := range values {
		stats.Push(v)
	}
	return stats.Mean(), nil
}

// SampleStatistics returns mean, standard deviation, skewness, and excess
// kurtosis of featureName's scalar column in one pass.
func SampleStatistics(m *Measurement, featureName string) (mean, stddev, skewness, kurtosis float64, err error) {
	values, err := m.ScalarColumn(featureName)
	if err != nil {
		return math.NaN(), math.NaN(), math.NaN(), math.NaN(), fmt.Errorf("SampleStatistics(%q): %w", featureName, err)
	}
	stats := accum.NewStatistics()
	for _, v := range values {
		stats.Push(v)
	}
	return stats.Mean(), stats.StdDev(), stats.Skewness(), stats.ExcessKurtosis(), nil
}

// Percentile returns the p-th percentile (0..100) of featureName's scalar
// column, using linear interpolation between closest ranks.
func Percentile(m *Measurement, featureName string, p float64) (float64, error) {
	values, err := m.ScalarColumn(featureName)
	if err != nil {
		return math.NaN(), fmt.Errorf("Percentile(%q): %w", featureName, err)
	}
	if len(values) == 0 {
		return math.NaN(), nil
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	if p <= 0 {
		return sorted[0], nil
	}
	if p >= 100 {
		return sorted[len(sorted)-1], nil
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo], nil
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac, nil
}

// ObjectMinimum returns the minimum of the single object id's values for
// featureName, and whether id was present.
func ObjectMinimum(m *Measurement, id int, featureName string) (float64, bool) {
	values, err := m.RowFeature(id, featureName)
	if err != nil || len(values) == 0 {
		return math.NaN(), false
	}
	mm := accum.NewMinMax()
	for _, v := range values {
		mm.Push(v)
	}
	return mm.Min(), true
}

// ObjectMaximum returns the maximum of the single object id's values for
// featureName, and whether id was present.
func ObjectMaximum(m *Measurement, id int, featureName string) (float64, bool) {
	values, err := m.RowFeature(id, featureName)
	if err != nil || len(values) == 0 {
		return math.NaN(), false
	}
	mm := accum.NewMinMax()
	for _, v := range values {
		mm.Push(v)
	}
	return mm.Max(), true
}
