package measure

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rmeasure/rimage"
)

// ObjectToMeasurement maps featureName's per-object scalar column back
// through label, writing into out a pixel value equal to the measured
// feature value of the object covering that pixel (a lookup-table
// substitution). Pixels whose label is zero or not present in m are left
// at nan.
func ObjectToMeasurement(label rimage.Image, out *rimage.Dense, m *Measurement, featureName string) error {
	values, err := m.ScalarColumn(featureName)
	if err != nil {
		return fmt.Errorf("ObjectToMeasurement(%q): %w", featureName, err)
	}
	lut := make(map[int]float64, len(values))
	for i, id := range m.objectIDs {
		lut[id] = values[i]
	}

	sizes := label.Sizes()
	coords := make([]int, len(sizes))
	total := 1
	for _, s := range sizes {
		total *= s
	}
	for linear := 0; linear < total; linear++ {
		rem := linear
		for d := len(sizes) - 1; d >= 0; d-- {
			coords[d] = rem % sizes[d]
			rem /= sizes[d]
		}
		px, err := label.At(coords)
		if err != nil {
			return err
		}
		v := math.NaN()
		if len(px) > 0 {
			if mapped, ok := lut[int(px[0])]; ok {
				v = mapped
			}
		}
		if err := out.Set(coords, []float64{v}); err != nil {
			return err
		}
	}
	return nil
}
