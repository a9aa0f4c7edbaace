package feature

import "github.com/katalvlaran/rmeasure/units"

// sizeFeature counts an object's pixels via the line-based evaluator pass:
// its scratch accumulates a running count as pixels stream by, independent
// of whatever shared per-object statistics the driver also accumulates.
type sizeFeature struct{}

// NewSize returns the built-in Size feature (pixel/voxel count).
func NewSize() Feature { return sizeFeature{} }

func (sizeFeature) Name() string           { return "Size" }
func (sizeFeature) Kind() Kind             { return LineBased }
func (sizeFeature) ValueNames() []string   { return []string{"value"} }
func (sizeFeature) NeedsGrey() bool        { return false }
func (sizeFeature) Dependencies() []string { return nil }

func (sizeFeature) NewScratch() Scratch { return &sizeScratch{} }

// Scale multiplies the raw pixel count by the calibrated pixel volume,
// converting a dimensionless count into a physical area/volume.
func (sizeFeature) Scale(pixelSize units.PixelSize, raw []float64) []float64 {
	vol := pixelSize.Volume()
	return []float64{raw[0] * vol.Magnitude}
}

// Units reports the calibrated pixel volume's unit (e.g. m² in 2-D, m³ in
// 3-D), matching what Scale actually produces.
func (sizeFeature) Units(pixelSize units.PixelSize) []units.Unit {
	return []units.Unit{pixelSize.Volume().Units}
}

type sizeScratch struct {
	n float64
}

func (s *sizeScratch) Push(coords []float64, grey float64, hasGrey bool) { s.n++ }
func (s *sizeScratch) Result() []float64                                 { return []float64{s.n} }

var _ LineFeature = sizeFeature{}
var _ Scalable = sizeFeature{}
