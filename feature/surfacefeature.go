package feature

import (
	"math"

	"github.com/katalvlaran/rmeasure/units"
)

// surfaceAreaFeature reports an object's surface area. Unlike every other
// image-based feature, its raw value is not derived from ObjectContext's
// streaming accumulators: a voxel's surface contribution depends on its
// neighbours' labels, which the single-pixel raster scan never exposes. The
// driver instead runs a dedicated whole-image precompute pass (package
// surface) before the image-based pass and stashes the result on
// ObjectContext via SetSurfaceArea. An object with HasSurfaceArea false
// (any image of dimensionality other than 3, or no such pass run) reports
// nan rather than a misleading zero.
type surfaceAreaFeature struct{}

// NewSurfaceArea returns the built-in SurfaceArea feature (3-D images
// only).
func NewSurfaceArea() Feature { return surfaceAreaFeature{} }

func (surfaceAreaFeature) Name() string           { return "SurfaceArea" }
func (surfaceAreaFeature) Kind() Kind             { return ImageBased }
func (surfaceAreaFeature) ValueNames() []string   { return []string{"value"} }
func (surfaceAreaFeature) NeedsGrey() bool        { return false }
func (surfaceAreaFeature) Dependencies() []string { return nil }

func (surfaceAreaFeature) Measure(obj *ObjectContext) []float64 {
	if !obj.HasSurfaceArea {
		return []float64{math.NaN()}
	}
	return []float64{obj.SurfaceArea}
}

// Scale converts the raw voxel-face-area tally to a physical area. A voxel
// face's area depends on which pair of axes it lies in, but the underlying
// LUT classification (package surface) does not track per-face axis
// identity; for an anisotropic pixel size this feature therefore reports
// the isotropic-equivalent physical area, Volume()^(2/3), rather than an
// axis-exact one.
func (surfaceAreaFeature) Scale(pixelSize units.PixelSize, raw []float64) []float64 {
	vol := pixelSize.Volume()
	faceArea := math.Pow(vol.Magnitude, 2.0/3.0)
	return []float64{raw[0] * faceArea}
}

// Units reports the isotropic-equivalent area unit (first axis's unit
// squared), matching the isotropic-equivalent magnitude Scale computes.
func (surfaceAreaFeature) Units(pixelSize units.PixelSize) []units.Unit {
	return []units.Unit{pixelSize[0].Units.Pow(2)}
}

var (
	_ ImageFeature = surfaceAreaFeature{}
	_ Scalable     = surfaceAreaFeature{}
)
