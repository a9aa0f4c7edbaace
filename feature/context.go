package feature

import (
	"math"

	"github.com/katalvlaran/rmeasure/accum"
	"github.com/katalvlaran/rmeasure/chaincode"
	"github.com/katalvlaran/rmeasure/geom"
	"github.com/katalvlaran/rmeasure/units"
)

// ObjectContext accumulates everything the evaluator passes build for a
// single object, in the order the passes run: line-based accumulation
// first, then geometry derived from the chain code only if some registered
// feature needs it.
type ObjectContext struct {
	ID        int
	Dim       int
	PixelSize units.PixelSize
	HasGrey   bool

	PixelCount int
	Binary     *accum.MomentAccumulator
	Grey       *accum.MomentAccumulator
	GreyStats  *accum.Statistics
	Max        *accum.PositionalExtremum
	Min        *accum.PositionalExtremum
	BBoxMin    []float64
	BBoxMax    []float64

	// Pixels holds every object pixel's coordinates, in scan order. Backs
	// DirectionalStatistics, which needs the binary centroid (only known
	// once the line pass completes) before it can compute each pixel's
	// angle from it — a running accumulator can't do that in one pass.
	Pixels [][]float64

	ChainCode  *chaincode.ChainCode
	Polygon    *geom.Polygon
	ConvexHull *geom.ConvexHull

	// SurfaceArea holds the voxel-face-area tally computed for a 3-D object
	// by the surface-area precompute pass, before the image-based pass runs.
	// HasSurfaceArea is false for any image of dimensionality other than 3,
	// or when no surface-area feature was requested.
	SurfaceArea    float64
	HasSurfaceArea bool

	// values holds every feature's written output for this object, keyed
	// by feature name, in declaration order of the values within a feature.
	values map[string][]float64
}

// NewObjectContext returns an empty per-object accumulation context.
func NewObjectContext(id, dim int, pixelSize units.PixelSize, hasGrey bool) *ObjectContext {
	return &ObjectContext{
		ID:        id,
		Dim:       dim,
		PixelSize: pixelSize,
		HasGrey:   hasGrey,
		Binary:    accum.NewMomentAccumulator(dim),
		Max:       accum.NewMaxPositional(),
		Min:       accum.NewMinPositional(),
		BBoxMin:   fillInf(dim, 1),
		BBoxMax:   fillInf(dim, -1),
		values:    make(map[string][]float64),
	}
}

func fillInf(n int, sign int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Inf(sign)
	}
	return out
}

// PushPixel folds one object pixel into the shared accumulators, during the
// line-based pass.
func (o *ObjectContext) PushPixel(coords []float64, grey float64, hasGrey bool) {
	o.PixelCount++
	o.Binary.Push(coords, 1)
	o.Pixels = append(o.Pixels, append([]float64(nil), coords...))
	for i, c := range coords {
		if c < o.BBoxMin[i] {
			o.BBoxMin[i] = c
		}
		if c > o.BBoxMax[i] {
			o.BBoxMax[i] = c
		}
	}
	if hasGrey {
		if o.Grey == nil {
			o.Grey = accum.NewMomentAccumulator(o.Dim)
			o.GreyStats = accum.NewStatistics()
		}
		o.Grey.Push(coords, grey)
		o.GreyStats.Push(grey)
		o.Max.Push(coords, grey)
		o.Min.Push(coords, grey)
	}
}

// SetSurfaceArea records the voxel-face-area tally for a 3-D object, ahead
// of the image-based pass.
func (o *ObjectContext) SetSurfaceArea(v float64) {
	o.SurfaceArea = v
	o.HasSurfaceArea = true
}

// SetValues records a feature's written output values for this object.
func (o *ObjectContext) SetValues(featureName string, values []float64) {
	o.values[featureName] = values
}

// Values returns a previously-written feature's output values, or nil if
// that feature has not (yet) written to this object.
func (o *ObjectContext) Values(featureName string) []float64 {
	return o.values[featureName]
}
