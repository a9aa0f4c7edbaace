package feature

import (
	"github.com/katalvlaran/rmeasure/chaincode"
	"github.com/katalvlaran/rmeasure/geom"
	"github.com/katalvlaran/rmeasure/units"
)

// Feature is the contract every measurement feature satisfies, regardless
// of evaluation modality. The driver type-asserts to one of the kind-
// specific interfaces below to obtain the method it needs for the matching
// evaluator pass.
type Feature interface {
	// Name is the feature's registry key, case-sensitive.
	Name() string
	// Kind identifies the evaluation modality.
	Kind() Kind
	// ValueNames names each output value; its length is the feature's arity.
	ValueNames() []string
	// NeedsGrey reports whether this feature requires a grey image.
	NeedsGrey() bool
	// Dependencies lists the feature names a composite reads; empty for
	// every non-composite kind.
	Dependencies() []string
	// Units reports each output value's physical unit given the image's
	// per-axis pixel calibration, in the same order as ValueNames. A
	// feature with no corresponding Scale conversion returns
	// units.Dimensionless() for every value: labelling an unconverted raw
	// pixel count or packed moment with a physical unit would overstate
	// what the value actually is.
	Units(pixelSize units.PixelSize) []units.Unit
}

// dimensionlessUnits returns n copies of units.Dimensionless(), the default
// Units() result for any feature without a Scale conversion.
func dimensionlessUnits(n int) []units.Unit {
	out := make([]units.Unit, n)
	for i := range out {
		out[i] = units.Dimensionless()
	}
	return out
}

// Scalable is implemented by features whose raw values need a post-measure
// unit-scaling pass (e.g. multiplying pixel counts by a calibrated pixel
// area). Features that already write physically-scaled values, or whose
// values are dimensionless, do not implement it.
type Scalable interface {
	Feature
	Scale(pixelSize units.PixelSize, raw []float64) []float64
}

// LineFeature accumulates per-pixel state across the raster scan via a
// fresh Scratch per object, then reduces it to output values.
type LineFeature interface {
	Feature
	NewScratch() Scratch
}

// Scratch is one object's mutable per-pixel accumulation state for a
// line-based feature.
type Scratch interface {
	Push(coords []float64, greyValue float64, hasGrey bool)
	Result() []float64
}

// ImageFeature computes directly from an object's accumulated statistics,
// with no further pixel access.
type ImageFeature interface {
	Feature
	Measure(obj *ObjectContext) []float64
}

// ChainCodeFeature computes from an object's chain code.
type ChainCodeFeature interface {
	Feature
	Measure(obj *ObjectContext, cc *chaincode.ChainCode) []float64
}

// PolygonFeature computes from an object's polygon.
type PolygonFeature interface {
	Feature
	Measure(obj *ObjectContext, poly *geom.Polygon) []float64
}

// ConvexHullFeature computes from an object's convex hull. A nil hull
// indicates convex hull construction failed (degenerate geometry or
// self-intersection); implementations must emit nan in that case rather
// than panic.
type ConvexHullFeature interface {
	Feature
	Measure(obj *ObjectContext, hull *geom.ConvexHull) []float64
}

// CompositeFeature reads other already-measured features' values from the
// object context via Dependencies(), by name.
type CompositeFeature interface {
	Feature
	Compose(obj *ObjectContext) []float64
}
