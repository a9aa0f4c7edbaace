package feature

import (
	"math"

	"github.com/katalvlaran/rmeasure/geom"
	"github.com/katalvlaran/rmeasure/units"
)

// convexAreaFeature reports the convex hull's area. A nil hull (degenerate
// geometry or self-intersection) yields nan.
type convexAreaFeature struct{}

// NewConvexArea returns the built-in ConvexArea feature.
func NewConvexArea() Feature { return convexAreaFeature{} }

func (convexAreaFeature) Name() string           { return "ConvexArea" }
func (convexAreaFeature) Kind() Kind             { return ConvexHullBased }
func (convexAreaFeature) ValueNames() []string   { return []string{"value"} }
func (convexAreaFeature) NeedsGrey() bool        { return false }
func (convexAreaFeature) Dependencies() []string { return nil }
func (convexAreaFeature) Units(units.PixelSize) []units.Unit { return dimensionlessUnits(1) }

func (convexAreaFeature) Measure(obj *ObjectContext, hull *geom.ConvexHull) []float64 {
	if hull == nil {
		return []float64{math.NaN()}
	}
	return []float64{hull.Area()}
}

// convexPerimeterFeature reports the convex hull's boundary perimeter.
type convexPerimeterFeature struct{}

// NewConvexPerimeter returns the built-in ConvexPerimeter feature.
func NewConvexPerimeter() Feature { return convexPerimeterFeature{} }

func (convexPerimeterFeature) Name() string           { return "ConvexPerimeter" }
func (convexPerimeterFeature) Kind() Kind             { return ConvexHullBased }
func (convexPerimeterFeature) ValueNames() []string   { return []string{"value"} }
func (convexPerimeterFeature) NeedsGrey() bool        { return false }
func (convexPerimeterFeature) Dependencies() []string { return nil }
func (convexPerimeterFeature) Units(units.PixelSize) []units.Unit { return dimensionlessUnits(1) }

func (convexPerimeterFeature) Measure(obj *ObjectContext, hull *geom.ConvexHull) []float64 {
	if hull == nil {
		return []float64{math.NaN()}
	}
	verts := hull.Vertices()
	n := len(verts)
	if n < 2 {
		return []float64{0}
	}
	perim := 0.0
	for i := 0; i < n; i++ {
		a, b := verts[i], verts[(i+1)%n]
		perim += math.Hypot(a.X-b.X, a.Y-b.Y)
	}
	return []float64{perim}
}

var (
	_ ConvexHullFeature = convexAreaFeature{}
	_ ConvexHullFeature = convexPerimeterFeature{}
)
