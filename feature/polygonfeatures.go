package feature

import (
	"math"

	"github.com/katalvlaran/rmeasure/accum"
	"github.com/katalvlaran/rmeasure/geom"
	"github.com/katalvlaran/rmeasure/units"
)

// ellipseAxesFeature fits an ellipse to the object's polygon and reports its
// major and minor axis lengths. A non-ellipse conic fit yields nan in both
// slots.
type ellipseAxesFeature struct{}

// NewEllipseAxes returns the built-in EllipseAxes feature.
func NewEllipseAxes() Feature { return ellipseAxesFeature{} }

func (ellipseAxesFeature) Name() string           { return "EllipseAxes" }
func (ellipseAxesFeature) Kind() Kind             { return PolygonBased }
func (ellipseAxesFeature) ValueNames() []string   { return []string{"major", "minor"} }
func (ellipseAxesFeature) NeedsGrey() bool        { return false }
func (ellipseAxesFeature) Dependencies() []string { return nil }
func (ellipseAxesFeature) Units(units.PixelSize) []units.Unit { return dimensionlessUnits(2) }

func (ellipseAxesFeature) Measure(obj *ObjectContext, poly *geom.Polygon) []float64 {
	fit, err := poly.FitEllipse()
	if err != nil {
		return []float64{math.NaN(), math.NaN()}
	}
	return []float64{fit.MajorAxis, fit.MinorAxis}
}

// ellipseVarianceFeature reports the goodness of fit between an object's
// polygon and its fitted ellipse: the standard deviation, over the polygon's
// vertices, of each vertex's normalized radius in the ellipse's own frame
// (1.0 for a vertex exactly on the ellipse boundary). A non-ellipse conic
// fit yields nan.
type ellipseVarianceFeature struct{}

// NewEllipseVariance returns the built-in EllipseVariance feature.
func NewEllipseVariance() Feature { return ellipseVarianceFeature{} }

func (ellipseVarianceFeature) Name() string           { return "EllipseVariance" }
func (ellipseVarianceFeature) Kind() Kind             { return PolygonBased }
func (ellipseVarianceFeature) ValueNames() []string   { return []string{"value"} }
func (ellipseVarianceFeature) NeedsGrey() bool        { return false }
func (ellipseVarianceFeature) Dependencies() []string { return nil }
func (ellipseVarianceFeature) Units(units.PixelSize) []units.Unit { return dimensionlessUnits(1) }

func (ellipseVarianceFeature) Measure(obj *ObjectContext, poly *geom.Polygon) []float64 {
	fit, err := poly.FitEllipse()
	if err != nil || fit.MajorAxis == 0 || fit.MinorAxis == 0 {
		return []float64{math.NaN()}
	}
	cosA, sinA := math.Cos(-fit.Angle), math.Sin(-fit.Angle)
	stats := accum.NewStatistics()
	for _, v := range poly.Vertices() {
		dx, dy := v.X-fit.CenterX, v.Y-fit.CenterY
		xr := dx*cosA - dy*sinA
		yr := dx*sinA + dy*cosA
		r := math.Hypot(xr/fit.MajorAxis, yr/fit.MinorAxis)
		stats.Push(r)
	}
	return []float64{stats.StdDev()}
}

// solidAreaFeature reports the area enclosed by an object's outer polygon,
// filling over any interior holes that Size's pixel count would exclude.
type solidAreaFeature struct{}

// NewSolidArea returns the built-in SolidArea feature.
func NewSolidArea() Feature { return solidAreaFeature{} }

func (solidAreaFeature) Name() string           { return "SolidArea" }
func (solidAreaFeature) Kind() Kind             { return PolygonBased }
func (solidAreaFeature) ValueNames() []string   { return []string{"value"} }
func (solidAreaFeature) NeedsGrey() bool        { return false }
func (solidAreaFeature) Dependencies() []string { return nil }
func (solidAreaFeature) Units(units.PixelSize) []units.Unit { return dimensionlessUnits(1) }

func (solidAreaFeature) Measure(obj *ObjectContext, poly *geom.Polygon) []float64 {
	return []float64{math.Abs(poly.Area())}
}

var (
	_ PolygonFeature = ellipseAxesFeature{}
	_ PolygonFeature = ellipseVarianceFeature{}
	_ PolygonFeature = solidAreaFeature{}
)
