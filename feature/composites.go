package feature

import (
	"math"

	"github.com/katalvlaran/rmeasure/units"
)

// aspectRatioFeretFeature reports the ratio of the chain-code Feret max
// diameter to its min diameter.
type aspectRatioFeretFeature struct{}

// NewAspectRatioFeret returns the built-in AspectRatioFeret composite.
func NewAspectRatioFeret() Feature { return aspectRatioFeretFeature{} }

func (aspectRatioFeretFeature) Name() string           { return "AspectRatioFeret" }
func (aspectRatioFeretFeature) Kind() Kind             { return CompositeKind }
func (aspectRatioFeretFeature) ValueNames() []string   { return []string{"value"} }
func (aspectRatioFeretFeature) NeedsGrey() bool        { return false }
func (aspectRatioFeretFeature) Dependencies() []string { return []string{"Feret"} }
func (aspectRatioFeretFeature) Units(units.PixelSize) []units.Unit { return dimensionlessUnits(1) }

func (aspectRatioFeretFeature) Compose(obj *ObjectContext) []float64 {
	feret := obj.Values("Feret")
	if len(feret) < 2 || feret[1] == 0 {
		return []float64{math.NaN()}
	}
	return []float64{feret[0] / feret[1]}
}

// p2aFeature reports perimeter-squared-over-area circularity, normalized by
// 4*pi so a circle reports 1 (spec §4.7).
type p2aFeature struct{}

// NewP2A returns the built-in P2A composite.
func NewP2A() Feature { return p2aFeature{} }

func (p2aFeature) Name() string           { return "P2A" }
func (p2aFeature) Kind() Kind             { return CompositeKind }
func (p2aFeature) ValueNames() []string   { return []string{"value"} }
func (p2aFeature) NeedsGrey() bool        { return false }
func (p2aFeature) Dependencies() []string { return []string{"Perimeter", "Size"} }
func (p2aFeature) Units(units.PixelSize) []units.Unit { return dimensionlessUnits(1) }

func (p2aFeature) Compose(obj *ObjectContext) []float64 {
	perim := obj.Values("Perimeter")
	size := obj.Values("Size")
	if len(perim) < 1 || len(size) < 1 || size[0] == 0 {
		return []float64{math.NaN()}
	}
	return []float64{(perim[0] * perim[0]) / (4 * math.Pi * size[0])}
}

// convexityFeature reports the ratio of an object's own size to its
// convex hull's area. Size counts whole pixels while the hull is built on the
// boundary polygon, which encloses less area than the pixel count, so the
// ratio is not bounded by 1: a convex object reports a value above 1.
type convexityFeature struct{}

// NewConvexity returns the built-in Convexity composite.
func NewConvexity() Feature { return convexityFeature{} }

func (convexityFeature) Name() string           { return "Convexity" }
func (convexityFeature) Kind() Kind             { return CompositeKind }
func (convexityFeature) ValueNames() []string   { return []string{"value"} }
func (convexityFeature) NeedsGrey() bool        { return false }
func (convexityFeature) Dependencies() []string { return []string{"Size", "ConvexArea"} }
func (convexityFeature) Units(units.PixelSize) []units.Unit { return dimensionlessUnits(1) }

func (convexityFeature) Compose(obj *ObjectContext) []float64 {
	size := obj.Values("Size")
	convexArea := obj.Values("ConvexArea")
	if len(size) < 1 || len(convexArea) < 1 || convexArea[0] == 0 {
		return []float64{math.NaN()}
	}
	return []float64{size[0] / convexArea[0]}
}

// roundnessFeature reports 4*pi*area/perimeter^2, clamped to [0,1].
type roundnessFeature struct{}

// NewRoundness returns the built-in Roundness composite.
func NewRoundness() Feature { return roundnessFeature{} }

func (roundnessFeature) Name() string           { return "Roundness" }
func (roundnessFeature) Kind() Kind             { return CompositeKind }
func (roundnessFeature) ValueNames() []string   { return []string{"value"} }
func (roundnessFeature) NeedsGrey() bool        { return false }
func (roundnessFeature) Dependencies() []string { return []string{"Size", "Perimeter"} }
func (roundnessFeature) Units(units.PixelSize) []units.Unit { return dimensionlessUnits(1) }

func (roundnessFeature) Compose(obj *ObjectContext) []float64 {
	size := obj.Values("Size")
	perim := obj.Values("Perimeter")
	if len(size) < 1 || len(perim) < 1 || perim[0] == 0 {
		return []float64{math.NaN()}
	}
	r := 4 * math.Pi * size[0] / (perim[0] * perim[0])
	if r < 0 {
		r = 0
	}
	if r > 1 {
		r = 1
	}
	return []float64{r}
}

// podczeckShapesFeature reports the five Podczeck shape descriptors, each
// relating the object's size to a reference shape built from its Feret
// diameters: ellipse, rectangle, circle from max diameter, triangle, and
// the ratio of min to max diameter itself.
type podczeckShapesFeature struct{}

// NewPodczeckShapes returns the built-in PodczeckShapes composite.
func NewPodczeckShapes() Feature { return podczeckShapesFeature{} }

func (podczeckShapesFeature) Name() string { return "PodczeckShapes" }
func (podczeckShapesFeature) Kind() Kind   { return CompositeKind }
func (podczeckShapesFeature) ValueNames() []string {
	return []string{"ellipse", "rectangle", "circleMax", "triangle", "diameterRatio"}
}
func (podczeckShapesFeature) NeedsGrey() bool        { return false }
func (podczeckShapesFeature) Dependencies() []string { return []string{"Size", "Feret"} }
func (podczeckShapesFeature) Units(units.PixelSize) []units.Unit { return dimensionlessUnits(5) }

func (podczeckShapesFeature) Compose(obj *ObjectContext) []float64 {
	size := obj.Values("Size")
	feret := obj.Values("Feret")
	nan := math.NaN()
	if len(size) < 1 || len(feret) < 2 {
		return []float64{nan, nan, nan, nan, nan}
	}
	area, dMax, dMin := size[0], feret[0], feret[1]
	if dMax == 0 {
		return []float64{nan, nan, nan, nan, nan}
	}
	ellipse := area / (math.Pi / 4 * dMax * dMin)
	rectangle := area / (dMax * dMin)
	circleMax := area / (math.Pi / 4 * dMax * dMax)
	triangle := area / (0.5 * dMax * dMin)
	diameterRatio := dMin / dMax
	return []float64{ellipse, rectangle, circleMax, triangle, diameterRatio}
}

// dimensionsFromEigen derives per-axis linear extents from central-moment
// eigenvalues using the cube/ellipsoid closed forms (§4.6): 2-D scales each
// eigenvalue directly, 3-D needs the other two axes' eigenvalues summed in,
// since a box (or ellipsoid) edge along axis i is driven by the inertia
// contributed by the *other* axes, not axis i's own.
func dimensionsFromEigen(lambda []float64, cubeFactor2D, cubeFactor3D float64) []float64 {
	dim := len(lambda)
	out := make([]float64, dim)
	switch dim {
	case 2:
		for i := range out {
			v := cubeFactor2D * lambda[i]
			out[i] = signedSqrt(v)
		}
	case 3:
		total := lambda[0] + lambda[1] + lambda[2]
		for i := range out {
			v := cubeFactor3D * (total - 2*lambda[i])
			out[i] = signedSqrt(v)
		}
	default:
		for i := range out {
			out[i] = math.NaN()
		}
	}
	return out
}

func signedSqrt(v float64) float64 {
	if v < 0 {
		return math.NaN()
	}
	return math.Sqrt(v)
}

// dimensionsCubeFeature reports per-axis linear extents of a cube with the
// same binary inertia eigenvalues as the object (§4.6).
type dimensionsCubeFeature struct{ dim int }

// NewDimensionsCube returns the built-in DimensionsCube composite for
// objects of the given dimensionality.
func NewDimensionsCube(dim int) Feature { return dimensionsCubeFeature{dim: dim} }

func (dimensionsCubeFeature) Name() string           { return "DimensionsCube" }
func (dimensionsCubeFeature) Kind() Kind             { return CompositeKind }
func (f dimensionsCubeFeature) ValueNames() []string { return axisNames(f.dim) }
func (dimensionsCubeFeature) NeedsGrey() bool        { return false }
func (dimensionsCubeFeature) Dependencies() []string { return []string{"InertiaEigen"} }
func (f dimensionsCubeFeature) Units(units.PixelSize) []units.Unit {
	return dimensionlessUnits(f.dim)
}

func (f dimensionsCubeFeature) Compose(obj *ObjectContext) []float64 {
	lambda := obj.Values("InertiaEigen")
	if len(lambda) != f.dim {
		return nanSlice(f.dim)
	}
	return dimensionsFromEigen(lambda, 12, 6)
}

// dimensionsEllipsoidFeature reports per-axis linear extents of an ellipsoid
// with the same binary inertia eigenvalues as the object (§4.6).
type dimensionsEllipsoidFeature struct{ dim int }

// NewDimensionsEllipsoid returns the built-in DimensionsEllipsoid composite
// for objects of the given dimensionality.
func NewDimensionsEllipsoid(dim int) Feature { return dimensionsEllipsoidFeature{dim: dim} }

func (dimensionsEllipsoidFeature) Name() string           { return "DimensionsEllipsoid" }
func (dimensionsEllipsoidFeature) Kind() Kind             { return CompositeKind }
func (f dimensionsEllipsoidFeature) ValueNames() []string { return axisNames(f.dim) }
func (dimensionsEllipsoidFeature) NeedsGrey() bool        { return false }
func (dimensionsEllipsoidFeature) Dependencies() []string { return []string{"InertiaEigen"} }
func (f dimensionsEllipsoidFeature) Units(units.PixelSize) []units.Unit {
	return dimensionlessUnits(f.dim)
}

func (f dimensionsEllipsoidFeature) Compose(obj *ObjectContext) []float64 {
	lambda := obj.Values("InertiaEigen")
	if len(lambda) != f.dim {
		return nanSlice(f.dim)
	}
	return dimensionsFromEigen(lambda, 16, 10)
}

// greyDimensionsCubeFeature is DimensionsCube's grey-weighted counterpart,
// reading GreyInertiaEigen instead of InertiaEigen.
type greyDimensionsCubeFeature struct{ dim int }

// NewGreyDimensionsCube returns the built-in GreyDimensionsCube composite
// for objects of the given dimensionality.
func NewGreyDimensionsCube(dim int) Feature { return greyDimensionsCubeFeature{dim: dim} }

func (greyDimensionsCubeFeature) Name() string           { return "GreyDimensionsCube" }
func (greyDimensionsCubeFeature) Kind() Kind             { return CompositeKind }
func (f greyDimensionsCubeFeature) ValueNames() []string { return axisNames(f.dim) }
func (greyDimensionsCubeFeature) NeedsGrey() bool        { return true }
func (greyDimensionsCubeFeature) Dependencies() []string { return []string{"GreyInertiaEigen"} }
func (f greyDimensionsCubeFeature) Units(units.PixelSize) []units.Unit {
	return dimensionlessUnits(f.dim)
}

func (f greyDimensionsCubeFeature) Compose(obj *ObjectContext) []float64 {
	lambda := obj.Values("GreyInertiaEigen")
	if len(lambda) != f.dim {
		return nanSlice(f.dim)
	}
	return dimensionsFromEigen(lambda, 12, 6)
}

// greyDimensionsEllipsoidFeature is DimensionsEllipsoid's grey-weighted
// counterpart, reading GreyInertiaEigen instead of InertiaEigen.
type greyDimensionsEllipsoidFeature struct{ dim int }

// NewGreyDimensionsEllipsoid returns the built-in GreyDimensionsEllipsoid
// composite for objects of the given dimensionality.
func NewGreyDimensionsEllipsoid(dim int) Feature { return greyDimensionsEllipsoidFeature{dim: dim} }

func (greyDimensionsEllipsoidFeature) Name() string           { return "GreyDimensionsEllipsoid" }
func (greyDimensionsEllipsoidFeature) Kind() Kind             { return CompositeKind }
func (f greyDimensionsEllipsoidFeature) ValueNames() []string { return axisNames(f.dim) }
func (greyDimensionsEllipsoidFeature) NeedsGrey() bool        { return true }
func (greyDimensionsEllipsoidFeature) Dependencies() []string { return []string{"GreyInertiaEigen"} }
func (f greyDimensionsEllipsoidFeature) Units(units.PixelSize) []units.Unit {
	return dimensionlessUnits(f.dim)
}

func (f greyDimensionsEllipsoidFeature) Compose(obj *ObjectContext) []float64 {
	lambda := obj.Values("GreyInertiaEigen")
	if len(lambda) != f.dim {
		return nanSlice(f.dim)
	}
	return dimensionsFromEigen(lambda, 16, 10)
}

var (
	_ CompositeFeature = aspectRatioFeretFeature{}
	_ CompositeFeature = p2aFeature{}
	_ CompositeFeature = convexityFeature{}
	_ CompositeFeature = roundnessFeature{}
	_ CompositeFeature = podczeckShapesFeature{}
	_ CompositeFeature = dimensionsCubeFeature{}
	_ CompositeFeature = dimensionsEllipsoidFeature{}
	_ CompositeFeature = greyDimensionsCubeFeature{}
	_ CompositeFeature = greyDimensionsEllipsoidFeature{}
)
