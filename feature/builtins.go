package feature

// NewBuiltinRegistry returns a Registry populated with the standard feature
// catalogue (38 entries) for objects of the given dimensionality.
// Dimension-dependent features (Centre, Mu, InertiaEigen, MajorAxes,
// GreyMu, and their positional/grey/dimension-conversion counterparts)
// close over dim at construction time.
func NewBuiltinRegistry(dim int) (*Registry, error) {
	reg := NewRegistry()
	builtins := []Feature{
		NewSize(),
		NewMass(),
		NewMean(),
		NewStdDev(),
		NewFullStatistics(),
		NewMaxValue(),
		NewMinValue(),
		NewMaxPos(dim),
		NewMinPos(dim),
		NewBoundingBox(dim),
		NewDirectionalStatistics(),
		NewCentre(dim),
		NewMu(dim),
		NewInertiaEigen(dim),
		NewMajorAxes(dim),
		NewDimensionsCube(dim),
		NewDimensionsEllipsoid(dim),
		NewGravity(dim),
		NewGreyMu(dim),
		NewGreyInertiaEigen(dim),
		NewGreyMajorAxes(dim),
		NewGreyDimensionsCube(dim),
		NewGreyDimensionsEllipsoid(dim),
		NewPerimeter(),
		NewFeret(defaultAngleStep),
		NewBendingEnergy(),
		NewRadius(),
		NewEllipseAxes(),
		NewEllipseVariance(),
		NewSolidArea(),
		NewConvexArea(),
		NewConvexPerimeter(),
		NewAspectRatioFeret(),
		NewP2A(),
		NewConvexity(),
		NewRoundness(),
		NewPodczeckShapes(),
		NewSurfaceArea(),
	}
	for _, f := range builtins {
		if err := reg.Register(f); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// defaultAngleStep is the Feret rotation sweep's default angular resolution,
// in radians (one degree).
const defaultAngleStep = 0.017453292519943295
