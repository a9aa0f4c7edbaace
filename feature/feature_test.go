package feature

import (
	"testing"

	"github.com/katalvlaran/rmeasure/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RejectsDuplicateName(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(NewSize()))
	err := reg.Register(NewSize())
	require.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestRegistry_LookupUnknownFails(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Lookup("NotAFeature")
	require.ErrorIs(t, err, ErrUnknownFeature)
}

func TestNewBuiltinRegistry_RegistersWithoutCollision(t *testing.T) {
	reg, err := NewBuiltinRegistry(2)
	require.NoError(t, err)
	assert.True(t, reg.Known("Size"))
	assert.True(t, reg.Known("Mass"))
	assert.True(t, reg.Known("Centre"))
	assert.True(t, reg.Known("Roundness"))
}

func unitSquareContext(dim int) *ObjectContext {
	obj := NewObjectContext(1, dim, units.NewUncalibratedPixelSize(dim), true)
	pts := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for _, p := range pts {
		obj.PushPixel(p, 10, true)
	}
	return obj
}

func TestSizeFeature_CountsPixels(t *testing.T) {
	f := NewSize()
	scratch := f.(LineFeature).NewScratch()
	for i := 0; i < 4; i++ {
		scratch.Push(nil, 0, false)
	}
	assert.Equal(t, []float64{4}, scratch.Result())
}

func TestSizeFeature_ScalesByPixelVolume(t *testing.T) {
	f := NewSize().(Scalable)
	ps := units.NewUniformPixelSize(2, units.NewQuantity(2, units.NewUnit("m", 1)))
	scaled := f.Scale(ps, []float64{3})
	assert.InDelta(t, 3*ps.Volume().Magnitude, scaled[0], 1e-9)
}

func TestMassFeature_SumsGreyValues(t *testing.T) {
	obj := unitSquareContext(2)
	got := NewMass().(ImageFeature).Measure(obj)
	assert.InDelta(t, 40, got[0], 1e-9)
}

func TestMeanFeature_ReportsAverage(t *testing.T) {
	obj := unitSquareContext(2)
	got := NewMean().(ImageFeature).Measure(obj)
	assert.InDelta(t, 10, got[0], 1e-9)
}

func TestCentreFeature_ReportsBinaryCentroid(t *testing.T) {
	obj := unitSquareContext(2)
	got := NewCentre(2).(ImageFeature).Measure(obj)
	require.Len(t, got, 2)
	assert.InDelta(t, 0.5, got[0], 1e-9)
	assert.InDelta(t, 0.5, got[1], 1e-9)
}

func TestInertiaEigen_NonNegativeForSquare(t *testing.T) {
	obj := unitSquareContext(2)
	got := NewInertiaEigen(2).(ImageFeature).Measure(obj)
	require.Len(t, got, 2)
	assert.GreaterOrEqual(t, got[0], 0.0)
	assert.GreaterOrEqual(t, got[1], 0.0)
}

func TestRoundness_ClampedToUnitInterval(t *testing.T) {
	obj := unitSquareContext(2)
	obj.SetValues("Size", []float64{4})
	obj.SetValues("Perimeter", []float64{0.5})
	got := NewRoundness().(CompositeFeature).Compose(obj)
	assert.LessOrEqual(t, got[0], 1.0)
	assert.GreaterOrEqual(t, got[0], 0.0)
}

func TestAspectRatioFeret_DividesMaxByMin(t *testing.T) {
	obj := unitSquareContext(2)
	obj.SetValues("Feret", []float64{4, 2, 0, 0})
	got := NewAspectRatioFeret().(CompositeFeature).Compose(obj)
	assert.InDelta(t, 2.0, got[0], 1e-9)
}

func TestConvexity_UsesSizeOverConvexArea(t *testing.T) {
	obj := unitSquareContext(2)
	obj.SetValues("Size", []float64{3})
	obj.SetValues("ConvexArea", []float64{4})
	got := NewConvexity().(CompositeFeature).Compose(obj)
	assert.InDelta(t, 0.75, got[0], 1e-9)
}

func TestPodczeckShapes_NaNWithoutDependencies(t *testing.T) {
	obj := NewObjectContext(1, 2, units.NewUncalibratedPixelSize(2), false)
	got := NewPodczeckShapes().(CompositeFeature).Compose(obj)
	require.Len(t, got, 5)
	for _, v := range got {
		assert.True(t, v != v, "expected nan")
	}
}
