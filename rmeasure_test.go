package rmeasure_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rmeasure"
	"github.com/katalvlaran/rmeasure/chaincode"
	"github.com/katalvlaran/rmeasure/rimage"
	"github.com/katalvlaran/rmeasure/units"
)

// a 4x4 label image with a single 2x2 square object (id 1) at rows 1-2,
// cols 1-2, and a matching grey image with a constant value of 10 inside
// the object.
func squareImages(t *testing.T) (label, grey rimage.Image) {
	t.Helper()
	sizes := []int{4, 4}
	labelData := make([]float64, 16)
	greyData := make([]float64, 16)
	for _, rc := range [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}} {
		idx := rc[0]*4 + rc[1]
		labelData[idx] = 1
		greyData[idx] = 10
	}
	ps := units.NewUncalibratedPixelSize(2)
	lbl, err := rimage.NewDenseFromData(sizes, 1, rimage.Int64Kind, ps, labelData)
	require.NoError(t, err)
	grey2, err := rimage.NewDenseFromData(sizes, 1, rimage.Float64Kind, ps, greyData)
	require.NoError(t, err)
	return lbl, grey2
}

func TestMeasurementTool_Measure_SizeAndMass(t *testing.T) {
	label, grey := squareImages(t)
	mt, err := rmeasure.NewMeasurementTool(2)
	require.NoError(t, err)

	m, err := mt.Measure(label, grey, []string{"Size", "Mass"}, nil, chaincode.Conn8)
	require.NoError(t, err)

	assert.Equal(t, []int{1}, m.Objects())

	size, err := m.RowFeature(1, "Size")
	require.NoError(t, err)
	assert.Equal(t, []float64{4}, size)

	mass, err := m.RowFeature(1, "Mass")
	require.NoError(t, err)
	assert.Equal(t, []float64{40}, mass)
}

func TestMeasurementTool_Measure_UnknownFeatureErrors(t *testing.T) {
	label, _ := squareImages(t)
	mt, err := rmeasure.NewMeasurementTool(2)
	require.NoError(t, err)

	_, err = mt.Measure(label, nil, []string{"NoSuchFeature"}, nil, chaincode.Conn8)
	assert.Error(t, err)
}

func TestMeasurementTool_Measure_GreyFeatureWithoutGreyErrors(t *testing.T) {
	label, _ := squareImages(t)
	mt, err := rmeasure.NewMeasurementTool(2)
	require.NoError(t, err)

	_, err = mt.Measure(label, nil, []string{"Mass"}, nil, chaincode.Conn8)
	assert.Error(t, err)
}

// squareImage9 builds a 3x3 square object (label 1) on an isotropic 1 m
// calibration, the §8 seed scenario's worked Size/P2A example.
func squareImage9(t *testing.T) rimage.Image {
	t.Helper()
	sizes := []int{5, 5}
	labelData := make([]float64, 25)
	for r := 1; r <= 3; r++ {
		for c := 1; c <= 3; c++ {
			labelData[r*5+c] = 1
		}
	}
	ps := make(units.PixelSize, 2)
	ps[0] = units.Quantity{Magnitude: 1, Units: units.Unit{"m": 1}}
	ps[1] = units.Quantity{Magnitude: 1, Units: units.Unit{"m": 1}}
	lbl, err := rimage.NewDenseFromData(sizes, 1, rimage.Int64Kind, ps, labelData)
	require.NoError(t, err)
	return lbl
}

func TestMeasurementTool_Measure_SizeUnitsAndP2A(t *testing.T) {
	label := squareImage9(t)
	mt, err := rmeasure.NewMeasurementTool(2)
	require.NoError(t, err)

	m, err := mt.Measure(label, nil, []string{"Size", "Perimeter", "P2A"}, nil, chaincode.Conn8)
	require.NoError(t, err)

	size, err := m.RowFeature(1, "Size")
	require.NoError(t, err)
	assert.Equal(t, []float64{9}, size)

	sizeRec, err := m.FeatureRecord("Size")
	require.NoError(t, err)
	require.Len(t, sizeRec.Units, 1)
	assert.Equal(t, 2, sizeRec.Units[0]["m"])

	p2a, err := m.RowFeature(1, "P2A")
	require.NoError(t, err)
	require.Len(t, p2a, 1)
	// Perimeter = 8*0.980 - 4*0.091 + pi ≈ 10.618, so P2A = 10.618²/(4π·9) ≈ 0.997.
	assert.InDelta(t, 0.997, p2a[0], 0.005)
}

func TestMeasurementTool_Measure_MissingFeatureCatalogue(t *testing.T) {
	label, grey := squareImages(t)
	mt, err := rmeasure.NewMeasurementTool(2)
	require.NoError(t, err)

	requested := []string{
		"BoundingBox", "MinValue", "MaxPos", "MinPos", "DirectionalStatistics",
		"Gravity", "GreyInertiaEigen", "GreyMajorAxes",
		"DimensionsCube", "DimensionsEllipsoid",
		"EllipseVariance", "SolidArea",
	}
	m, err := mt.Measure(label, grey, requested, nil, chaincode.Conn8)
	require.NoError(t, err)

	bbox, err := m.RowFeature(1, "BoundingBox")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 2, 2}, bbox)

	minVal, err := m.RowFeature(1, "MinValue")
	require.NoError(t, err)
	assert.Equal(t, []float64{10}, minVal)

	gravity, err := m.RowFeature(1, "Gravity")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 1.5}, gravity)
}

func ExampleMeasurementTool_Measure() {
	sizes := []int{4, 4}
	labelData := make([]float64, 16)
	for _, rc := range [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}} {
		labelData[rc[0]*4+rc[1]] = 1
	}
	ps := units.NewUncalibratedPixelSize(2)
	label, _ := rimage.NewDenseFromData(sizes, 1, rimage.Int64Kind, ps, labelData)

	mt, _ := rmeasure.NewMeasurementTool(2)
	m, err := mt.Measure(label, nil, []string{"Size"}, nil, chaincode.Conn8)
	if err != nil {
		fmt.Println(err)
		return
	}
	size, _ := m.RowFeature(1, "Size")
	fmt.Println(size[0])
	// Output: 4
}
