package rimage

import (
	"testing"

	"github.com/katalvlaran/rmeasure/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_RejectsEmptyOrNonPositive(t *testing.T) {
	_, err := NewDense(nil, 1, Float64Kind, nil)
	require.Error(t, err)

	_, err = NewDense([]int{3, 0}, 1, Float64Kind, units.NewUncalibratedPixelSize(2))
	require.Error(t, err)
}

func TestDense_ForgeThenAtSetRoundTrip(t *testing.T) {
	img, err := NewDense([]int{2, 3}, 1, Float64Kind, units.NewUncalibratedPixelSize(2))
	require.NoError(t, err)
	assert.False(t, img.IsForged())

	require.NoError(t, img.Set([]int{1, 2}, []float64{42}))
	assert.True(t, img.IsForged())

	v, err := img.At([]int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{42.0}, v)

	v2, err := img.At([]int{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.0}, v2)
}

func TestDense_AtBeforeForgeFails(t *testing.T) {
	img, err := NewDense([]int{2, 2}, 1, Int64Kind, units.NewUncalibratedPixelSize(2))
	require.NoError(t, err)
	_, err = img.At([]int{0, 0})
	require.ErrorIs(t, err, ErrNotForged)
}

func TestDense_CoordDimensionMismatch(t *testing.T) {
	img, err := NewDense([]int{2, 2}, 1, Int64Kind, units.NewUncalibratedPixelSize(2))
	require.NoError(t, err)
	img.Forge()
	_, err = img.At([]int{0})
	require.ErrorIs(t, err, ErrCoordDimensionMismatch)
}

func TestDense_CoordOutOfRange(t *testing.T) {
	img, err := NewDense([]int{2, 2}, 1, Int64Kind, units.NewUncalibratedPixelSize(2))
	require.NoError(t, err)
	img.Forge()
	_, err = img.At([]int{5, 0})
	require.ErrorIs(t, err, ErrCoordOutOfRange)
}

func TestDense_TensorElementsAndIsScalar(t *testing.T) {
	img, err := NewDense([]int{2, 2}, 3, Float64Kind, units.NewUncalibratedPixelSize(2))
	require.NoError(t, err)
	assert.Equal(t, 3, img.TensorElements())
	assert.False(t, img.IsScalar())

	require.NoError(t, img.Set([]int{0, 0}, []float64{1, 2, 3}))
	v, err := img.At([]int{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, v)
}

func TestDense_IsIsotropic(t *testing.T) {
	uniform, err := NewDense([]int{2, 2}, 1, Float64Kind, units.NewUniformPixelSize(2, units.NewQuantity(0.5, units.NewUnit("m", 1))))
	require.NoError(t, err)
	assert.True(t, uniform.IsIsotropic())
}

func TestNewDenseFromData_WrongLength(t *testing.T) {
	_, err := NewDenseFromData([]int{2, 2}, 1, Float64Kind, units.NewUncalibratedPixelSize(2), []float64{1, 2, 3})
	require.Error(t, err)
}

func TestGetObjectLabels_ExcludesZeroAndRespectsMask(t *testing.T) {
	label, err := NewDense([]int{2, 2}, 1, Int64Kind, units.NewUncalibratedPixelSize(2))
	require.NoError(t, err)
	require.NoError(t, label.Set([]int{0, 0}, []float64{0}))
	require.NoError(t, label.Set([]int{0, 1}, []float64{1}))
	require.NoError(t, label.Set([]int{1, 0}, []float64{2}))
	require.NoError(t, label.Set([]int{1, 1}, []float64{2}))

	ids, err := GetObjectLabels(label, nil, true)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids)

	mask, err := NewDense([]int{2, 2}, 1, Int64Kind, units.NewUncalibratedPixelSize(2))
	require.NoError(t, err)
	require.NoError(t, mask.Set([]int{0, 1}, []float64{1}))
	require.NoError(t, mask.Set([]int{1, 0}, []float64{0}))
	require.NoError(t, mask.Set([]int{1, 1}, []float64{0}))

	masked, err := GetObjectLabels(label, mask, true)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, masked)
}

func TestScan_SumsLinesIntoOutput(t *testing.T) {
	a, err := NewDense([]int{2, 3}, 1, Float64Kind, units.NewUncalibratedPixelSize(2))
	require.NoError(t, err)
	b, err := NewDense([]int{2, 3}, 1, Float64Kind, units.NewUncalibratedPixelSize(2))
	require.NoError(t, err)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			require.NoError(t, a.Set([]int{y, x}, []float64{float64(x + 1)}))
			require.NoError(t, b.Set([]int{y, x}, []float64{float64(10 * (x + 1))}))
		}
	}
	out, err := NewDense([]int{2, 3}, 1, Float64Kind, units.NewUncalibratedPixelSize(2))
	require.NoError(t, err)

	err = Scan([]Image{a, b}, []*Dense{out}, func(coords []int, lines [][]float64, n int) {
		for i := 0; i < n; i++ {
			lines[2][i] = lines[0][i] + lines[1][i]
		}
	})
	require.NoError(t, err)

	v, err := out.At([]int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{22.0}, v)
}
