package surface

import (
	"testing"

	"github.com/katalvlaran/rmeasure/rimage"
	"github.com/katalvlaran/rmeasure/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleVoxelImage(t *testing.T) *rimage.Dense {
	t.Helper()
	img, err := rimage.NewDense([]int{3, 3, 3}, 1, rimage.Int64Kind, units.NewUncalibratedPixelSize(3))
	require.NoError(t, err)
	require.NoError(t, img.Set([]int{1, 1, 1}, []float64{1}))
	return img
}

func TestClassify_IsolatedVoxelIsType0(t *testing.T) {
	assert.Equal(t, 0, classify(0))
}

func TestClassify_FullySurroundedIsType9(t *testing.T) {
	assert.Equal(t, 9, classify(0b111111))
}

func TestClassify_OppositePairVsCornerDiffer(t *testing.T) {
	oppositePair := classify(0b000011) // +x,-x
	corner := classify(0b000101)       // +x,+y
	assert.NotEqual(t, oppositePair, corner)
}

func TestArea_RequiresThreeDimensions(t *testing.T) {
	img, err := rimage.NewDense([]int{3, 3}, 1, rimage.Int64Kind, units.NewUncalibratedPixelSize(2))
	require.NoError(t, err)
	img.Forge()
	_, err = Area(img, []int{1})
	require.ErrorIs(t, err, ErrNot3D)
}

func TestArea_SingleVoxelGetsIsolatedAndDualWeights(t *testing.T) {
	img := singleVoxelImage(t)
	tally, err := Area(img, []int{1})
	require.NoError(t, err)
	// The voxel itself has no same-label neighbour (type 0); each of its six
	// background neighbours sees exactly one labelled neighbour (type 1).
	assert.InDelta(t, areaPerType[0]+6*areaPerType[1], tally[1], 1e-9)
}

func TestArea_TwoAdjacentVoxelsReduceExposure(t *testing.T) {
	img, err := rimage.NewDense([]int{3, 3, 4}, 1, rimage.Int64Kind, units.NewUncalibratedPixelSize(3))
	require.NoError(t, err)
	require.NoError(t, img.Set([]int{1, 1, 1}, []float64{1}))
	require.NoError(t, img.Set([]int{1, 1, 2}, []float64{1}))

	tally, err := Area(img, []int{1})
	require.NoError(t, err)
	// Two isolated voxels would tally areaPerType[0]+6*areaPerType[1] each.
	assert.True(t, tally[1] < 2*(areaPerType[0]+6*areaPerType[1]))
}
