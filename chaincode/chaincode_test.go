package chaincode

import (
	"math"
	"testing"

	"github.com/katalvlaran/rmeasure/rimage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square3x3() *rimage.Dense {
	grid := [][]int{
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 1, 1, 1, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
	}
	return newLabelGrid(grid)
}

func singlePixel() *rimage.Dense {
	grid := [][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	}
	return newLabelGrid(grid)
}

func TestGetSingleChainCode_SquareClosesLoop(t *testing.T) {
	img := square3x3()
	cc, err := GetSingleChainCode(img, [2]int{1, 1}, Conn8)
	require.NoError(t, err)
	assert.Equal(t, 1, cc.Label())
	assert.True(t, cc.Len() > 0)
}

func TestGetSingleChainCode_RejectsBackground(t *testing.T) {
	img := square3x3()
	_, err := GetSingleChainCode(img, [2]int{0, 0}, Conn8)
	require.ErrorIs(t, err, ErrStartNotOnBoundary)
}

func TestGetSingleChainCode_SinglePixelYieldsEmptyChain(t *testing.T) {
	img := singlePixel()
	cc, err := GetSingleChainCode(img, [2]int{1, 1}, Conn8)
	require.NoError(t, err)
	assert.Equal(t, 0, cc.Len())
}

func TestImageRoundTrip(t *testing.T) {
	img := square3x3()
	cc, err := GetSingleChainCode(img, [2]int{1, 1}, Conn8)
	require.NoError(t, err)

	cc2, err := GetSingleChainCode(cc.Image(), [2]int{1, 1}, Conn8)
	require.NoError(t, err)
	assert.Equal(t, cc.Codes(), cc2.Codes())
}

func TestConvertTo8Connected_Idempotent(t *testing.T) {
	img := square3x3()
	cc8, err := GetSingleChainCode(img, [2]int{1, 1}, Conn8)
	require.NoError(t, err)
	same := cc8.ConvertTo8Connected()
	assert.Equal(t, cc8.Codes(), same.Codes())
}

func TestPolygon_SinglePixelIsUnitSquare(t *testing.T) {
	img := singlePixel()
	cc, err := GetSingleChainCode(img, [2]int{1, 1}, Conn8)
	require.NoError(t, err)
	poly, err := cc.Polygon()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, math.Abs(poly.Area()), 1e-9)
}

func TestLength_NonNegativeForSquare(t *testing.T) {
	img := square3x3()
	cc, err := GetSingleChainCode(img, [2]int{1, 1}, Conn8)
	require.NoError(t, err)
	assert.True(t, cc.Length() > 0)
}

func TestFeret_SinglePixelDegenerates(t *testing.T) {
	img := singlePixel()
	cc, err := GetSingleChainCode(img, [2]int{1, 1}, Conn8)
	require.NoError(t, err)
	f := cc.Feret(0.1)
	assert.Equal(t, 1.0, f.MaxDiameter)
	assert.Equal(t, 1.0, f.MinDiameter)
}

func TestRadius_SquareStatsAreOrdered(t *testing.T) {
	img := square3x3()
	cc, err := GetSingleChainCode(img, [2]int{1, 1}, Conn8)
	require.NoError(t, err)
	r := cc.Radius()
	assert.True(t, r.Max >= r.Min)
	assert.True(t, r.Variance >= 0)
}

func TestGetImageChainCodes_MultipleObjects(t *testing.T) {
	grid := [][]int{
		{1, 0, 2},
		{0, 0, 2},
		{3, 3, 0},
	}
	img := newLabelGrid(grid)
	ccs, err := GetImageChainCodes(img, []int{1, 2, 3}, Conn8)
	require.NoError(t, err)
	require.Len(t, ccs, 3)
	assert.Equal(t, 1, ccs[0].Label())
	assert.Equal(t, 2, ccs[1].Label())
	assert.Equal(t, 3, ccs[2].Label())
}

func TestOffset_ProducesLargerBoundary(t *testing.T) {
	img := singlePixel()
	cc, err := GetSingleChainCode(img, [2]int{1, 1}, Conn8)
	require.NoError(t, err)
	off, err := cc.Offset()
	require.NoError(t, err)
	assert.True(t, off.Len() >= cc.Len())
}

func TestConnectivity_Delta4vsDelta8(t *testing.T) {
	dx, dy := Conn4.Delta(1)
	assert.Equal(t, 0, dx)
	assert.Equal(t, -1, dy)

	dx8, dy8 := Conn8.Delta(1)
	assert.Equal(t, 1, dx8)
	assert.Equal(t, -1, dy8)
}
