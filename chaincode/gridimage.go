package chaincode

import (
	"github.com/katalvlaran/rmeasure/rimage"
	"github.com/katalvlaran/rmeasure/units"
)

// newLabelGrid wraps a dense [][]int grid (row-major, grid[y][x]) as a
// scalar, uncalibrated rimage.Image for internal use by operations that
// synthesize a derived label image (Offset's dilation).
func newLabelGrid(grid [][]int) *rimage.Dense {
	height := len(grid)
	width := 0
	if height > 0 {
		width = len(grid[0])
	}
	data := make([]float64, 0, height*width)
	for _, row := range grid {
		for _, v := range row {
			data = append(data, float64(v))
		}
	}
	img, _ := rimage.NewDenseFromData([]int{height, width}, 1, rimage.Int64Kind, units.NewUncalibratedPixelSize(2), data)
	return img
}
