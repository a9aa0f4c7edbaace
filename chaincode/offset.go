package chaincode

// Offset produces the chain code of the set of pixel centres 8-adjacent to
// the object (a one-pixel dilation by the 8-neighbourhood), used for robust
// comparison tests: boundary-pixel noise in the source object shifts the
// exact chain code but leaves the dilated shape's chain code stable.
func (c *ChainCode) Offset() (*ChainCode, error) {
	sizes := c.img.Sizes()
	occupied := make(map[[2]int]bool)
	for y := 0; y < sizes[0]; y++ {
		for x := 0; x < sizes[1]; x++ {
			v, ok := scalarAt(c.img, x, y)
			if ok && int(v) == c.label {
				occupied[[2]int{x, y}] = true
			}
		}
	}

	dilated := make(map[[2]int]bool, len(occupied)*2)
	for p := range occupied {
		for _, d := range delta8 {
			dilated[[2]int{p[0] + d[0], p[1] + d[1]}] = true
		}
		dilated[p] = true
	}

	minX, minY := 0, 0
	maxX, maxY := 0, 0
	first := true
	for p := range dilated {
		if first {
			minX, maxX, minY, maxY = p[0], p[0], p[1], p[1]
			first = false
			continue
		}
		if p[0] < minX {
			minX = p[0]
		}
		if p[0] > maxX {
			maxX = p[0]
		}
		if p[1] < minY {
			minY = p[1]
		}
		if p[1] > maxY {
			maxY = p[1]
		}
	}
	if first {
		return nil, ErrNoObjectPixels
	}

	width, height := maxX-minX+1, maxY-minY+1
	grid := make([][]int, height)
	for y := range grid {
		grid[y] = make([]int, width)
	}
	for p := range dilated {
		grid[p[1]-minY][p[0]-minX] = c.label
	}

	img := newLabelGrid(grid)
	startX, startY := -1, -1
	for y := 0; y < height && startY < 0; y++ {
		for x := 0; x < width; x++ {
			if grid[y][x] == c.label {
				startX, startY = x, y
				break
			}
		}
	}

	return GetSingleChainCode(img, [2]int{startX, startY}, c.conn)
}
