package surface

import "github.com/katalvlaran/rmeasure/rimage"

// neighborOffsets gives the six axis-neighbour coordinate deltas (z,y,x
// order, matching a row-major 3-D Image's Sizes()), in the bit order the
// classification table expects: +x,-x,+y,-y,+z,-z.
var neighborOffsets = [6][3]int{
	{0, 0, 1}, {0, 0, -1}, {0, 1, 0}, {0, -1, 0}, {1, 0, 0}, {-1, 0, 0},
}

func scalarAt3D(img rimage.Image, z, y, x int, sizes []int) (int, bool) {
	if z < 0 || y < 0 || x < 0 || z >= sizes[0] || y >= sizes[1] || x >= sizes[2] {
		return 0, false
	}
	v, err := img.At([]int{z, y, x})
	if err != nil {
		return 0, false
	}
	return int(v[0]), true
}

// Area estimates the surface area, per requested object id, of a 3-D
// labelled image. For each voxel carrying a requested label, its 6-neighbour
// same-label configuration contributes its classified area weight directly.
// For each voxel that does not carry a requested label (background, or an
// object outside the request set), each requested label found among its
// neighbours contributes the dual (background-side) configuration weight to
// that label's tally, so that an object's surface touching the image edge
// or an unrequested region is not undercounted.
//
// Result values are in units of one voxel-face area; callers scale by the
// image's PixelSize to obtain physical area.
func Area(label rimage.Image, objectIDs []int) (map[int]float64, error) {
	if label.Dimensionality() != 3 {
		return nil, ErrNot3D
	}
	sizes := label.Sizes()
	want := make(map[int]bool, len(objectIDs))
	for _, id := range objectIDs {
		want[id] = true
	}
	tally := make(map[int]float64, len(objectIDs))
	for _, id := range objectIDs {
		tally[id] = 0
	}

	for z := 0; z < sizes[0]; z++ {
		for y := 0; y < sizes[1]; y++ {
			for x := 0; x < sizes[2]; x++ {
				self, ok := scalarAt3D(label, z, y, x, sizes)
				if !ok {
					continue
				}
				if want[self] {
					mask := neighborMask(label, z, y, x, sizes, self)
					tally[self] += areaPerType[configTable[mask]]
					continue
				}
				seen := make(map[int]bool, 6)
				for _, off := range neighborOffsets {
					nv, ok := scalarAt3D(label, z+off[0], y+off[1], x+off[2], sizes)
					if !ok || !want[nv] || seen[nv] {
						continue
					}
					seen[nv] = true
					mask := neighborMask(label, z, y, x, sizes, nv)
					tally[nv] += areaPerType[configTable[mask]]
				}
			}
		}
	}
	return tally, nil
}

func neighborMask(label rimage.Image, z, y, x int, sizes []int, ref int) uint8 {
	var mask uint8
	for i, off := range neighborOffsets {
		nv, ok := scalarAt3D(label, z+off[0], y+off[1], x+off[2], sizes)
		if ok && nv == ref {
			mask |= 1 << uint(i)
		}
	}
	return mask
}
