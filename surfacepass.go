package rmeasure

import (
	"fmt"

	"github.com/katalvlaran/rmeasure/feature"
	"github.com/katalvlaran/rmeasure/rimage"
	"github.com/katalvlaran/rmeasure/surface"
)

// runSurfacePass computes the 3-D voxel-face-area tally for every object in
// one whole-image sweep (package surface) and stashes each object's value
// on its ObjectContext, ahead of the image-based pass. Called only when
// label is 3-D and SurfaceArea was requested; objects of any other
// dimensionality simply never get HasSurfaceArea set, so the feature
// reports nan for them.
func runSurfacePass(label rimage.Image, ids []int, objCtx map[int]*feature.ObjectContext) error {
	tally, err := surface.Area(label, ids)
	if err != nil {
		return fmt.Errorf("surface pass: %w", err)
	}
	for _, id := range ids {
		objCtx[id].SetSurfaceArea(tally[id])
	}
	return nil
}
