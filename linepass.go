package rmeasure

import (
	"fmt"

	"github.com/katalvlaran/rmeasure/feature"
	"github.com/katalvlaran/rmeasure/measure"
	"github.com/katalvlaran/rmeasure/rimage"
)

// runLinePass performs the single raster scan over label (and grey, if
// present), feeding every object's shared ObjectContext accumulators and
// every line-based feature's per-object Scratch. A pixel whose label value
// is not in wanted is skipped silently (§4.2, failure semantics).
func runLinePass(
	label rimage.Image,
	grey rimage.Image,
	hasGrey bool,
	ids []int,
	wanted map[int]bool,
	objCtx map[int]*feature.ObjectContext,
	lineFeatures []feature.Feature,
	m *measure.Measurement,
) error {
	scratches := make(map[int]map[string]feature.Scratch, len(objCtx))
	for id := range objCtx {
		perObject := make(map[string]feature.Scratch, len(lineFeatures))
		for _, f := range lineFeatures {
			perObject[f.Name()] = f.(feature.LineFeature).NewScratch()
		}
		scratches[id] = perObject
	}

	sizes := label.Sizes()
	coords := make([]int, len(sizes))
	coordsF := make([]float64, len(sizes))

	var walk func(axis int) error
	walk = func(axis int) error {
		if axis == len(sizes) {
			labelVal, err := label.At(coords)
			if err != nil {
				return err
			}
			id := int(labelVal[0])
			if id == 0 || !wanted[id] {
				return nil
			}
			greyVal := 0.0
			if hasGrey {
				gv, err := grey.At(coords)
				if err != nil {
					return err
				}
				greyVal = gv[0]
			}
			for i, c := range coords {
				coordsF[i] = float64(c)
			}
			ctx := objCtx[id]
			ctx.PushPixel(append([]float64(nil), coordsF...), greyVal, hasGrey)
			for _, s := range scratches[id] {
				s.Push(coordsF, greyVal, hasGrey)
			}
			return nil
		}
		for c := 0; c < sizes[axis]; c++ {
			coords[axis] = c
			if err := walk(axis + 1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(0); err != nil {
		return err
	}

	// Result is read once per object, in row-index (insertion) order.
	for _, f := range lineFeatures {
		for _, id := range ids {
			values := scratches[id][f.Name()].Result()
			if err := m.SetRowFeature(id, f.Name(), values); err != nil {
				return fmt.Errorf("%q: %w", f.Name(), err)
			}
			objCtx[id].SetValues(f.Name(), values)
		}
	}
	return nil
}
