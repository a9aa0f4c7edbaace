package rmeasure

import (
	"fmt"

	"github.com/katalvlaran/rmeasure/chaincode"
	"github.com/katalvlaran/rmeasure/feature"
	"github.com/katalvlaran/rmeasure/measure"
	"github.com/katalvlaran/rmeasure/rimage"
)

// runGeometryPass produces one chain code per object, then lazily derives a
// polygon (only if some polygon- or convex-hull-based feature was
// requested) and a convex hull (only if some convex-hull-based feature was
// requested), dispatching to each feature's Measure in turn. A polygon or
// hull that fails to construct yields nan in every affected polygon
// feature's values rather than aborting the call (hull features already
// handle a nil hull themselves per their Measure contract).
func runGeometryPass(
	label rimage.Image,
	ids []int,
	connectivity chaincode.Connectivity,
	objCtx map[int]*feature.ObjectContext,
	chainFeatures, polygonFeatures, hullFeatures []feature.Feature,
	m *measure.Measurement,
) error {
	codes, err := chaincode.GetImageChainCodes(label, ids, connectivity)
	if err != nil {
		return err
	}
	needsPolygon := len(polygonFeatures)+len(hullFeatures) > 0
	needsHull := len(hullFeatures) > 0

	for i, id := range ids {
		cc := codes[i]
		ctx := objCtx[id]
		ctx.ChainCode = cc

		for _, f := range chainFeatures {
			values := f.(feature.ChainCodeFeature).Measure(ctx, cc)
			if err := m.SetRowFeature(id, f.Name(), values); err != nil {
				return fmt.Errorf("%q: %w", f.Name(), err)
			}
			ctx.SetValues(f.Name(), values)
		}

		if needsPolygon {
			if p, polyErr := cc.Polygon(); polyErr == nil {
				ctx.Polygon = p
			}
		}

		for _, f := range polygonFeatures {
			var values []float64
			if ctx.Polygon == nil {
				values = nanSlice(len(f.ValueNames()))
			} else {
				values = f.(feature.PolygonFeature).Measure(ctx, ctx.Polygon)
			}
			if err := m.SetRowFeature(id, f.Name(), values); err != nil {
				return fmt.Errorf("%q: %w", f.Name(), err)
			}
			ctx.SetValues(f.Name(), values)
		}

		if needsHull && ctx.Polygon != nil {
			if h, hullErr := ctx.Polygon.ConvexHull(); hullErr == nil {
				ctx.ConvexHull = h
			}
		}

		for _, f := range hullFeatures {
			values := f.(feature.ConvexHullFeature).Measure(ctx, ctx.ConvexHull)
			if err := m.SetRowFeature(id, f.Name(), values); err != nil {
				return fmt.Errorf("%q: %w", f.Name(), err)
			}
			ctx.SetValues(f.Name(), values)
		}
	}

	return nil
}
