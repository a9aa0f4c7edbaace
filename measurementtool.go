package rmeasure

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rmeasure/chaincode"
	"github.com/katalvlaran/rmeasure/feature"
	"github.com/katalvlaran/rmeasure/measure"
	"github.com/katalvlaran/rmeasure/rimage"
	"github.com/katalvlaran/rmeasure/units"
)

// MeasurementTool owns the feature registry and drives Measure, the
// region-measurement protocol's single entry point (§4.2).
type MeasurementTool struct {
	registry *feature.Registry
}

// NewMeasurementTool returns a tool pre-populated with the built-in feature
// catalogue (38 entries) sized for images of the given dimensionality.
func NewMeasurementTool(dim int) (*MeasurementTool, error) {
	reg, err := feature.NewBuiltinRegistry(dim)
	if err != nil {
		return nil, fmt.Errorf("NewMeasurementTool: %w", err)
	}
	return &MeasurementTool{registry: reg}, nil
}

// Register adds a user-defined feature to the tool's registry.
func (mt *MeasurementTool) Register(f feature.Feature) error {
	return mt.registry.Register(f)
}

// Known reports whether name is registered.
func (mt *MeasurementTool) Known(name string) bool {
	return mt.registry.Known(name)
}

// Lookup returns the registered feature for name.
func (mt *MeasurementTool) Lookup(name string) (feature.Feature, error) {
	return mt.registry.Lookup(name)
}

// Measure executes the measurement planner and driver protocol (§4.2):
// validate inputs, enumerate objects, resolve the feature dependency
// closure, forge the result, run the four evaluator passes in order, scale,
// and return. A validation or lookup failure aborts before any allocation
// and returns no partial result.
func (mt *MeasurementTool) Measure(
	label rimage.Image,
	grey rimage.Image,
	requestedFeatureNames []string,
	objectIDs []int,
	connectivity chaincode.Connectivity,
) (*measure.Measurement, error) {
	// 1. Input validation.
	if label == nil {
		return nil, fmt.Errorf("Measure: label is nil: %w", ErrInvalidInput)
	}
	if label.DataType() != rimage.Int64Kind {
		return nil, fmt.Errorf("Measure: label must be an integer-valued image: %w", ErrInvalidInput)
	}
	hasGrey := grey != nil
	if hasGrey {
		if grey.DataType() != rimage.Float64Kind {
			return nil, fmt.Errorf("Measure: grey must be a real-valued image: %w", ErrInvalidInput)
		}
		if !sameSizes(label.Sizes(), grey.Sizes()) {
			return nil, fmt.Errorf("Measure: grey and label sizes differ: %w", ErrInvalidInput)
		}
	}
	dim := label.Dimensionality()

	// 2. Object enumeration.
	ids := objectIDs
	if len(ids) == 0 {
		enumerated, err := rimage.GetObjectLabels(label, nil, true)
		if err != nil {
			return nil, fmt.Errorf("Measure: enumerating objects: %w", err)
		}
		ids = enumerated
	}

	// 3. Feature-graph closure.
	features, err := resolveClosure(mt.registry, requestedFeatureNames, hasGrey)
	if err != nil {
		return nil, err
	}

	pixelSize := make(units.PixelSize, dim)
	for d := 0; d < dim; d++ {
		pixelSize[d] = label.PixelSize(d)
	}

	// 4. Forge. Each feature's per-value units are resolved against the
	// image's calibration up front, so FeatureRecord.Units (read by
	// measure/table.go and measure/csv.go) carries the same unit Scale
	// actually produces, rather than a permanent Dimensionless() stand-in.
	m := measure.New()
	for _, f := range features {
		if err := m.AddFeature(f.Name(), f.ValueNames(), f.Units(pixelSize)); err != nil {
			return nil, fmt.Errorf("Measure: %w", err)
		}
	}
	if err := m.AddObjectIDs(ids); err != nil {
		return nil, fmt.Errorf("Measure: %w", err)
	}
	if err := m.Forge(); err != nil {
		return nil, fmt.Errorf("Measure: %w", err)
	}

	objCtx := make(map[int]*feature.ObjectContext, len(ids))
	for _, id := range ids {
		objCtx[id] = feature.NewObjectContext(id, dim, pixelSize, hasGrey)
	}
	wanted := make(map[int]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	lineFeatures, imageFeatures, chainFeatures, polygonFeatures, hullFeatures, compositeFeatures := partitionByKind(features)

	// 5a. Line-based pass. Always runs: the raster scan feeds the shared
	// per-object accumulators (Binary, Grey, Max, Min, bounding box) that
	// the image-based pass reads, even when no line-based feature itself
	// was requested.
	if err := runLinePass(label, grey, hasGrey, ids, wanted, objCtx, lineFeatures, m); err != nil {
		return nil, fmt.Errorf("Measure: line pass: %w", err)
	}

	// 5b. Image-based pass. SurfaceArea needs a whole-image precompute (its
	// value depends on voxel neighbours, not anything the raster scan's
	// single-pixel accumulation exposes), so it runs just before the rest
	// of the image-based features read ObjectContext.
	if dim == 3 && declaresFeature(imageFeatures, "SurfaceArea") {
		if err := runSurfacePass(label, ids, objCtx); err != nil {
			return nil, fmt.Errorf("Measure: %w", err)
		}
	}
	for _, f := range imageFeatures {
		img := f.(feature.ImageFeature)
		for _, id := range ids {
			values := img.Measure(objCtx[id])
			if err := m.SetRowFeature(id, f.Name(), values); err != nil {
				return nil, fmt.Errorf("Measure: image pass %q: %w", f.Name(), err)
			}
			objCtx[id].SetValues(f.Name(), values)
		}
	}

	// 5c. Chain-code / polygon / convex-hull pass.
	needsGeometry := len(chainFeatures)+len(polygonFeatures)+len(hullFeatures) > 0
	if needsGeometry && dim == 2 {
		if err := runGeometryPass(label, ids, connectivity, objCtx, chainFeatures, polygonFeatures, hullFeatures, m); err != nil {
			return nil, fmt.Errorf("Measure: geometry pass: %w", err)
		}
	}

	// 5d. Composite pass. Composites are ordered so a composite that
	// depends on another composite is always evaluated after it, even if
	// the closure's enqueue order declared them the other way round.
	for _, f := range orderComposites(compositeFeatures) {
		comp := f.(feature.CompositeFeature)
		for _, id := range ids {
			values := comp.Compose(objCtx[id])
			if err := m.SetRowFeature(id, f.Name(), values); err != nil {
				return nil, fmt.Errorf("Measure: composite pass %q: %w", f.Name(), err)
			}
			objCtx[id].SetValues(f.Name(), values)
		}
	}

	// 6. Scale pass.
	for _, f := range features {
		scalable, ok := f.(feature.Scalable)
		if !ok {
			continue
		}
		for _, id := range ids {
			raw, err := m.RowFeature(id, f.Name())
			if err != nil {
				return nil, fmt.Errorf("Measure: scale pass %q: %w", f.Name(), err)
			}
			if err := m.SetRowFeature(id, f.Name(), scalable.Scale(pixelSize, raw)); err != nil {
				return nil, fmt.Errorf("Measure: scale pass %q: %w", f.Name(), err)
			}
		}
	}

	// 7. Cleanup: per-object scratch state (objCtx, line-feature Scratch
	// values) falls out of scope here and is reclaimed by the garbage
	// collector; nothing references it past this point.
	return m, nil
}

func sameSizes(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func partitionByKind(features []feature.Feature) (line, image, chain, polygon, hull, composite []feature.Feature) {
	for _, f := range features {
		switch f.Kind() {
		case feature.LineBased:
			line = append(line, f)
		case feature.ImageBased:
			image = append(image, f)
		case feature.ChainCodeBased:
			chain = append(chain, f)
		case feature.PolygonBased:
			polygon = append(polygon, f)
		case feature.ConvexHullBased:
			hull = append(hull, f)
		case feature.CompositeKind:
			composite = append(composite, f)
		}
	}
	return
}

// orderComposites topologically sorts composites by their composite-to-
// composite dependency edges (a composite's non-composite dependencies are
// always resolved by an earlier pass already, so they don't factor in).
func orderComposites(composites []feature.Feature) []feature.Feature {
	byName := make(map[string]feature.Feature, len(composites))
	for _, f := range composites {
		byName[f.Name()] = f
	}
	visited := make(map[string]bool, len(composites))
	out := make([]feature.Feature, 0, len(composites))
	var visit func(f feature.Feature)
	visit = func(f feature.Feature) {
		if visited[f.Name()] {
			return
		}
		visited[f.Name()] = true
		for _, dep := range f.Dependencies() {
			if depFeature, ok := byName[dep]; ok {
				visit(depFeature)
			}
		}
		out = append(out, f)
	}
	for _, f := range composites {
		visit(f)
	}
	return out
}

func declaresFeature(features []feature.Feature, name string) bool {
	for _, f := range features {
		if f.Name() == name {
			return true
		}
	}
	return false
}

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
