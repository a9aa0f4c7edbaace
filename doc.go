// Package rmeasure measures labelled regions in n-dimensional images.
//
// Given a label image (one integer id per object, 0 for background) and an
// optional grey image of matching shape, MeasurementTool.Measure computes a
// requested set of size, shape, intensity, and moment features per object
// and returns them as a measure.Measurement — a dense object-by-value result
// table with a forge lifecycle, CSV/text-table export, an outer join, and
// row filtering by feature value.
//
// Under the hood, everything is organized under subpackages, each owning
// one concern:
//
//	rimage/      — the n-dimensional Image contract, a dense implementation, and the raster scan driver
//	chaincode/   — 2-D boundary extraction, Feret/radius/bending-energy metrics, polygon conversion
//	surface/     — 3-D voxel-face-area LUT engine for the SurfaceArea feature
//	geom/        — polygon and convex-hull geometry (Melkman hull, rotating callipers, RDP simplify, circle/ellipse fit)
//	accum/       — streaming per-object accumulators (moments, extrema, directional and sample statistics)
//	linalg/      — symmetric eigendecomposition for 2-D/3-D/n-D moment tensors
//	feature/     — the five-kind feature taxonomy, the built-in ~35-entry catalogue, and the registry
//	measure/     — the Measurement result container and its free functions (statistics, CSV, LabelMap)
//	units/       — dimensional quantities and per-axis pixel calibration
//
// Measure is single-threaded within one call: the raster scan explicitly
// runs sequentially because line-based features hold mutable per-object
// scratch state that a concurrent scan would race on. See MeasurementTool
// for the entry point.
package rmeasure
