// Package rimage defines the n-dimensional image interface consumed by the
// measurement engine, plus a concrete dense-array implementation used by the
// engine's own tests and by callers that have no richer image library of
// their own to plug in.
//
// What:
//
//   - Image: the n-D container contract (Sizes, Dimensionality, Stride,
//     DataType, PixelSize, IsIsotropic, TensorElements, IsScalar, IsForged,
//     Origin, At) that label images and grey images must satisfy.
//   - Dense: a row-major dense array Image, parameterized over a scalar
//     DataKind, with an explicit forge lifecycle mirroring the measurement
//     container's own (construct unforged, Forge to allocate storage).
//   - GetObjectLabels: the label-connected-component helper the planner
//     uses to enumerate requested object ids.
//
// Why:
//
//   - The core specification (§6) treats Image as an external collaborator:
//     any n-D array library can supply one as long as it satisfies this
//     interface. Dense is the reference implementation this module tests
//     itself against, grounded on the teacher's gridgraph neighbor-offset
//     and connected-component conventions, generalized from 2-D grids to
//     arbitrary dimensionality.
package rimage
