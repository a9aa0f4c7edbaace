// Package geom implements the 2-D polygon and convex-hull machinery the
// measurement engine builds shape features on: signed area and centroid,
// Ramer-Douglas-Peucker simplification, uniform edge subdivision, periodic
// Gaussian smoothing, ray-cast point containment, Melkman's on-line convex
// hull algorithm, convex-hull Feret diameters by exhaustive search, and
// least-squares circle/ellipse fitting via linalg's QR solver.
package geom
