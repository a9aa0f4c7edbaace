package geom

import "errors"

// Sentinel errors for geom operations.
var (
	// ErrTooFewVertices indicates an operation needs at least N vertices
	// and the polygon has fewer.
	ErrTooFewVertices = errors.New("geom: polygon has too few vertices")
	// ErrDegenerateGeometry indicates all polygon vertices are collinear,
	// so no convex hull with positive area can be formed.
	ErrDegenerateGeometry = errors.New("geom: polygon vertices are collinear")
	// ErrSelfIntersects indicates Melkman's deque collapsed below two
	// vertices, meaning the input polygon self-intersects.
	ErrSelfIntersects = errors.New("geom: polygon self-intersects")
	// ErrNotEllipse indicates a conic fit's discriminant does not describe
	// an ellipse.
	ErrNotEllipse = errors.New("geom: fitted conic is not an ellipse")
)
