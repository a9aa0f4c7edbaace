package surface

import "errors"

// ErrNot3D indicates Area was called with an image of dimensionality other
// than 3.
var ErrNot3D = errors.New("surface: image must be 3-dimensional")
