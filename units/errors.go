package units

import "errors"

// Sentinel errors for the units package.
var (
	// ErrIncompatibleUnits indicates an operation (e.g. Add) was attempted
	// between quantities whose unit expressions differ.
	ErrIncompatibleUnits = errors.New("units: incompatible unit expressions")

	// ErrEmptyPixelSize indicates PixelSize was built with zero dimensions.
	ErrEmptyPixelSize = errors.New("units: pixel size must cover at least one dimension")
)
