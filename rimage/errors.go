package rimage

import "errors"

// Sentinel errors for rimage operations.
var (
	// ErrEmptySizes indicates a Dense image was constructed with no axes.
	ErrEmptySizes = errors.New("rimage: sizes must have at least one axis")
	// ErrNonPositiveSize indicates an axis length of zero or less.
	ErrNonPositiveSize = errors.New("rimage: every axis size must be positive")
	// ErrCoordDimensionMismatch indicates At() was called with the wrong
	// number of coordinates for the image's dimensionality.
	ErrCoordDimensionMismatch = errors.New("rimage: coordinate count must match dimensionality")
	// ErrCoordOutOfRange indicates a coordinate lies outside [0, size).
	ErrCoordOutOfRange = errors.New("rimage: coordinate out of range")
	// ErrChannelOutOfRange indicates a channel index outside [0, TensorElements).
	ErrChannelOutOfRange = errors.New("rimage: channel out of range")
	// ErrNotForged indicates an operation requiring allocated storage was
	// attempted on an unforged image.
	ErrNotForged = errors.New("rimage: image has not been forged")
	// ErrPixelSizeDimensionMismatch indicates a PixelSize was supplied with
	// an axis count that does not match Dimensionality().
	ErrPixelSizeDimensionMismatch = errors.New("rimage: pixel size axis count must match dimensionality")
)
