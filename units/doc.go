// Package units implements the physical-quantity system backing every
// measured value: a magnitude paired with a composable unit expression, plus
// the per-dimension PixelSize mapping that declares whether an image's axes
// are calibrated isotropically.
//
// Units compose under multiplication and integer powers (area is length², a
// ratio feature like Convexity is dimensionless). The distinguished unit
// Pixel represents the absence of physical calibration: an uncalibrated
// image reports PixelSize 1 px per axis, and every derived feature still
// carries correct units (pixels, pixels², …) through the same arithmetic.
package units
