package rimage

import "github.com/katalvlaran/rmeasure/units"

// DataKind identifies the scalar storage type of an Image's pixels, mirroring
// the small fixed set a measurement engine actually needs to branch on
// (integer label data vs real-valued grey data).
type DataKind int

const (
	// Int64Kind marks integer-valued images (label images).
	Int64Kind DataKind = iota
	// Float64Kind marks real-valued images (grey/intensity images).
	Float64Kind
)

// String renders the DataKind's name.
func (k DataKind) String() string {
	switch k {
	case Int64Kind:
		return "int64"
	case Float64Kind:
		return "float64"
	default:
		return "unknown"
	}
}

// Image is the n-dimensional container contract consumed by the measurement
// engine (label images and grey images alike). It is deliberately minimal:
// the engine never mutates an Image through this interface, it only reads
// shape, calibration, and pixel values through it.
type Image interface {
	// Sizes returns the extent along each axis, outermost axis first.
	Sizes() []int
	// Dimensionality returns len(Sizes()).
	Dimensionality() int
	// Stride returns the linear-index stride of the given axis.
	Stride(dim int) int
	// DataType reports the scalar storage kind.
	DataType() DataKind
	// PixelSize returns the physical calibration quantity for one axis.
	PixelSize(dim int) units.Quantity
	// IsIsotropic reports whether all axes share one physical pixel size.
	IsIsotropic() bool
	// TensorElements returns the number of channels per pixel (1 for
	// scalar images).
	TensorElements() int
	// IsScalar reports TensorElements() == 1.
	IsScalar() bool
	// IsForged reports whether backing storage has been allocated.
	IsForged() bool
	// Origin returns the image's backing storage, for collaborators that
	// need direct buffer access (e.g. a scan framework). May be nil if
	// unforged.
	Origin() interface{}
	// At returns the per-channel values at the given n-D coordinate.
	At(coords []int) ([]float64, error)
}
