package rimage

import (
	"fmt"

	"github.com/katalvlaran/rmeasure/units"
)

// Dense is a row-major, dense-array Image. Like the measurement container
// (§4.1), it has a two-phase forge lifecycle: NewDense fixes shape and
// calibration without allocating, and Forge allocates the backing buffer.
// Unlike the measurement container, Dense also accepts pixel values directly
// at construction via NewDenseFromData, which forges immediately.
type Dense struct {
	sizes          []int
	strides        []int
	tensorElements int
	kind           DataKind
	pixelSize      units.PixelSize
	data           []float64
	forged         bool
}

func denseErrorf(op string, base error, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("rimage.Dense.%s: %s: %w", op, msg, base)
}

// computeStrides returns row-major strides (outermost axis first) for the
// given sizes, scaled by tensorElements so that the innermost unit of
// addressing is one full pixel (all channels contiguous).
func computeStrides(sizes []int, tensorElements int) []int {
	strides := make([]int, len(sizes))
	acc := tensorElements
	for i := len(sizes) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= sizes[i]
	}
	return strides
}

// NewDense constructs an unforged Dense image of the given shape. pixelSize
// must have one entry per axis; pass units.NewUncalibratedPixelSize(len(sizes))
// for an uncalibrated image (1 Pixel per axis).
func NewDense(sizes []int, tensorElements int, kind DataKind, pixelSize units.PixelSize) (*Dense, error) {
	if len(sizes) == 0 {
		return nil, denseErrorf("NewDense", ErrEmptySizes, "sizes=%v", sizes)
	}
	for _, s := range sizes {
		if s <= 0 {
			return nil, denseErrorf("NewDense", ErrNonPositiveSize, "sizes=%v", sizes)
		}
	}
	if tensorElements <= 0 {
		tensorElements = 1
	}
	if len(pixelSize) != len(sizes) {
		return nil, denseErrorf("NewDense", ErrPixelSizeDimensionMismatch, "got %d axes, want %d", len(pixelSize), len(sizes))
	}
	sizesCopy := append([]int(nil), sizes...)
	return &Dense{
		sizes:          sizesCopy,
		strides:        computeStrides(sizesCopy, tensorElements),
		tensorElements: tensorElements,
		kind:           kind,
		pixelSize:      pixelSize,
	}, nil
}

// Forge allocates the backing buffer, zero-filled. Idempotent: calling Forge
// on an already-forged image is a no-op that preserves existing data.
func (d *Dense) Forge() {
	if d.forged {
		return
	}
	total := d.tensorElements
	for _, s := range d.sizes {
		total *= s
	}
	d.data = make([]float64, total)
	d.forged = true
}

// NewDenseFromData constructs an already-forged Dense image wrapping the
// given row-major buffer directly (no copy). len(data) must equal the
// product of sizes and tensorElements.
func NewDenseFromData(sizes []int, tensorElements int, kind DataKind, pixelSize units.PixelSize, data []float64) (*Dense, error) {
	img, err := NewDense(sizes, tensorElements, kind, pixelSize)
	if err != nil {
		return nil, err
	}
	want := img.tensorElements
	for _, s := range img.sizes {
		want *= s
	}
	if len(data) != want {
		return nil, denseErrorf("NewDenseFromData", ErrCoordOutOfRange, "got %d values, want %d", len(data), want)
	}
	img.data = data
	img.forged = true
	return img, nil
}

// Sizes returns the extent along each axis.
func (d *Dense) Sizes() []int { return append([]int(nil), d.sizes...) }

// Dimensionality returns the number of axes.
func (d *Dense) Dimensionality() int { return len(d.sizes) }

// Stride returns the linear-index stride for axis dim.
func (d *Dense) Stride(dim int) int { return d.strides[dim] }

// DataType reports the scalar storage kind.
func (d *Dense) DataType() DataKind { return d.kind }

// PixelSize returns the physical calibration quantity for axis dim.
func (d *Dense) PixelSize(dim int) units.Quantity { return d.pixelSize[dim] }

// IsIsotropic reports whether all axes share one physical pixel size.
func (d *Dense) IsIsotropic() bool { return d.pixelSize.IsIsotropic() }

// TensorElements returns the number of channels per pixel.
func (d *Dense) TensorElements() int { return d.tensorElements }

// IsScalar reports TensorElements() == 1.
func (d *Dense) IsScalar() bool { return d.tensorElements == 1 }

// IsForged reports whether Forge (or NewDenseFromData) has allocated storage.
func (d *Dense) IsForged() bool { return d.forged }

// Origin returns the backing []float64 buffer, or nil if unforged.
func (d *Dense) Origin() interface{} {
	if !d.forged {
		return nil
	}
	return d.data
}

// offsetOf computes the linear offset of coords, validating dimensionality
// and bounds.
func (d *Dense) offsetOf(coords []int) (int, error) {
	if len(coords) != len(d.sizes) {
		return 0, denseErrorf("At", ErrCoordDimensionMismatch, "got %d coords, want %d", len(coords), len(d.sizes))
	}
	offset := 0
	for i, c := range coords {
		if c < 0 || c >= d.sizes[i] {
			return 0, denseErrorf("At", ErrCoordOutOfRange, "axis %d: coord %d not in [0,%d)", i, c, d.sizes[i])
		}
		offset += c * d.strides[i]
	}
	return offset, nil
}

// At returns the per-channel values at coords. Returns ErrNotForged if the
// image has no backing storage yet.
func (d *Dense) At(coords []int) ([]float64, error) {
	if !d.forged {
		return nil, denseErrorf("At", ErrNotForged, "sizes=%v", d.sizes)
	}
	offset, err := d.offsetOf(coords)
	if err != nil {
		return nil, err
	}
	return d.data[offset : offset+d.tensorElements], nil
}

// Set writes the per-channel values at coords, forging the image first if
// necessary. len(values) must equal TensorElements().
func (d *Dense) Set(coords []int, values []float64) error {
	if !d.forged {
		d.Forge()
	}
	offset, err := d.offsetOf(coords)
	if err != nil {
		return err
	}
	if len(values) != d.tensorElements {
		return denseErrorf("Set", ErrChannelOutOfRange, "got %d channels, want %d", len(values), d.tensorElements)
	}
	copy(d.data[offset:offset+d.tensorElements], values)
	return nil
}

// AtScalar is a convenience accessor for scalar (TensorElements()==1) images,
// returning the single channel value directly.
func (d *Dense) AtScalar(coords []int) (float64, error) {
	vals, err := d.At(coords)
	if err != nil {
		return 0, err
	}
	return vals[0], nil
}

var _ Image = (*Dense)(nil)
