package feature

import (
	"math"

	"github.com/katalvlaran/rmeasure/linalg"
	"github.com/katalvlaran/rmeasure/units"
)

// inertiaEigenFeature reports the eigenvalues of the binary central-moment
// (inertia) tensor.
type inertiaEigenFeature struct{ dim int }

// NewInertiaEigen returns the built-in InertiaEigen feature for objects of
// the given dimensionality.
func NewInertiaEigen(dim int) Feature { return inertiaEigenFeature{dim: dim} }

func (inertiaEigenFeature) Name() string { return "InertiaEigen" }
func (inertiaEigenFeature) Kind() Kind   { return ImageBased }
func (f inertiaEigenFeature) ValueNames() []string {
	names := make([]string, f.dim)
	for i := range names {
		names[i] = "lambda" + axisIndex(i)
	}
	return names
}
func (inertiaEigenFeature) NeedsGrey() bool        { return false }
func (inertiaEigenFeature) Dependencies() []string { return nil }
func (f inertiaEigenFeature) Units(units.PixelSize) []units.Unit { return dimensionlessUnits(f.dim) }

func axisIndex(i int) string {
	digits := "0123456789"
	if i < len(digits) {
		return string(digits[i])
	}
	return "n"
}

func (f inertiaEigenFeature) Measure(obj *ObjectContext) []float64 {
	return eigenvaluesOf(f.dim, obj.Binary.MuPacked())
}

func eigenvaluesOf(dim int, packed []float64) []float64 {
	switch dim {
	case 2:
		var p [3]float64
		copy(p[:], packed)
		lo, hi := linalg.SymmetricEigenValues2DPacked(p)
		return []float64{lo, hi}
	case 3:
		var p [6]float64
		copy(p[:], packed)
		l1, l2, l3 := linalg.SymmetricEigenValues3DPacked(p)
		return []float64{l1, l2, l3}
	default:
		values, _, err := linalg.SymmetricEigenDecompositionPacked(dim, packed, false)
		if err != nil {
			out := make([]float64, dim)
			for i := range out {
				out[i] = 0
			}
			return out
		}
		return values
	}
}

// majorAxesFeature reports the eigenvectors of the binary central-moment
// tensor, flattened row-major (dim vectors of dim components each).
type majorAxesFeature struct{ dim int }

// NewMajorAxes returns the built-in MajorAxes feature for objects of the
// given dimensionality.
func NewMajorAxes(dim int) Feature { return majorAxesFeature{dim: dim} }

func (majorAxesFeature) Name() string { return "MajorAxes" }
func (majorAxesFeature) Kind() Kind   { return ImageBased }
func (f majorAxesFeature) ValueNames() []string {
	names := make([]string, f.dim*f.dim)
	k := 0
	for i := 0; i < f.dim; i++ {
		for j := 0; j < f.dim; j++ {
			names[k] = "v" + axisIndex(i) + axisIndex(j)
			k++
		}
	}
	return names
}
func (majorAxesFeature) NeedsGrey() bool        { return false }
func (majorAxesFeature) Dependencies() []string { return nil }
func (f majorAxesFeature) Units(units.PixelSize) []units.Unit { return dimensionlessUnits(f.dim * f.dim) }

func (f majorAxesFeature) Measure(obj *ObjectContext) []float64 {
	return eigenvectorsOf(f.dim, obj.Binary.MuPacked())
}

func eigenvectorsOf(dim int, packed []float64) []float64 {
	out := make([]float64, dim*dim)
	switch dim {
	case 2:
		var p [3]float64
		copy(p[:], packed)
		_, _, v1, v2 := linalg.SymmetricEigenSystem2DPacked(p)
		out[0], out[1] = v1[0], v1[1]
		out[2], out[3] = v2[0], v2[1]
	case 3:
		var p [6]float64
		copy(p[:], packed)
		_, _, _, v1, v2, v3 := linalg.SymmetricEigenSystem3DPacked(p)
		copy(out[0:3], v1[:])
		copy(out[3:6], v2[:])
		copy(out[6:9], v3[:])
	default:
		_, vecs, err := linalg.SymmetricEigenDecompositionPacked(dim, packed, true)
		if err == nil && vecs != nil {
			k := 0
			for i := 0; i < dim; i++ {
				for j := 0; j < dim; j++ {
					v, _ := vecs.At(i, j)
					out[k] = v
					k++
				}
			}
		}
	}
	return out
}

// greyMuFeature reports the packed upper-triangle grey-weighted central-
// moment tensor.
type greyMuFeature struct{ dim int }

// NewGreyMu returns the built-in GreyMu feature for objects of the given
// dimensionality.
func NewGreyMu(dim int) Feature { return greyMuFeature{dim: dim} }

func (greyMuFeature) Name() string { return "GreyMu" }
func (greyMuFeature) Kind() Kind   { return ImageBased }
func (f greyMuFeature) ValueNames() []string {
	n := f.dim * (f.dim + 1) / 2
	names := make([]string, n)
	k := 0
	for i := 0; i < f.dim; i++ {
		for j := i; j < f.dim; j++ {
			names[k] = "greyMu" + axisLetter(i) + axisLetter(j)
			k++
		}
	}
	return names
}
func (greyMuFeature) NeedsGrey() bool        { return true }
func (greyMuFeature) Dependencies() []string { return nil }
func (f greyMuFeature) Units(units.PixelSize) []units.Unit { return dimensionlessUnits(f.dim * (f.dim + 1) / 2) }

func (f greyMuFeature) Measure(obj *ObjectContext) []float64 {
	if obj.Grey == nil {
		out := make([]float64, f.dim*(f.dim+1)/2)
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}
	return obj.Grey.MuPacked()
}

// greyInertiaEigenFeature reports the eigenvalues of the grey-weighted
// central-moment tensor, GreyMu's shape counterpart to InertiaEigen.
type greyInertiaEigenFeature struct{ dim int }

// NewGreyInertiaEigen returns the built-in GreyInertiaEigen feature for
// objects of the given dimensionality.
func NewGreyInertiaEigen(dim int) Feature { return greyInertiaEigenFeature{dim: dim} }

func (greyInertiaEigenFeature) Name() string { return "GreyInertiaEigen" }
func (greyInertiaEigenFeature) Kind() Kind   { return ImageBased }
func (f greyInertiaEigenFeature) ValueNames() []string {
	names := make([]string, f.dim)
	for i := range names {
		names[i] = "lambda" + axisIndex(i)
	}
	return names
}
func (greyInertiaEigenFeature) NeedsGrey() bool        { return true }
func (greyInertiaEigenFeature) Dependencies() []string { return nil }
func (f greyInertiaEigenFeature) Units(units.PixelSize) []units.Unit {
	return dimensionlessUnits(f.dim)
}

func (f greyInertiaEigenFeature) Measure(obj *ObjectContext) []float64 {
	if obj.Grey == nil {
		out := make([]float64, f.dim)
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}
	return eigenvaluesOf(f.dim, obj.Grey.MuPacked())
}

// greyMajorAxesFeature reports the eigenvectors of the grey-weighted
// central-moment tensor, flattened row-major.
type greyMajorAxesFeature struct{ dim int }

// NewGreyMajorAxes returns the built-in GreyMajorAxes feature for objects of
// the given dimensionality.
func NewGreyMajorAxes(dim int) Feature { return greyMajorAxesFeature{dim: dim} }

func (greyMajorAxesFeature) Name() string { return "GreyMajorAxes" }
func (greyMajorAxesFeature) Kind() Kind   { return ImageBased }
func (f greyMajorAxesFeature) ValueNames() []string {
	names := make([]string, f.dim*f.dim)
	k := 0
	for i := 0; i < f.dim; i++ {
		for j := 0; j < f.dim; j++ {
			names[k] = "v" + axisIndex(i) + axisIndex(j)
			k++
		}
	}
	return names
}
func (greyMajorAxesFeature) NeedsGrey() bool        { return true }
func (greyMajorAxesFeature) Dependencies() []string { return nil }
func (f greyMajorAxesFeature) Units(units.PixelSize) []units.Unit {
	return dimensionlessUnits(f.dim * f.dim)
}

func (f greyMajorAxesFeature) Measure(obj *ObjectContext) []float64 {
	if obj.Grey == nil {
		return make([]float64, f.dim*f.dim)
	}
	return eigenvectorsOf(f.dim, obj.Grey.MuPacked())
}

var (
	_ ImageFeature = inertiaEigenFeature{}
	_ ImageFeature = majorAxesFeature{}
	_ ImageFeature = greyMuFeature{}
	_ ImageFeature = greyInertiaEigenFeature{}
	_ ImageFeature = greyMajorAxesFeature{}
)
