package units

import "math"

// siPrefixExponent maps a recognised SI prefix symbol to its power-of-ten
// exponent, for isotropy checks that should tolerate e.g. "1 mm" vs
// "1000 nm" describing the same calibrated pixel size.
var siPrefixExponent = map[string]int{
	"p": -12, "n": -9, "u": -6, "µ": -6, "m": -3, "c": -2, "d": -1,
	"": 0,
	"da": 1, "h": 2, "k": 3, "M": 6, "G": 9, "T": 12,
}

// baseSymbol strips a recognised SI prefix from unit symbol sym (e.g. "mm"
// -> "m", exponent -3) when the remainder is a known base ("m", "s", "g").
// Symbols with no recognised prefix/base pair (notably Pixel) pass through
// unchanged with exponent 0.
func baseSymbol(sym string) (base string, exp int) {
	knownBases := []string{"m", "s", "g"}
	for _, b := range knownBases {
		if sym == b {
			return b, 0
		}
		if len(sym) > len(b) && sym[len(sym)-len(b):] == b {
			prefix := sym[:len(sym)-len(b)]
			if e, ok := siPrefixExponent[prefix]; ok {
				return b, e
			}
		}
	}
	return sym, 0
}

// PixelSize maps each image dimension to the physical Quantity spanned by
// one pixel along that axis. An uncalibrated image uses 1 Pixel per axis.
type PixelSize []Quantity

// NewUniformPixelSize builds an n-dimensional isotropic PixelSize where
// every axis spans the same Quantity.
func NewUniformPixelSize(n int, per Quantity) PixelSize {
	ps := make(PixelSize, n)
	for i := range ps {
		ps[i] = per
	}
	return ps
}

// NewUncalibratedPixelSize returns an n-dimensional PixelSize of 1 Pixel per
// axis, the "no physical calibration" default.
func NewUncalibratedPixelSize(n int) PixelSize {
	return NewUniformPixelSize(n, NewQuantity(1, NewUnit(Pixel, 1)))
}

// IsIsotropic reports whether every axis shares the same unit base (after SI
// prefix normalization) and the same physically-normalized magnitude.
// An empty or single-axis PixelSize is trivially isotropic.
func (ps PixelSize) IsIsotropic() bool {
	if len(ps) <= 1 {
		return true
	}
	ref, ok := ps[0].normalizedSingleAxis()
	if !ok {
		return false
	}
	for _, q := range ps[1:] {
		v, ok := q.normalizedSingleAxis()
		if !ok || v.base != ref.base {
			return false
		}
		if math.Abs(v.canonical-ref.canonical) > 1e-9*math.Max(1, math.Abs(ref.canonical)) {
			return false
		}
	}
	return true
}

type normalizedAxis struct {
	base      string
	canonical float64 // magnitude expressed in the unprefixed base unit
}

// normalizedSingleAxis requires the axis quantity to carry exactly one unit
// base raised to the first power (a linear pixel pitch), returning false
// otherwise (e.g. an already-squared area quantity cannot be compared for
// per-axis isotropy).
func (q Quantity) normalizedSingleAxis() (normalizedAxis, bool) {
	if len(q.Units) != 1 {
		return normalizedAxis{}, false
	}
	for sym, exp := range q.Units {
		if exp != 1 {
			return normalizedAxis{}, false
		}
		base, siExp := baseSymbol(sym)
		return normalizedAxis{base: base, canonical: q.Magnitude * math.Pow(10, float64(siExp))}, true
	}
	return normalizedAxis{}, false
}

// Volume returns the Quantity of the voxel/pixel cell spanned by all axes
// (the product of every per-axis pitch): area in 2-D, volume in 3-D.
func (ps PixelSize) Volume() Quantity {
	out := DimensionlessQuantity(1)
	for _, q := range ps {
		out = out.Mul(q)
	}
	return out
}
