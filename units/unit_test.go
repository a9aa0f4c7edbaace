package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnit_MulAndPow(t *testing.T) {
	m := NewUnit("m", 1)
	area := m.Mul(m)
	assert.Equal(t, Unit{"m": 2}, area)
	assert.Equal(t, area, m.Pow(2))
}

func TestUnit_MulCancels(t *testing.T) {
	m := NewUnit("m", 1)
	perM := NewUnit("m", -1)
	assert.True(t, m.Mul(perM).IsDimensionless())
}

func TestUnit_String(t *testing.T) {
	assert.Equal(t, "m²", NewUnit("m", 2).String())
	assert.Equal(t, "", Dimensionless().String())
}

func TestQuantity_AddRejectsMismatch(t *testing.T) {
	a := NewQuantity(1, NewUnit("m", 1))
	b := NewQuantity(1, NewUnit("m", 2))
	_, err := a.Add(b)
	assert.ErrorIs(t, err, ErrIncompatibleUnits)
}

func TestQuantity_Pow(t *testing.T) {
	side := NewQuantity(3, NewUnit("m", 1))
	area := side.Pow(2)
	assert.Equal(t, 9.0, area.Magnitude)
	assert.Equal(t, Unit{"m": 2}, area.Units)
}

func TestPixelSize_IsotropicUncalibrated(t *testing.T) {
	ps := NewUncalibratedPixelSize(3)
	assert.True(t, ps.IsIsotropic())
}

func TestPixelSize_IsotropicAcrossSIPrefix(t *testing.T) {
	ps := PixelSize{
		NewQuantity(1, NewUnit("mm", 1)),
		NewQuantity(1000, NewUnit("um", 1)),
	}
	assert.True(t, ps.IsIsotropic())
}

func TestPixelSize_Anisotropic(t *testing.T) {
	ps := PixelSize{
		NewQuantity(1, NewUnit("mm", 1)),
		NewQuantity(2, NewUnit("mm", 1)),
	}
	assert.False(t, ps.IsIsotropic())
}

func TestPixelSize_Volume(t *testing.T) {
	ps := NewUniformPixelSize(2, NewQuantity(2, NewUnit("m", 1)))
	vol := ps.Volume()
	assert.Equal(t, 4.0, vol.Magnitude)
	assert.Equal(t, Unit{"m": 2}, vol.Units)
}
