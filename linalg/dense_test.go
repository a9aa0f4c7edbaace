package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_RejectsNonPositive(t *testing.T) {
	_, err := NewDense(0, 3)
	require.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestDense_SetAtRoundTrip(t *testing.T) {
	m, err := NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 1, 9.5))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 9.5, v)
}

func TestDense_OutOfRange(t *testing.T) {
	m, _ := NewDense(2, 2)
	_, err := m.At(5, 0)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestDense_Clone_Independent(t *testing.T) {
	m, _ := NewDense(1, 1)
	m.Set(0, 0, 1)
	c := m.Clone()
	m.Set(0, 0, 2)
	v, _ := c.At(0, 0)
	assert.Equal(t, 1.0, v)
}

func TestUnpackSymmetric(t *testing.T) {
	d, err := unpackSymmetric(2, []float64{1, 2, 3})
	require.NoError(t, err)
	v01, _ := d.At(0, 1)
	v10, _ := d.At(1, 0)
	assert.Equal(t, v01, v10)
	assert.Equal(t, 2.0, v01)
}
