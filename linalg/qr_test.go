package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQR_ReconstructsOverdetermined(t *testing.T) {
	a, _ := NewDense(3, 2)
	vals := [][2]float64{{1, 1}, {1, 2}, {1, 3}}
	for i, row := range vals {
		a.Set(i, 0, row[0])
		a.Set(i, 1, row[1])
	}
	q, r, err := QR(a)
	require.NoError(t, err)
	require.Equal(t, 3, q.Rows())
	require.Equal(t, 3, q.Cols())

	// Recompose Q*R and compare against A.
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				qv, _ := q.At(i, k)
				rv, _ := r.At(k, j)
				sum += qv * rv
			}
			av, _ := a.At(i, j)
			assert.InDelta(t, av, sum, 1e-9)
		}
	}
}

func TestQR_RejectsUnderdetermined(t *testing.T) {
	a, _ := NewDense(2, 3)
	_, _, err := QR(a)
	require.ErrorIs(t, err, ErrUnderdetermined)
}

func TestSolveLeastSquares_FitsLine(t *testing.T) {
	// Fit y = m*x + b to points (0,1), (1,3), (2,5): exact line y=2x+1.
	a, _ := NewDense(3, 2)
	b := []float64{1, 3, 5}
	xs := []float64{0, 1, 2}
	for i, x := range xs {
		a.Set(i, 0, x)
		a.Set(i, 1, 1)
	}
	x, err := SolveLeastSquares(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, x[0], 1e-6)
	assert.InDelta(t, 1.0, x[1], 1e-6)
}
