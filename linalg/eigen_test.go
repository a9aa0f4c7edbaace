package linalg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymmetricEigenValues2DPacked_Diagonal(t *testing.T) {
	lo, hi := SymmetricEigenValues2DPacked([3]float64{2, 0, 5})
	assert.InDelta(t, 2.0, lo, 1e-9)
	assert.InDelta(t, 5.0, hi, 1e-9)
}

func TestSymmetricEigenSystem2DPacked_Orthogonal(t *testing.T) {
	lo, hi, vLo, vHi := SymmetricEigenSystem2DPacked([3]float64{3, 1, 3})
	assert.InDelta(t, 2.0, lo, 1e-9)
	assert.InDelta(t, 4.0, hi, 1e-9)
	dot := vLo[0]*vHi[0] + vLo[1]*vHi[1]
	assert.InDelta(t, 0.0, dot, 1e-9)
}

func TestSymmetricEigenValues3DPacked_Diagonal(t *testing.T) {
	l1, l2, l3 := SymmetricEigenValues3DPacked([6]float64{1, 0, 0, 2, 0, 3})
	assert.InDelta(t, 1.0, l1, 1e-9)
	assert.InDelta(t, 2.0, l2, 1e-9)
	assert.InDelta(t, 3.0, l3, 1e-9)
}

func TestSymmetricEigenSystem3DPacked_MatchesDefinition(t *testing.T) {
	packed := [6]float64{4, 1, 0, 3, 1, 2}
	l1, l2, l3, v1, v2, v3 := SymmetricEigenSystem3DPacked(packed)
	for _, pair := range []struct {
		lambda float64
		v      [3]float64
	}{{l1, v1}, {l2, v2}, {l3, v3}} {
		res := applySym3(packed, pair.v)
		for i := 0; i < 3; i++ {
			assert.InDelta(t, pair.lambda*pair.v[i], res[i], 1e-6)
		}
	}
}

func applySym3(packed [6]float64, v [3]float64) [3]float64 {
	m00, m01, m02, m11, m12, m22 := packed[0], packed[1], packed[2], packed[3], packed[4], packed[5]
	return [3]float64{
		m00*v[0] + m01*v[1] + m02*v[2],
		m01*v[0] + m11*v[1] + m12*v[2],
		m02*v[0] + m12*v[1] + m22*v[2],
	}
}

func TestSymmetricEigenDecompositionPacked_GeneralN(t *testing.T) {
	n := 4
	packed := make([]float64, n*(n+1)/2)
	k := 0
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if i == j {
				packed[k] = float64(i + 1)
			}
			k++
		}
	}
	values, vectors, err := SymmetricEigenDecompositionPacked(n, packed, true)
	require.NoError(t, err)
	require.Len(t, values, n)
	for i := 0; i < n; i++ {
		assert.InDelta(t, float64(i+1), values[i], 1e-6)
	}
	require.NotNil(t, vectors)
}

func TestSymmetricEigenDecompositionPacked_BadLength(t *testing.T) {
	_, _, err := SymmetricEigenDecompositionPacked(3, []float64{1, 2}, false)
	require.Error(t, err)
}

func TestJacobiEigenConverges(t *testing.T) {
	a, _ := NewDense(2, 2)
	a.Set(0, 0, 2)
	a.Set(0, 1, 1)
	a.Set(1, 0, 1)
	a.Set(1, 1, 2)
	values, _, err := jacobiEigen(a, defaultEigenTol, defaultEigenMaxIter)
	require.NoError(t, err)
	sum := values[0] + values[1]
	assert.InDelta(t, 4.0, sum, 1e-9)
	assert.True(t, math.Abs(values[0]-values[1]) > 0)
}
