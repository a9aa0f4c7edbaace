package linalg

import (
	"fmt"
	"math"
)

// QR computes the Householder QR decomposition of an m×n matrix (m >= n)
// such that A = Q*R, Q is m×m orthogonal and R is m×n upper-triangular.
// Adapted from a square-only Householder sweep, generalized to rectangular
// systems so it can drive the least-squares ellipse/circle fit (§4.4): the
// reflection loop now runs over min(rows,cols) pivot columns instead of
// assuming rows==cols, and R keeps its full m×n shape instead of being
// truncated to n×n.
//
// Complexity: O(m*m*n) time (updating the explicit m×m Q dominates),
// O(m*m + m*n) memory.
func QR(a *Dense) (q, r *Dense, err error) {
	m, n := a.Rows(), a.Cols()
	if m < n {
		return nil, nil, fmt.Errorf("QR: %d rows < %d cols: %w", m, n, ErrUnderdetermined)
	}
	R := a.Clone().(*Dense)
	Q, err := Identity(m)
	if err != nil {
		return nil, nil, err
	}

	v := make([]float64, m)
	pivots := n
	if m == pivots {
		// square case retains parity with the original teacher routine:
		// the last column needs no reflection.
		pivots = n - 1
	}
	for k := 0; k < pivots; k++ {
		norm := 0.0
		for i := k; i < m; i++ {
			val := R.AtUnchecked(i, k)
			norm += val * val
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue
		}
		pivot := R.AtUnchecked(k, k)
		alpha := -math.Copysign(norm, pivot)

		for i := range v {
			v[i] = 0
		}
		for i := k; i < m; i++ {
			v[i] = R.AtUnchecked(i, k)
		}
		v[k] -= alpha

		beta := 0.0
		for i := k; i < m; i++ {
			beta += v[i] * v[i]
		}
		if beta == 0 {
			continue
		}
		tau := 2.0 / beta

		for j := k; j < n; j++ {
			sum := 0.0
			for i := k; i < m; i++ {
				sum += v[i] * R.AtUnchecked(i, j)
			}
			for i := k; i < m; i++ {
				R.SetUnchecked(i, j, R.AtUnchecked(i, j)-tau*v[i]*sum)
			}
		}
		for j := 0; j < m; j++ {
			sum := 0.0
			for i := k; i < m; i++ {
				sum += v[i] * Q.AtUnchecked(i, j)
			}
			for i := k; i < m; i++ {
				Q.SetUnchecked(i, j, Q.AtUnchecked(i, j)-tau*v[i]*sum)
			}
		}
	}

	// Q currently holds Qᵀ (accumulated reflections applied on the left);
	// transpose once so callers receive A = Q*R directly.
	Qt, err := NewDense(m, m)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			Qt.SetUnchecked(i, j, Q.AtUnchecked(j, i))
		}
	}
	return Qt, R, nil
}

// SolveLeastSquares solves the overdetermined system A*x ≈ b (A is m×n,
// m>=n) in the least-squares sense via QR, used by FitCircle/FitEllipse.
// Returns ErrSingular if any diagonal of R is ~0 (rank-deficient A).
func SolveLeastSquares(a *Dense, b []float64) ([]float64, error) {
	m, n := a.Rows(), a.Cols()
	if len(b) != m {
		return nil, fmt.Errorf("SolveLeastSquares: b has %d entries, want %d: %w", len(b), m, ErrDimensionMismatch)
	}
	q, r, err := QR(a)
	if err != nil {
		return nil, err
	}
	// c = Qᵀ b
	c := make([]float64, m)
	for i := 0; i < m; i++ {
		sum := 0.0
		for k := 0; k < m; k++ {
			sum += q.AtUnchecked(k, i) * b[k]
		}
		c[i] = sum
	}
	// Back-substitute R[0:n,0:n] x = c[0:n].
	x := make([]float64, n)
	const eps = 1e-12
	for i := n - 1; i >= 0; i-- {
		diag := r.AtUnchecked(i, i)
		if math.Abs(diag) < eps {
			return nil, ErrSingular
		}
		sum := c[i]
		for j := i + 1; j < n; j++ {
			sum -= r.AtUnchecked(i, j) * x[j]
		}
		x[i] = sum / diag
	}
	return x, nil
}
