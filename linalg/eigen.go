package linalg

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// jacobiEigen performs the classic cyclic Jacobi rotation sweep on a
// symmetric n×n Dense matrix, returning eigenvalues and the matrix whose
// columns are the corresponding eigenvectors. Kept close to the original
// square-matrix sweep this package was built from; generalized only in that
// callers may invoke it for any n (the spec's 2x2/3x3/general-n packed
// tensors all reduce to this one sweep for n<=3).
func jacobiEigen(a *Dense, tol float64, maxIter int) ([]float64, *Dense, error) {
	n := a.Rows()
	if a.Cols() != n {
		return nil, nil, fmt.Errorf("jacobiEigen: non-square %dx%d: %w", n, a.Cols(), ErrNonSquare)
	}
	A := a.Clone().(*Dense)
	Q, err := Identity(n)
	if err != nil {
		return nil, nil, err
	}

	iter := 0
	for ; iter < maxIter; iter++ {
		maxOff, p, q := 0.0, 0, 0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				off := math.Abs(A.AtUnchecked(i, j))
				if off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		if maxOff < tol {
			break
		}
		aip, aiq, apq := A.AtUnchecked(p, p), A.AtUnchecked(q, q), A.AtUnchecked(p, q)
		theta := (aiq - aip) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		for i := 0; i < n; i++ {
			if i != p && i != q {
				aip2, aiq2 := A.AtUnchecked(i, p), A.AtUnchecked(i, q)
				A.SetUnchecked(i, p, c*aip2-s*aiq2)
				A.SetUnchecked(p, i, c*aip2-s*aiq2)
				A.SetUnchecked(i, q, s*aip2+c*aiq2)
				A.SetUnchecked(q, i, s*aip2+c*aiq2)
			}
		}
		A.SetUnchecked(p, p, c*c*aip-2*c*s*apq+s*s*aiq)
		A.SetUnchecked(q, q, s*s*aip+2*c*s*apq+c*c*aiq)
		A.SetUnchecked(p, q, 0)
		A.SetUnchecked(q, p, 0)

		for i := 0; i < n; i++ {
			qip, qiq := Q.AtUnchecked(i, p), Q.AtUnchecked(i, q)
			Q.SetUnchecked(i, p, c*qip-s*qiq)
			Q.SetUnchecked(i, q, s*qip+c*qiq)
		}
	}
	if iter == maxIter {
		return nil, nil, ErrEigenFailed
	}

	eigs := make([]float64, n)
	for i := 0; i < n; i++ {
		eigs[i] = A.AtUnchecked(i, i)
	}
	return eigs, Q, nil
}

// defaultEigenTol / defaultEigenMaxIter mirror the convergence policy of the original
// Jacobi sweep this code is built from.
const (
	defaultEigenTol     = 1e-12
	defaultEigenMaxIter = 100
)

// SymmetricEigenDecompositionPacked decomposes an n×n symmetric tensor given
// as an upper-triangle packed slice (length n*(n+1)/2). For n<=3 it runs the
// Jacobi sweep directly; for n>=4 it defers to gonum's mat.EigenSym, which
// scales better and avoids re-deriving a robust general eigensolver by hand.
// Eigenvalues are returned ascending; vectors are returned as Dense columns
// when computeVectors is true (nil otherwise).
func SymmetricEigenDecompositionPacked(n int, packed []float64, computeVectors bool) ([]float64, *Dense, error) {
	full, err := unpackSymmetric(n, packed)
	if err != nil {
		return nil, nil, err
	}
	if n <= 3 {
		values, vectors, err := jacobiEigen(full, defaultEigenTol, defaultEigenMaxIter)
		if err != nil {
			return nil, nil, err
		}
		order := argsort(values)
		sortedValues := make([]float64, n)
		var sortedVectors *Dense
		if computeVectors {
			sortedVectors, _ = NewDense(n, n)
		}
		for newIdx, oldIdx := range order {
			sortedValues[newIdx] = values[oldIdx]
			if computeVectors {
				for r := 0; r < n; r++ {
					sortedVectors.SetUnchecked(r, newIdx, vectors.AtUnchecked(r, oldIdx))
				}
			}
		}
		return sortedValues, sortedVectors, nil
	}

	sym := mat.NewSymDense(n, nil)
	k := 0
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, packed[k])
			k++
		}
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(sym, computeVectors); !ok {
		return nil, nil, ErrEigenFailed
	}
	values := eig.Values(nil)
	if !computeVectors {
		return values, nil, nil
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	out, err := NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.SetUnchecked(i, j, vecs.At(i, j))
		}
	}
	return values, out, nil
}

func argsort(v []float64) []int {
	idx := make([]int, len(v))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return v[idx[a]] < v[idx[b]] })
	return idx
}

// SymmetricEigenValues2DPacked returns the ascending eigenvalues of the
// packed 2x2 symmetric tensor [m00, m01, m11] via the closed-form
// quadratic-trace/discriminant formula (exact, no iteration).
func SymmetricEigenValues2DPacked(packed [3]float64) (lo, hi float64) {
	a, b, c := packed[0], packed[1], packed[2]
	mean := (a + c) / 2
	diff := (a - c) / 2
	rad := math.Hypot(diff, b)
	lo, hi = mean-rad, mean+rad
	return
}

// SymmetricEigenSystem2DPacked returns ascending eigenvalues and their unit
// eigenvectors for a packed 2x2 symmetric tensor.
func SymmetricEigenSystem2DPacked(packed [3]float64) (lo, hi float64, vLo, vHi [2]float64) {
	a, b, c := packed[0], packed[1], packed[2]
	lo, hi = SymmetricEigenValues2DPacked(packed)
	vLo = eigvec2(a, b, c, lo)
	vHi = eigvec2(a, b, c, hi)
	return
}

func eigvec2(a, b, c, lambda float64) [2]float64 {
	if b != 0 {
		v := [2]float64{b, lambda - a}
		return normalize2(v)
	}
	if a >= c {
		return [2]float64{1, 0}
	}
	return [2]float64{0, 1}
}

func normalize2(v [2]float64) [2]float64 {
	n := math.Hypot(v[0], v[1])
	if n == 0 {
		return v
	}
	return [2]float64{v[0] / n, v[1] / n}
}

// SymmetricEigenValues3DPacked returns the ascending eigenvalues of a packed
// 3x3 symmetric tensor [m00, m01, m02, m11, m12, m22] using the standard
// trigonometric closed-form solution for the characteristic cubic (Smith's
// algorithm): avoids an iterative solver for the one fixed size the
// inertia/grey-inertia features (§4.6) need most often.
func SymmetricEigenValues3DPacked(packed [6]float64) (l1, l2, l3 float64) {
	m00, m01, m02, m11, m12, m22 := packed[0], packed[1], packed[2], packed[3], packed[4], packed[5]
	trace := m00 + m11 + m22
	q := trace / 3
	b00, b11, b22 := m00-q, m11-q, m22-q
	p2 := b00*b00 + b11*b11 + b22*b22 + 2*(m01*m01+m02*m02+m12*m12)
	p2 /= 6
	if p2 <= 0 {
		return q, q, q
	}
	p := math.Sqrt(p2)

	// B = (A - qI) / p; r = det(B)/2.
	inv := 1.0 / p
	c00, c01, c02 := b00*inv, m01*inv, m02*inv
	c11, c12 := b11*inv, m12*inv
	c22 := b22*inv
	det := c00*(c11*c22-c12*c12) - c01*(c01*c22-c12*c02) + c02*(c01*c12-c11*c02)
	r := det / 2
	if r < -1 {
		r = -1
	} else if r > 1 {
		r = 1
	}
	phi := math.Acos(r) / 3

	eig3 := q + 2*p*math.Cos(phi)
	eig1 := q + 2*p*math.Cos(phi+2*math.Pi/3)
	eig2 := 3*q - eig1 - eig3

	vals := []float64{eig1, eig2, eig3}
	sort.Float64s(vals)
	return vals[0], vals[1], vals[2]
}

// SymmetricEigenSystem3DPacked returns ascending eigenvalues and unit
// eigenvectors for a packed 3x3 symmetric tensor. Eigenvectors for distinct
// eigenvalues are obtained from the cross product of two independent rows of
// (A-λI); degenerate (repeated eigenvalue) tensors fall back to the general
// Jacobi sweep, which handles the degenerate subspace robustly.
func SymmetricEigenSystem3DPacked(packed [6]float64) (l1, l2, l3 float64, v1, v2, v3 [3]float64) {
	l1, l2, l3 = SymmetricEigenValues3DPacked(packed)
	const eps = 1e-9
	if math.Abs(l1-l2) < eps || math.Abs(l2-l3) < eps || math.Abs(l1-l3) < eps {
		full, _ := unpackSymmetric(3, packed[:])
		values, vectors, err := jacobiEigen(full, defaultEigenTol, defaultEigenMaxIter)
		if err == nil {
			order := argsort(values)
			l1, l2, l3 = values[order[0]], values[order[1]], values[order[2]]
			v1 = [3]float64{vectors.AtUnchecked(0, order[0]), vectors.AtUnchecked(1, order[0]), vectors.AtUnchecked(2, order[0])}
			v2 = [3]float64{vectors.AtUnchecked(0, order[1]), vectors.AtUnchecked(1, order[1]), vectors.AtUnchecked(2, order[1])}
			v3 = [3]float64{vectors.AtUnchecked(0, order[2]), vectors.AtUnchecked(1, order[2]), vectors.AtUnchecked(2, order[2])}
			return
		}
	}
	m00, m01, m02, m11, m12, m22 := packed[0], packed[1], packed[2], packed[3], packed[4], packed[5]
	v1 = eigvec3(m00, m01, m02, m11, m12, m22, l1)
	v2 = eigvec3(m00, m01, m02, m11, m12, m22, l2)
	v3 = eigvec3(m00, m01, m02, m11, m12, m22, l3)
	return
}

// eigvec3 finds a unit null vector of (A - lambda*I) via two cross products
// of rows, picking the largest-magnitude candidate for numerical stability.
func eigvec3(m00, m01, m02, m11, m12, m22, lambda float64) [3]float64 {
	a00, a11, a22 := m00-lambda, m11-lambda, m22-lambda
	r0 := [3]float64{a00, m01, m02}
	r1 := [3]float64{m01, a11, m12}
	r2 := [3]float64{m02, m12, a22}

	candidates := [][3]float64{cross3(r0, r1), cross3(r0, r2), cross3(r1, r2)}
	best, bestNorm := [3]float64{0, 0, 1}, -1.0
	for _, c := range candidates {
		n := c[0]*c[0] + c[1]*c[1] + c[2]*c[2]
		if n > bestNorm {
			bestNorm, best = n, c
		}
	}
	return normalize3(best)
}

func cross3(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize3(v [3]float64) [3]float64 {
	n := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if n == 0 {
		return v
	}
	return [3]float64{v[0] / n, v[1] / n, v[2] / n}
}
