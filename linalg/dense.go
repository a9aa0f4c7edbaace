package linalg

import "fmt"

// Matrix is a two-dimensional mutable array of float64 values. Algorithms in
// this package operate against the interface so callers may supply their own
// storage, but Dense is the only implementation this module needs.
type Matrix interface {
	Rows() int
	Cols() int
	At(i, j int) (float64, error)
	Set(i, j int, v float64) error
	Clone() Matrix
}

// Dense is a row-major matrix backed by a flat slice for cache-friendly
// tight loops in QR and Jacobi.
type Dense struct {
	r, c int
	data []float64
}

var _ Matrix = (*Dense)(nil)

// denseErrorf wraps an underlying error with method/index context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense allocates an r×c zero matrix.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}
	return m, nil
}

func (m *Dense) Rows() int { return m.r }
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}
	return row*m.c + col, nil
}

func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf("At", row, col, err)
	}
	return m.data[off], nil
}

// AtUnchecked returns the element at (row, col) without bounds checking, for
// hot inner loops that have already validated their index range.
func (m *Dense) AtUnchecked(row, col int) float64 { return m.data[row*m.c+col] }

func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf("Set", row, col, err)
	}
	m.data[off] = v
	return nil
}

func (m *Dense) SetUnchecked(row, col int, v float64) { m.data[row*m.c+col] = v }

// Clone returns a deep, independent copy.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)
	return &Dense{r: m.r, c: m.c, data: cp}
}

// Col returns a copy of column j.
func (m *Dense) Col(j int) []float64 {
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}
	return out
}

// unpackSymmetric expands an upper-triangle row-major packed symmetric
// tensor (length n*(n+1)/2) into a full n×n Dense matrix.
func unpackSymmetric(n int, packed []float64) (*Dense, error) {
	want := n * (n + 1) / 2
	if len(packed) != want {
		return nil, fmt.Errorf("linalg: packed symmetric tensor of size %d needs %d entries, got %d: %w", n, want, len(packed), ErrDimensionMismatch)
	}
	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	k := 0
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			d.SetUnchecked(i, j, packed[k])
			d.SetUnchecked(j, i, packed[k])
			k++
		}
	}
	return d, nil
}
