package linalg

import "errors"

// Sentinel errors for the linalg package. All algorithms return these
// (wrapped with fmt.Errorf("%s: %w", ...) for context) rather than panicking
// on user-triggered conditions; errors.Is must keep matching the sentinel.
var (
	// ErrInvalidDimensions indicates a requested matrix shape is non-positive.
	ErrInvalidDimensions = errors.New("linalg: dimensions must be > 0")

	// ErrOutOfRange indicates a row/column index outside [0, dim).
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNonSquare signals an operation that requires a square matrix.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrUnderdetermined signals a least-squares system with fewer rows than columns.
	ErrUnderdetermined = errors.New("linalg: system has fewer equations than unknowns")

	// ErrEigenFailed indicates a Jacobi sweep failed to converge within maxIter.
	ErrEigenFailed = errors.New("linalg: eigen decomposition did not converge")

	// ErrSingular marks a zero pivot / zero-norm column encountered during
	// a decomposition that cannot proceed (e.g. QR on a rank-deficient column).
	ErrSingular = errors.New("linalg: singular or rank-deficient system")
)
