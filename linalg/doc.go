// Package linalg provides the small linear-algebra core the measurement
// engine needs: a row-major Dense matrix, a Householder QR usable on
// rectangular systems (least-squares ellipse/circle fitting), and symmetric
// eigendecomposition for packed 2x2, 3x3 and general n×n tensors (moment
// tensors, inertia tensors).
//
// The 2x2/3x3 paths use closed-form formulas (cheap, exact to machine
// precision, no iteration). The general n×n path below n==4 falls back to
// a Jacobi rotation sweep; at n>=4 it defers to gonum's mat.EigenSym, which
// is the ecosystem-idiomatic choice for general symmetric eigendecomposition
// at sizes where a hand-rolled Jacobi sweep stops being the better tool.
//
// None of this package depends on the measurement engine; it is a
// leaf dependency per the engine's stated dependency order.
package linalg
