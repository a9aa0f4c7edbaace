package chaincode

import "errors"

// Sentinel errors for chaincode operations.
var (
	// ErrEmptyChainCode indicates an operation that requires at least one
	// code was given an empty chain.
	ErrEmptyChainCode = errors.New("chaincode: chain code has no directions")
	// ErrMalformedChainCode indicates a chain with exactly one code, which
	// cannot describe a closed boundary.
	ErrMalformedChainCode = errors.New("chaincode: a single-code chain cannot form a closed boundary")
	// ErrNoObjectPixels indicates the requested label was not found when
	// searching for a boundary start pixel.
	ErrNoObjectPixels = errors.New("chaincode: no pixels found for requested label")
	// ErrStartNotOnBoundary indicates GetSingleChainCode was given a
	// starting coordinate that does not belong to the target label.
	ErrStartNotOnBoundary = errors.New("chaincode: start coordinate does not belong to the target label")
)
