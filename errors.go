package rmeasure

import "errors"

// Sentinel errors for the top-level measurement driver.
var (
	// ErrInvalidInput indicates a malformed Measure call: a label image of
	// the wrong data kind, a grey image whose shape or data kind doesn't
	// match label, or similar input-validation failures.
	ErrInvalidInput = errors.New("rmeasure: invalid input")
	// ErrCycle indicates the requested feature set's dependency graph
	// contains a cycle (a composite feature depends, transitively, on
	// itself).
	ErrCycle = errors.New("rmeasure: feature dependency cycle")
)
