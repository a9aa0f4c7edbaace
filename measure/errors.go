package measure

import "errors"

// Sentinel errors for the measure package, matching spec.md's error taxonomy.
var (
	// ErrFeatureArityMismatch is returned when an outer join finds the same
	// feature name declared with a different number of value columns.
	ErrFeatureArityMismatch = errors.New("measure: feature arity mismatch")
	// ErrIO is returned on CSV file open/write failure.
	ErrIO = errors.New("measure: io error")
	// ErrInvalidFlag is returned for an unrecognised CSV option.
	ErrInvalidFlag = errors.New("measure: invalid flag")
	// ErrAlreadyForged is returned when structural mutation is attempted
	// after Forge.
	ErrAlreadyForged = errors.New("measure: already forged")
	// ErrNotForged is returned when a post-forge operation runs before Forge.
	ErrNotForged = errors.New("measure: not forged")
	// ErrDuplicateFeature is returned when AddFeature reuses an existing name.
	ErrDuplicateFeature = errors.New("measure: duplicate feature name")
	// ErrUnknownFeature is returned when a feature name is not present.
	ErrUnknownFeature = errors.New("measure: unknown feature")
	// ErrUnknownObject is returned when an object id is not present.
	ErrUnknownObject = errors.New("measure: unknown object")
	// ErrArityMismatch is returned when a caller writes the wrong number of
	// values for a feature's declared arity.
	ErrArityMismatch = errors.New("measure: value count does not match feature arity")
	// ErrNonScalarFeature is returned when a single-scalar operation
	// (comparison, Minimum/Maximum/Percentile/Mean) targets a
	// multi-valued feature.
	ErrNonScalarFeature = errors.New("measure: feature is not single-valued")
)
