package feature

import "errors"

// Sentinel errors for feature operations.
var (
	// ErrUnknownFeature indicates Lookup was called with an unregistered name.
	ErrUnknownFeature = errors.New("feature: unknown feature name")
	// ErrGreyRequired indicates a needs-grey feature was requested without
	// a grey image.
	ErrGreyRequired = errors.New("feature: feature requires a grey image")
	// ErrAlreadyRegistered indicates Register was called twice for one name.
	ErrAlreadyRegistered = errors.New("feature: feature name already registered")
)
