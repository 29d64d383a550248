package finalizerkit

import "github.com/giantswarm/finalizerkit/internal/core"

// Sentinel errors for error inspection with errors.Is.
// These are immutable constants safe for use in wrapped error chain comparison.
const (
	// ErrEmptyName is returned by mutator operations invoked with an empty
	// object name, before any store round trip.
	ErrEmptyName = core.ErrEmptyName

	// ErrEmptyToken is returned by mutator operations invoked with an empty
	// finalizer token, before any store round trip.
	ErrEmptyToken = core.ErrEmptyToken
)
