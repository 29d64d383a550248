package finalizerkit

import (
	"context"
)

// Mutator applies finalizer changes to objects of one custom resource type.
// The resource tuple (group, version, namespace, plural) is fixed at
// construction; every call supplies only the object name and the finalizer
// token.
//
// All methods are safe for concurrent use. Every call is a fresh
// read-then-conditional-write sequence against the store; the mutator caches
// nothing between calls.
type Mutator interface {
	// AddFinalizer ensures token is present on the named object. Two
	// outcomes are successful no-ops, logged as warnings with no write:
	// the object is terminating (deletionTimestamp set), or the token is
	// already present. Fetch and write failures are logged with the
	// store's code/reason/message and returned; the mutator never retries.
	AddFinalizer(ctx context.Context, name, token string) error

	// RemoveFinalizer ensures token is absent from the named object.
	// An empty finalizer list or an absent token is a successful no-op.
	// Removal works on terminating objects — cleanup controllers must be
	// able to drop their finalizer after deletion has been requested.
	RemoveFinalizer(ctx context.Context, name, token string) error

	// HasFinalizer reports whether token is present on a fresh snapshot
	// of the named object.
	HasFinalizer(ctx context.Context, name, token string) (bool, error)

	// AddFinalizerAll applies AddFinalizer to every named object with
	// bounded concurrency (see WithBatchLimit). The first failure cancels
	// the remaining operations' context and is returned.
	AddFinalizerAll(ctx context.Context, names []string, token string) error

	// RemoveFinalizerAll applies RemoveFinalizer to every named object
	// with the same concurrency bound and error semantics as
	// AddFinalizerAll.
	RemoveFinalizerAll(ctx context.Context, names []string, token string) error
}
