package finalizerkit

import (
	"context"

	"github.com/giantswarm/finalizerkit/internal/core"
)

// Compile-time interface satisfaction check.
var _ Mutator = (*mutatorWrapper)(nil)

// Resource identifies one custom resource type within a namespace: the
// {group, version, namespace, plural} tuple a Mutator is bound to. An empty
// Namespace targets a cluster-scoped resource.
//
// Resource is a type alias (not a named type) so that the underlying
// [core.Resource] methods — GroupVersionResource, CRDName, Validate — are
// part of the public API without redeclaring them here.
type Resource = core.Resource

// mutatorWrapper wraps core.Mutator to implement the Mutator interface.
//
// The core.Mutator is stored as a named (unexported) field rather than
// embedded to prevent callers from using type assertions to reach internal
// methods that are not part of the public Mutator interface.
type mutatorWrapper struct {
	m *core.Mutator
}

// NewMutator builds a Mutator bound to one resource type through the given
// store. Namespace may be empty for cluster-scoped resources; every other
// Resource field is required.
//
// Panics if store is nil, if res is missing a required field, or if any
// option receives an invalid value. See individual With* functions for
// constraints.
//
//nolint:ireturn // Returns Mutator interface by design for testability (mockable).
func NewMutator(store Store, res Resource, opts ...MutatorOption) Mutator {
	cfg := defaultMutatorConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &mutatorWrapper{
		m: core.NewMutator(store, res, cfg.logger, cfg.recorder, cfg.batchLimit),
	}
}

// AddFinalizer implements Mutator.
func (w *mutatorWrapper) AddFinalizer(ctx context.Context, name, token string) error {
	return w.m.AddFinalizer(ctx, name, token)
}

// RemoveFinalizer implements Mutator.
func (w *mutatorWrapper) RemoveFinalizer(ctx context.Context, name, token string) error {
	return w.m.RemoveFinalizer(ctx, name, token)
}

// HasFinalizer implements Mutator.
func (w *mutatorWrapper) HasFinalizer(ctx context.Context, name, token string) (bool, error) {
	return w.m.HasFinalizer(ctx, name, token)
}

// AddFinalizerAll implements Mutator.
func (w *mutatorWrapper) AddFinalizerAll(ctx context.Context, names []string, token string) error {
	return w.m.AddFinalizerAll(ctx, names, token)
}

// RemoveFinalizerAll implements Mutator.
func (w *mutatorWrapper) RemoveFinalizerAll(ctx context.Context, names []string, token string) error {
	return w.m.RemoveFinalizerAll(ctx, names, token)
}
