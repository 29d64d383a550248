package core

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// AddFinalizerAll applies AddFinalizer to every named object, running at most
// batchLimit operations concurrently. Each object follows the single-object
// protocol exactly; the read and write of one object never overlap. The first
// failure cancels the group's context, and in-flight siblings see the
// cancellation through their store calls.
func (m *Mutator) AddFinalizerAll(ctx context.Context, names []string, token string) error {
	return m.forEach(ctx, names, token, m.AddFinalizer)
}

// RemoveFinalizerAll applies RemoveFinalizer to every named object with the
// same concurrency bound and error semantics as AddFinalizerAll.
func (m *Mutator) RemoveFinalizerAll(ctx context.Context, names []string, token string) error {
	return m.forEach(ctx, names, token, m.RemoveFinalizer)
}

// forEach fans one operation out over names with a bounded errgroup.
func (m *Mutator) forEach(
	ctx context.Context,
	names []string,
	token string,
	op func(ctx context.Context, name, token string) error,
) error {
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(m.batchLimit)

	for _, name := range names {
		g.Go(func() error {
			return op(gCtx, name, token)
		})
	}

	return g.Wait()
}
