package finalizerkit

import (
	"context"

	"github.com/giantswarm/finalizerkit/internal/core"
	"github.com/giantswarm/finalizerkit/internal/journal"
)

// Journal is an append-only SQLite record of committed finalizer mutations,
// guarded by a cross-process file lock. Pass it to NewMutator via
// WithJournal; inspect it with Recent; release it with Close.
//
// Journal is a type alias (not a named type) so that the underlying
// [journal.Journal] methods — Record, Recent, Close — are part of the public
// API without redeclaring them here.
type Journal = journal.Journal

// Mutation is one committed finalizer change as recorded in a Journal:
// op ("add" or "remove"), the resource tuple, object name, token, the
// resourceVersion the store returned for the write, and the commit time.
type Mutation = core.Mutation

// OpenJournal opens (or creates) the journal database at path and acquires
// an exclusive cross-process lock next to it. ctx bounds the lock wait when
// another process holds the journal.
//
// The caller owns the returned Journal and must Close it.
func OpenJournal(ctx context.Context, path string) (*Journal, error) {
	return journal.Open(ctx, path)
}
