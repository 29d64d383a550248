// Package finalizerkit manages finalizer tokens on Kubernetes custom
// resource objects.
//
// A finalizer is a string token on an object signaling that some controller
// must complete out-of-band cleanup (releasing external storage, deleting
// child resources) before the object is permanently deleted. finalizerkit
// implements the mutation protocol around that token: fetch the current
// object, evaluate preconditions, mutate the finalizer list, and write the
// full body back under optimistic concurrency. It does not implement the
// reconciliation loop that decides when to add or remove a finalizer.
//
// # Basic Usage
//
//	import "github.com/giantswarm/finalizerkit"
//
//	ctx := context.Background()
//
//	store, err := finalizerkit.NewStoreForConfig(restConfig)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	m := finalizerkit.NewMutator(store, finalizerkit.Resource{
//	    Group:     "openebs.io",
//	    Version:   "v1alpha1",
//	    Namespace: "mayastor",
//	    Plural:    "mayastorpools",
//	})
//
//	if err := m.AddFinalizer(ctx, "pool-1", "cleanup.vendor/storage"); err != nil {
//	    // Surface to the reconciler; the next pass re-invokes with a fresh read.
//	}
//
//	// ... cleanup done ...
//	if err := m.RemoveFinalizer(ctx, "pool-1", "cleanup.vendor/storage"); err != nil {
//	    // Same contract: no internal retry.
//	}
//
// # Semantics
//
// AddFinalizer and RemoveFinalizer are idempotent: re-applying a change that
// already holds is a logged no-op with no write. AddFinalizer refuses to
// touch a terminating object (one with a deletionTimestamp), while
// RemoveFinalizer still works on terminating objects so cleanup controllers
// can release them. Every write carries the resourceVersion captured at read
// time; a concurrent writer's update turns the replace into a conflict error
// instead of a lost update. Conflicts are surfaced, never retried — retry
// policy belongs to the calling reconciler.
//
// # Mutation Journal
//
// An optional SQLite journal records every committed mutation for post-hoc
// debugging:
//
//	j, err := finalizerkit.OpenJournal(ctx, "/var/lib/controller/finalizers.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer j.Close()
//
//	m := finalizerkit.NewMutator(store, res, finalizerkit.WithJournal(j))
package finalizerkit
