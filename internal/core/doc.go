// Package core implements the finalizer mutation protocol: fetch the current
// object, evaluate preconditions, mutate the finalizer list, and write the
// full body back under optimistic concurrency.
//
// The package is internal; the public API in the root finalizerkit package
// wraps these types. Store abstracts the object store (the shipped
// implementation adapts a client-go dynamic client), and Recorder is an
// optional sink for committed mutations.
package core
