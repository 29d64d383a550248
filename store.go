package finalizerkit

import (
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/rest"

	"github.com/giantswarm/finalizerkit/internal/core"
)

// Store is the object store a Mutator reads and writes through. The shipped
// implementation adapts a client-go dynamic client; tests substitute fakes.
//
// Store is a type alias so that third-party implementations written against
// [core.Store] and values returned by the constructors below are
// interchangeable at the public API boundary.
type Store = core.Store

// NewDynamicStore returns a Store backed by the given dynamic client.
// Panics if client is nil.
//
//nolint:ireturn // Returns Store interface by design for testability (mockable).
func NewDynamicStore(client dynamic.Interface) Store {
	return core.NewDynamicStore(client)
}

// NewStoreForConfig builds a dynamic client from cfg and wraps it in a Store.
//
//nolint:ireturn // Returns Store interface by design for testability (mockable).
func NewStoreForConfig(cfg *rest.Config) (Store, error) {
	return core.NewStoreForConfig(cfg)
}
