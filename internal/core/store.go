package core

import (
	"context"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/rest"
)

// Store is the object store consumed by the Mutator: it retrieves and
// replaces named custom objects. Implementations must return errors that
// carry the store's machine-readable status where available; errors from the
// Kubernetes API satisfy apierrors.APIStatus and surface code, reason, and
// message.
//
// Implementations must be safe for concurrent use.
type Store interface {
	// Get retrieves the current state of the named object.
	Get(ctx context.Context, res Resource, name string) (*unstructured.Unstructured, error)

	// Replace writes the full object body back, overwriting the stored
	// document. When obj carries a resourceVersion, the write must be
	// conditioned on it so that a concurrent writer's update fails the
	// replace with a conflict instead of being silently clobbered.
	Replace(ctx context.Context, res Resource, name string, obj *unstructured.Unstructured) (*unstructured.Unstructured, error)
}

// Compile-time interface satisfaction check.
var _ Store = (*dynamicStore)(nil)

// dynamicStore adapts a client-go dynamic client to the Store interface.
// The dynamic client works on unstructured objects, so arbitrary custom
// resource bodies round-trip without a typed scheme.
type dynamicStore struct {
	client dynamic.Interface
}

// NewDynamicStore returns a Store backed by the given dynamic client.
// Panics if client is nil: the client is wired at construction time, so a
// nil value indicates a programmer error rather than a runtime condition.
//
//nolint:ireturn // Returns Store interface by design for testability (mockable).
func NewDynamicStore(client dynamic.Interface) Store {
	if client == nil {
		panic("finalizerkit: NewDynamicStore client must not be nil")
	}
	return &dynamicStore{client: client}
}

// NewStoreForConfig builds a dynamic client from the given rest.Config and
// wraps it in a Store.
//
//nolint:ireturn // Returns Store interface by design for testability (mockable).
func NewStoreForConfig(cfg *rest.Config) (Store, error) {
	client, err := dynamic.NewForConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dynamic client: %w", err)
	}
	return NewDynamicStore(client), nil
}

// Get implements Store. An empty res.Namespace addresses the resource as
// cluster-scoped; the dynamic client omits the namespace path segment.
func (s *dynamicStore) Get(ctx context.Context, res Resource, name string) (*unstructured.Unstructured, error) {
	return s.client.Resource(res.GroupVersionResource()).
		Namespace(res.Namespace).
		Get(ctx, name, metav1.GetOptions{})
}

// Replace implements Store via a full-object Update. The apiserver rejects
// the write with a conflict when obj's resourceVersion is stale.
func (s *dynamicStore) Replace(ctx context.Context, res Resource, _ string, obj *unstructured.Unstructured) (*unstructured.Unstructured, error) {
	return s.client.Resource(res.GroupVersionResource()).
		Namespace(res.Namespace).
		Update(ctx, obj, metav1.UpdateOptions{})
}
