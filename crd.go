package finalizerkit

import (
	"context"

	apiextensionsclient "k8s.io/apiextensions-apiserver/pkg/client/clientset/clientset"

	"github.com/giantswarm/finalizerkit/internal/crdcheck"
)

// CRDEstablished reports whether the CustomResourceDefinition backing res
// (named "<plural>.<group>") currently has its Established condition set to
// True. A missing CRD yields (false, nil); any other API failure is returned.
func CRDEstablished(ctx context.Context, client apiextensionsclient.Interface, res Resource) (bool, error) {
	return crdcheck.Established(ctx, client, res)
}

// WaitCRDEstablished polls until the CustomResourceDefinition backing res
// reports the Established condition, ctx is done, or a non-NotFound API
// error occurs. A missing CRD is tolerated while polling, so callers may
// start waiting before the CRD has been applied.
//
// Useful before constructing a Mutator for a resource type that is installed
// alongside the controller: mutating objects of a half-registered CRD
// produces confusing NotFound errors, while this check fails clearly.
func WaitCRDEstablished(ctx context.Context, client apiextensionsclient.Interface, res Resource) error {
	return crdcheck.WaitEstablished(ctx, client, res)
}
