// Package crdcheck verifies that the CustomResourceDefinition backing a
// resource is registered and established before a caller starts mutating its
// objects. Mutating objects of a CRD that is still being served inconsistently
// produces confusing NotFound errors; checking once up front gives a clear
// failure mode instead.
package crdcheck
