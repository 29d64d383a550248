package core

import (
	"fmt"

	"k8s.io/apimachinery/pkg/runtime/schema"
)

// Resource identifies one custom resource type within a namespace. Group,
// Version, and Plural name the resource type (the plural is the lowercase
// resource name used in API paths, e.g. "mayastorpools"); Namespace scopes
// every operation of a mutator built from this Resource. An empty Namespace
// targets a cluster-scoped resource.
//
// Resource is a value type and is never mutated after construction; the
// object name varies per call and is deliberately not part of it.
type Resource struct {
	Group     string
	Version   string
	Namespace string
	Plural    string
}

// GroupVersionResource returns the schema.GroupVersionResource derived from
// the Group, Version, and Plural fields.
func (r Resource) GroupVersionResource() schema.GroupVersionResource {
	return schema.GroupVersionResource{
		Group:    r.Group,
		Version:  r.Version,
		Resource: r.Plural,
	}
}

// CRDName returns the metadata.name of the CustomResourceDefinition backing
// this resource, which by convention is "<plural>.<group>".
func (r Resource) CRDName() string {
	return fmt.Sprintf("%s.%s", r.Plural, r.Group)
}

// Validate returns an error describing the first empty required field, or nil
// if the Resource is usable. Namespace is not checked: an empty namespace is
// valid and selects a cluster-scoped resource.
func (r Resource) Validate() error {
	switch {
	case r.Group == "":
		return fmt.Errorf("resource group must not be empty")
	case r.Version == "":
		return fmt.Errorf("resource version must not be empty")
	case r.Plural == "":
		return fmt.Errorf("resource plural must not be empty")
	}
	return nil
}
