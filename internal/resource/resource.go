package resource

import (
	"encoding/json"
	"fmt"

	"github.com/blagoySimandov/novafields/internal/cache"
	"github.com/blagoySimandov/novafields/internal/field"
)

// Resource is an admin-panel resource: a record type and the fields that
// render it.
type Resource struct {
	URIKey string
	Label  string
	Fields []field.Element
}

// FieldFor returns the field bound to attribute.
func (r *Resource) FieldFor(attribute string) (field.Element, bool) {
	for _, f := range r.Fields {
		if f.Attribute() == attribute {
			return f, true
		}
	}
	return nil, false
}

// Filters returns one filter per filterable field.
func (r *Resource) Filters(req *field.Request) []field.Filter {
	var filters []field.Filter
	for _, f := range r.Fields {
		if ff, ok := f.(field.Filterable); ok {
			filters = append(filters, ff.MakeFilter(req))
		}
	}
	return filters
}

// Resolve serializes every field with its value taken from record.
func (r *Resource) Resolve(record field.Resource) ([]*field.JSON, error) {
	out := make([]*field.JSON, 0, len(r.Fields))
	for _, f := range r.Fields {
		resolved, err := f.ResolveFor(record)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s field %s: %w", r.URIKey, f.Attribute(), err)
		}
		out = append(out, resolved.JSON())
	}
	return out, nil
}

// CreationFields serializes every field with its default value.
func (r *Resource) CreationFields(req *field.Request) []*field.JSON {
	out := make([]*field.JSON, 0, len(r.Fields))
	for _, f := range r.Fields {
		out = append(out, f.ResolveDefaultFor(req).JSON())
	}
	return out
}

// Registry looks resources up by URI key.
type Registry struct {
	resources  map[string]*Resource
	filterKeys map[string]string
}

// NewRegistry indexes resources and fingerprints each one's filter
// declarations. Filter metadata must not depend on the request, since the
// fingerprint is taken once here.
func NewRegistry(resources ...*Resource) (*Registry, error) {
	reg := &Registry{
		resources:  make(map[string]*Resource, len(resources)),
		filterKeys: make(map[string]string, len(resources)),
	}
	for _, r := range resources {
		key, err := filtersFingerprint(r)
		if err != nil {
			return nil, fmt.Errorf("failed to fingerprint %s filters: %w", r.URIKey, err)
		}
		reg.resources[r.URIKey] = r
		reg.filterKeys[r.URIKey] = key
	}
	return reg, nil
}

func filtersFingerprint(r *Resource) (string, error) {
	filters := r.Filters(nil)
	parts := make([]json.Marshaler, 0, len(filters))
	for _, f := range filters {
		parts = append(parts, f.JSON())
	}
	return cache.GenerateCacheKey(r.URIKey, parts)
}

// FiltersKey is the cache key of the resource's serialized filters, or ""
// for an unknown resource.
func (r *Registry) FiltersKey(uriKey string) string {
	return r.filterKeys[uriKey]
}

func (r *Registry) Get(uriKey string) (*Resource, bool) {
	res, ok := r.resources[uriKey]
	return res, ok
}
