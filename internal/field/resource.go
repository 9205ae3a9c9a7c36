package field

import "strings"

// Resource exposes the raw attribute values of a single record.
type Resource interface {
	Attribute(key string) (any, bool)
}

// MapResource is a Resource backed by a (possibly nested) map. Keys may be
// dotted paths such as "meta.published_on".
type MapResource map[string]any

func (m MapResource) Attribute(key string) (any, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}

	parts := strings.Split(key, ".")
	var current any = map[string]any(m)
	for _, part := range parts {
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[part]
			if !ok {
				return nil, false
			}
			current = next
		case MapResource:
			next, ok := node[part]
			if !ok {
				return nil, false
			}
			current = next
		default:
			return nil, false
		}
	}
	return current, true
}
