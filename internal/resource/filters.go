package resource

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blagoySimandov/novafields/internal/field"
)

var ErrInvalidFilters = errors.New("invalid filters")

// FilterInput is one submitted filter: the filter key and its raw value.
type FilterInput struct {
	Key   string
	Value json.RawMessage
}

// DecodeFilters reads the "filters" query parameter: base64 of a JSON array of
// single-entry objects, {"<filter key>": <value>}.
func DecodeFilters(encoded string) ([]FilterInput, error) {
	if encoded == "" {
		return nil, nil
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		data, err = base64.URLEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFilters, err)
		}
	}

	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilters, err)
	}

	inputs := make([]FilterInput, 0, len(entries))
	for _, entry := range entries {
		if len(entry) != 1 {
			return nil, fmt.Errorf("%w: expected one filter per entry, got %d", ErrInvalidFilters, len(entry))
		}
		for key, value := range entry {
			inputs = append(inputs, FilterInput{Key: key, Value: value})
		}
	}
	return inputs, nil
}

func EncodeFilters(inputs []FilterInput) (string, error) {
	entries := make([]map[string]json.RawMessage, 0, len(inputs))
	for _, in := range inputs {
		entries = append(entries, map[string]json.RawMessage{in.Key: in.Value})
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// ApplyFilters applies every submitted filter this resource knows about.
// Unknown filter keys are ignored.
func (r *Resource) ApplyFilters(req *field.Request, q field.Query, encoded string) (field.Query, error) {
	inputs, err := DecodeFilters(encoded)
	if err != nil {
		return q, err
	}
	if len(inputs) == 0 {
		return q, nil
	}

	filters := make(map[string]field.Filter)
	for _, f := range r.Filters(req) {
		filters[f.Key()] = f
	}

	for _, in := range inputs {
		f, ok := filters[in.Key]
		if !ok {
			continue
		}
		q, err = f.Apply(req, q, in.Value)
		if err != nil {
			return q, fmt.Errorf("%w: %s: %v", ErrInvalidFilters, in.Key, err)
		}
	}
	return q, nil
}
