package field

import (
	"encoding/json"
	"fmt"
)

// DateFilterComponent renders the min/max date-range picker of a filter.
const DateFilterComponent = "persian-date-filter"

// Filter is a query constraint exposed on a resource index.
type Filter interface {
	Key() string
	Name() string
	Component() string
	Apply(req *Request, q Query, raw json.RawMessage) (Query, error)
	JSON() *JSON
}

// DateFilter routes a submitted [min, max] pair to its field's predicate.
type DateFilter struct {
	field *PersianDate
}

var _ Filter = (*DateFilter)(nil)

func NewDateFilter(f *PersianDate) *DateFilter {
	return &DateFilter{field: f}
}

func (f *DateFilter) Key() string       { return f.field.UniqueKey() }
func (f *DateFilter) Name() string      { return f.field.Name() }
func (f *DateFilter) Component() string { return DateFilterComponent }

// Apply decodes and normalizes the submitted range. Ranges without any bound
// leave the query untouched.
func (f *DateFilter) Apply(req *Request, q Query, raw json.RawMessage) (Query, error) {
	var value RangeValue
	if err := json.Unmarshal(raw, &value); err != nil {
		return q, err
	}

	value, err := f.normalize(value)
	if err != nil {
		return q, err
	}
	if value.IsEmpty() {
		return q, nil
	}

	return f.field.ApplyFilter(req, q, value), nil
}

// normalize converts each bound to a Gregorian YYYY-MM-DD string.
func (f *DateFilter) normalize(value RangeValue) (RangeValue, error) {
	var out RangeValue
	for _, bound := range []struct {
		in  *string
		out **string
	}{
		{value.Min, &out.Min},
		{value.Max, &out.Max},
	} {
		if bound.in == nil {
			continue
		}
		s, err := f.field.NormalizeInput(*bound.in)
		if err != nil {
			return RangeValue{}, fmt.Errorf("%w: %v", ErrInvalidRange, err)
		}
		*bound.out = &s
	}
	return out, nil
}

func (f *DateFilter) JSON() *JSON {
	m := NewJSON()
	m.Set("class", f.Key())
	m.Set("name", f.Name())
	m.Set("component", f.Component())
	m.Set("field", f.field.SerializeForFilter())
	m.Set("currentValue", RangeValue{})
	return m
}

func (f *DateFilter) MarshalJSON() ([]byte, error) {
	return f.JSON().MarshalJSON()
}
