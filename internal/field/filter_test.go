package field_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/blagoySimandov/novafields/internal/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jalaliField() *field.PersianDate {
	return field.NewPersianDate("Event Date", "event_date", nil).
		Type("jalali").
		Format("jYYYY/jMM/jDD")
}

func TestDateFilterApply(t *testing.T) {
	tests := []struct {
		name  string
		field *field.PersianDate
		raw   string
		want  []whereCall
	}{
		{
			name:  "jalali range",
			field: jalaliField(),
			raw:   `["1402/01/01","1402/12/29"]`,
			want: []whereCall{
				{attribute: "event_date", operator: ">=", value: "2023-03-21"},
				{attribute: "event_date", operator: "<=", value: "2024-03-19"},
			},
		},
		{
			name:  "persian digits",
			field: jalaliField(),
			raw:   `["۱۴۰۳/۰۱/۰۱",null]`,
			want: []whereCall{
				{attribute: "event_date", operator: ">=", value: "2024-03-20"},
			},
		},
		{
			name:  "gregorian upper bound",
			field: field.NewPersianDate("Event Date", "event_date", nil),
			raw:   `[null,"2024-01-31"]`,
			want: []whereCall{
				{attribute: "event_date", operator: "<=", value: "2024-01-31"},
			},
		},
		{
			name:  "empty range is not applied",
			field: jalaliField(),
			raw:   `[null,""]`,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &recordingQuery{}

			got, err := field.NewDateFilter(tt.field).Apply(nil, q, json.RawMessage(tt.raw))

			require.NoError(t, err)
			assert.Same(t, q, got)
			assert.Equal(t, tt.want, q.calls)
		})
	}
}

func TestDateFilterApplyInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "day out of month", raw: `["1402/07/31",null]`},
		{name: "not a date", raw: `["soon",null]`},
		{name: "not a range", raw: `"1402/01/01"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &recordingQuery{}

			_, err := field.NewDateFilter(jalaliField()).Apply(nil, q, json.RawMessage(tt.raw))

			require.Error(t, err)
			assert.True(t, errors.Is(err, field.ErrInvalidRange))
			assert.Empty(t, q.calls)
		})
	}
}

func TestDateFilterJSON(t *testing.T) {
	f := field.NewDateFilter(jalaliField().Placeholder("Pick a date"))

	assert.Equal(t, "event_date-default-persian-date", f.Key())
	assert.Equal(t, "Event Date", f.Name())
	assert.Equal(t, field.DateFilterComponent, f.Component())

	data, err := f.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"class": "event_date-default-persian-date",
		"name": "Event Date",
		"component": "persian-date-filter",
		"field": {
			"uniqueKey": "event_date-default-persian-date",
			"name": "Event Date",
			"attribute": "event_date",
			"type": "jalali",
			"placeholder": "Pick a date"
		},
		"currentValue": [null, null]
	}`, string(data))
}

func TestMakeFilter(t *testing.T) {
	var f field.Filterable = jalaliField()

	filter := f.MakeFilter(nil)

	want, err := f.SerializeForFilter().MarshalJSON()
	require.NoError(t, err)
	got, ok := filter.JSON().Get("field")
	require.True(t, ok)
	gotJSON, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(gotJSON))
}
