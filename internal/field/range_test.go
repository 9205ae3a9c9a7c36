package field_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/blagoySimandov/novafields/internal/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRangeTreatsEmptyAsAbsent(t *testing.T) {
	r := field.NewRange("", "2024-01-31")

	assert.Nil(t, r.Min)
	require.NotNil(t, r.Max)
	assert.Equal(t, "2024-01-31", *r.Max)
	assert.False(t, r.IsEmpty())
	assert.True(t, field.NewRange("", "").IsEmpty())
}

func TestRangeValueMarshalJSON(t *testing.T) {
	data, err := json.Marshal(field.NewRange("2024-01-01", ""))
	require.NoError(t, err)
	assert.JSONEq(t, `["2024-01-01", null]`, string(data))

	data, err = json.Marshal(field.RangeValue{})
	require.NoError(t, err)
	assert.JSONEq(t, `[null, null]`, string(data))
}

func TestRangeValueUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMin any
		wantMax any
		wantErr bool
	}{
		{name: "both", input: `["2024-01-01","2024-01-31"]`, wantMin: "2024-01-01", wantMax: "2024-01-31"},
		{name: "null lower", input: `[null,"2024-01-31"]`, wantMin: nil, wantMax: "2024-01-31"},
		{name: "empty upper", input: `["2024-01-01",""]`, wantMin: "2024-01-01", wantMax: nil},
		{name: "single", input: `["2024-01-01"]`, wantMin: "2024-01-01", wantMax: nil},
		{name: "empty array", input: `[]`, wantMin: nil, wantMax: nil},
		{name: "too many bounds", input: `["a","b","c"]`, wantErr: true},
		{name: "object", input: `{"min":"2024-01-01"}`, wantErr: true},
	}

	deref := func(s *string) any {
		if s == nil {
			return nil
		}
		return *s
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r field.RangeValue
			err := json.Unmarshal([]byte(tt.input), &r)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, field.ErrInvalidRange))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMin, deref(r.Min))
			assert.Equal(t, tt.wantMax, deref(r.Max))
		})
	}
}
