package field_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/blagoySimandov/novafields/internal/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextFieldResolve(t *testing.T) {
	f := field.NewText("Title", "title").SetRequired(true)

	resolved, err := f.ResolveFor(field.MapResource{"title": "Nowruz"})
	require.NoError(t, err)

	value, _ := resolved.JSON().Get("value")
	assert.Equal(t, "Nowruz", value)
	required, _ := resolved.JSON().Get("required")
	assert.Equal(t, true, required)
	assert.Nil(t, f.Value())
}

func TestResolveAttributeUsing(t *testing.T) {
	f := field.NewText("Calendar", "calendar").
		ResolveAttributeUsing(func(field.Resource) any { return "jalali" })

	resolved, err := f.ResolveFor(nil)
	require.NoError(t, err)

	value, _ := resolved.JSON().Get("value")
	assert.Equal(t, "jalali", value)
}

func TestUniqueKey(t *testing.T) {
	f := field.NewText("Title", "title")
	assert.Equal(t, "title-default-text-field", f.UniqueKey())

	f.SetUniqueKey("custom")
	assert.Equal(t, "custom", f.UniqueKey())
}

func TestNewRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/resources/events/fields?editMode=attach&page=2", nil)

	req := field.NewRequest(r)

	assert.Equal(t, field.EditModeAttach, req.EditMode())
	assert.Equal(t, "2", req.Query("page"))
	assert.True(t, req.IsCreateOrAttachRequest())
}

func TestNilRequest(t *testing.T) {
	var req *field.Request

	assert.Equal(t, context.Background(), req.Context())
	assert.Empty(t, req.EditMode())
	assert.Empty(t, req.Query("editMode"))
	assert.False(t, req.IsCreateOrAttachRequest())
}

func TestMapResourceAttribute(t *testing.T) {
	r := field.MapResource{
		"title":        "Yalda",
		"meta.literal": "flat",
		"meta": field.MapResource{
			"nested": map[string]any{"day": 30},
		},
	}

	tests := []struct {
		key    string
		want   any
		wantOK bool
	}{
		{key: "title", want: "Yalda", wantOK: true},
		{key: "meta.literal", want: "flat", wantOK: true},
		{key: "meta.nested.day", want: 30, wantOK: true},
		{key: "meta.missing", want: nil, wantOK: false},
		{key: "title.length", want: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := r.Attribute(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
