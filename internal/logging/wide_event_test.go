package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWideEventContext(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))
	assert.Empty(t, GetTraceID(context.Background()))

	event := NewWideEvent("http.request")
	ctx := WithContext(context.Background(), event)

	require.Same(t, event, FromContext(ctx))
	assert.Equal(t, event.TraceID, GetTraceID(ctx))
	assert.Len(t, event.TraceID, 36)
}

func TestEnrich(t *testing.T) {
	event := NewWideEvent("http.request")
	ctx := WithContext(context.Background(), event)

	EnrichResource(ctx, "events", "42")
	EnrichEditMode(ctx, "create")
	EnrichFilters(ctx, []string{"event_date-default-persian-date"})
	EnrichResultCount(ctx, 3)
	EnrichError(ctx, errors.New("invalid filters"), "filters")
	EnrichError(ctx, errors.New("later failure"), "resolve")
	EnrichError(ctx, nil, "ignored")
	EnrichMetadata(ctx, "filters_cached", true)

	assert.Equal(t, "events", event.Resource)
	assert.Equal(t, "42", event.RecordID)
	assert.Equal(t, "create", event.EditMode)
	assert.Equal(t, []string{"event_date-default-persian-date"}, event.FilterKeys)
	assert.Equal(t, 3, event.ResultCount)
	assert.Equal(t, "invalid filters", event.Error)
	assert.Equal(t, "filters", event.ErrorStage)
	assert.Equal(t, true, event.Metadata["filters_cached"])

	Emit(ctx)
}

func TestEnrichWithoutEvent(t *testing.T) {
	ctx := context.Background()

	assert.NotPanics(t, func() {
		EnrichHTTP(ctx, "GET", "/")
		EnrichPanic(ctx)
		Emit(ctx)
	})
}
