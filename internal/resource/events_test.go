package resource

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/blagoySimandov/novafields/internal/calendar"
	"github.com/blagoySimandov/novafields/internal/field"
	"github.com/blagoySimandov/novafields/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func valueOf(t *testing.T, m *field.JSON, key string) any {
	t.Helper()
	v, ok := m.Get(key)
	require.True(t, ok, key)
	return v
}

func TestEventsResolve(t *testing.T) {
	res := Events(calendar.Jalali)
	event := &models.EventDB{
		Title:     "Nowruz",
		EventDate: sql.NullTime{Time: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), Valid: true},
	}

	fields, err := res.Resolve(event)
	require.NoError(t, err)
	require.Len(t, fields, 3)

	assert.Equal(t, "Nowruz", valueOf(t, fields[0], "value"))
	assert.Equal(t, "jalali", valueOf(t, fields[1], "value"))
	assert.Equal(t, "2024-03-20", valueOf(t, fields[2], "value"))
	assert.Equal(t, "jYYYY/jMM/jDD", valueOf(t, fields[2], "format"))
	assert.Equal(t, []string{CalendarAttribute}, valueOf(t, fields[2], "dependsOn"))
}

func TestEventsResolveWithoutDate(t *testing.T) {
	fields, err := Events(calendar.Gregorian).Resolve(&models.EventDB{Title: "TBD"})
	require.NoError(t, err)

	assert.Nil(t, valueOf(t, fields[2], "value"))
	assert.Equal(t, "YYYY-MM-DD", valueOf(t, fields[2], "format"))
}

func TestEventsCreationFields(t *testing.T) {
	res := Events(calendar.Jalali)

	fields := res.CreationFields(field.NewRequestWithContext(context.Background(), field.EditModeCreate))

	assert.Nil(t, valueOf(t, fields[0], "value"))
	assert.Equal(t, "jalali", valueOf(t, fields[1], "value"))
	assert.Equal(t, time.Now().Format(field.DateLayout), valueOf(t, fields[2], "value"))
}

func TestEventsFilters(t *testing.T) {
	res := Events(calendar.Jalali)

	filters := res.Filters(nil)

	require.Len(t, filters, 1)
	assert.Equal(t, eventDateKey, filters[0].Key())
	assert.Equal(t, field.DateFilterComponent, filters[0].Component())
}

func TestEventsSwitchCalendar(t *testing.T) {
	f, ok := Events(calendar.Jalali).FieldFor(EventDateAttribute)
	require.True(t, ok)
	date := f.(*field.PersianDate)

	synced := date.SyncDependsOn(nil, map[string]any{CalendarAttribute: "gregorian"})

	assert.Equal(t, "gregorian", synced.DisplayOptions().Type)
	assert.Equal(t, "YYYY-MM-DD", synced.DisplayOptions().Format)
	assert.Equal(t, "jalali", date.DisplayOptions().Type)

	normalized, err := synced.NormalizeInput("2024-03-20")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-20", normalized)
}

func TestRegistry(t *testing.T) {
	reg, err := NewRegistry(Events(calendar.Jalali))
	require.NoError(t, err)

	res, ok := reg.Get(EventsURIKey)
	require.True(t, ok)
	assert.Equal(t, "Events", res.Label)

	_, ok = reg.Get("posts")
	assert.False(t, ok)

	_, ok = res.FieldFor("missing")
	assert.False(t, ok)
}

func TestRegistryFiltersKey(t *testing.T) {
	jalali, err := NewRegistry(Events(calendar.Jalali))
	require.NoError(t, err)
	again, err := NewRegistry(Events(calendar.Jalali))
	require.NoError(t, err)
	gregorian, err := NewRegistry(Events(calendar.Gregorian))
	require.NoError(t, err)

	key := jalali.FiltersKey(EventsURIKey)
	assert.Len(t, key, 64)
	assert.Equal(t, key, again.FiltersKey(EventsURIKey))
	assert.NotEqual(t, key, gregorian.FiltersKey(EventsURIKey))
	assert.Empty(t, jalali.FiltersKey("posts"))
}
