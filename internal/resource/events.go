package resource

import (
	"fmt"
	"time"

	"github.com/blagoySimandov/novafields/internal/calendar"
	"github.com/blagoySimandov/novafields/internal/field"
)

const (
	EventsURIKey       = "events"
	EventDateAttribute = "event_date"
	CalendarAttribute  = "calendar"
)

// Events declares the events resource. variant selects the calendar the
// event date picker starts in; the form can switch it through the
// calendar field.
func Events(variant calendar.Variant) *Resource {
	title := field.NewText("Title", "title").
		SetRequired(true).
		SetSortable(true)

	// form-only, not stored on the event
	calendarChoice := field.NewText("Calendar", CalendarAttribute).
		SetDefault(string(variant)).
		ResolveAttributeUsing(func(field.Resource) any {
			return string(variant)
		})

	eventDate := field.NewPersianDate("Event Date", EventDateAttribute, nil).
		Placeholder("Pick a date").
		Editable(true).
		Sortable().
		Required().
		DefaultUsing(func(req *field.Request) any {
			return time.Now()
		}).
		DependsOn([]string{CalendarAttribute}, func(f *field.PersianDate, req *field.Request, formData map[string]any) {
			useCalendar(f, calendar.ParseVariant(fmt.Sprint(formData[CalendarAttribute]), ""))
		})
	useCalendar(eventDate, variant)

	return &Resource{
		URIKey: EventsURIKey,
		Label:  "Events",
		Fields: []field.Element{title, calendarChoice, eventDate},
	}
}

func useCalendar(f *field.PersianDate, variant calendar.Variant) {
	format := "YYYY-MM-DD"
	if variant == calendar.Jalali {
		format = "jYYYY/jMM/jDD"
	}
	f.Type(string(variant)).
		Format(format).
		Formats(format)
}
