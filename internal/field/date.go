package field

import (
	"database/sql"
	"reflect"
	"time"

	"github.com/uptrace/bun"
)

// DateLayout is the calendar-date wire format used by every date field.
const DateLayout = "2006-01-02"

// DateLike is any value that can render itself as a calendar date.
// time.Time and types embedding it satisfy it.
type DateLike interface {
	Format(layout string) string
}

// gregorianer is implemented by calendar types whose Format does not take Go
// layouts, such as ptime.Time. They are formatted through their time.Time.
type gregorianer interface {
	Time() time.Time
}

// unwrapDate normalizes raw values coming out of the data layer. It reports
// present=false for nil, nil pointers and NULL columns (invalid sql.NullTime,
// zero bun.NullTime).
func unwrapDate(value any) (v any, present bool) {
	if value == nil {
		return nil, false
	}

	switch t := value.(type) {
	case sql.NullTime:
		if !t.Valid {
			return nil, false
		}
		return t.Time, true
	case *sql.NullTime:
		if t == nil || !t.Valid {
			return nil, false
		}
		return t.Time, true
	case bun.NullTime:
		if t.IsZero() {
			return nil, false
		}
		return t.Time, true
	case *bun.NullTime:
		if t == nil || t.IsZero() {
			return nil, false
		}
		return t.Time, true
	}

	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, false
	}
	return value, true
}

// formatDate returns the DateLayout rendering of value when it is date-like.
func formatDate(value any) (string, bool) {
	if value == nil {
		return "", false
	}
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "", false
	}

	switch d := value.(type) {
	case gregorianer:
		return d.Time().Format(DateLayout), true
	case DateLike:
		return d.Format(DateLayout), true
	}
	return "", false
}
