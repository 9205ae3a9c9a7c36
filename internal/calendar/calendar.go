// Package calendar converts between the Persian (Jalali) and Gregorian
// calendars and normalizes user-submitted dates.
package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// Variant names the calendar a date string is written in.
type Variant string

const (
	Gregorian Variant = "gregorian"
	Jalali    Variant = "jalali"
)

const layout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// ParseVariant maps a field's type option, and failing that its display
// format, to a calendar. Moment-jalaali formats use a "j" prefix (jYYYY).
func ParseVariant(kind, format string) Variant {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "jalali", "persian", "shamsi", "solar":
		return Jalali
	case "gregorian", "miladi":
		return Gregorian
	}
	if strings.Contains(format, "jY") || strings.Contains(format, "jM") {
		return Jalali
	}
	return Gregorian
}

// ToGregorian converts a Jalali date. Out-of-range components are rejected
// rather than normalized.
func ToGregorian(year, month, day int) (time.Time, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%w: jalali %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}

	t := ptime.Date(year, ptime.Month(month), day, 0, 0, 0, 0, time.UTC).Time()

	y, m, d := FromGregorian(t)
	if y != year || m != month || d != day {
		return time.Time{}, fmt.Errorf("%w: jalali %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return t, nil
}

// FromGregorian returns the Jalali components of t.
func FromGregorian(t time.Time) (year, month, day int) {
	pt := ptime.New(t)
	return pt.Year(), int(pt.Month()), pt.Day()
}

// FormatJalali renders t as a Jalali YYYY-MM-DD string.
func FormatJalali(t time.Time) string {
	y, m, d := FromGregorian(t)
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

func gregorian(year, month, day int) (time.Time, error) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return t, nil
}
