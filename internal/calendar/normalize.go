package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var digitReplacer = newDigitReplacer()

// newDigitReplacer maps Persian and Arabic-Indic digits to ASCII.
func newDigitReplacer() *strings.Replacer {
	pairs := make([]string, 0, 40)
	for i := 0; i < 10; i++ {
		ascii := strconv.Itoa(i)
		pairs = append(pairs, string(rune('۰'+i)), ascii, string(rune('٠'+i)), ascii)
	}
	return strings.NewReplacer(pairs...)
}

// order holds, for year, month and day, the position of that component
// among the numbers found in a date string.
type order [3]int

var ymd = order{0, 1, 2}

// orderOf reads component positions from a moment-style format such as
// "jYYYY/jMM/jDD" or "DD.MM.YYYY".
func orderOf(format string) (order, bool) {
	pos := [3]int{
		strings.IndexAny(format, "Yy"),
		strings.Index(format, "M"),
		strings.IndexAny(format, "Dd"),
	}
	var o order
	for i, p := range pos {
		if p < 0 {
			return order{}, false
		}
		for _, q := range pos {
			if q < p {
				o[i]++
			}
		}
	}
	return o, true
}

func (o order) pick(parts []string) (year, month, day int, err error) {
	var values [3]int
	for i, idx := range o {
		values[i], err = strconv.Atoi(parts[idx])
		if err != nil {
			return 0, 0, 0, err
		}
	}
	return values[0], values[1], values[2], nil
}

// Normalize parses a submitted date written in variant, trying each format's
// component order before falling back to year-month-day, and returns the
// Gregorian YYYY-MM-DD form.
func Normalize(value string, variant Variant, formats []string) (string, error) {
	cleaned := strings.TrimSpace(digitReplacer.Replace(value))
	parts := strings.FieldsFunc(cleaned, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if len(parts) < 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	parts = parts[:3]

	orders := make([]order, 0, len(formats)+1)
	for _, f := range formats {
		if o, ok := orderOf(f); ok {
			orders = append(orders, o)
		}
	}
	orders = append(orders, ymd)

	for _, o := range orders {
		year, month, day, err := o.pick(parts)
		if err != nil {
			continue
		}

		var t time.Time
		if variant == Jalali {
			t, err = ToGregorian(year, month, day)
		} else {
			t, err = gregorian(year, month, day)
		}
		if err == nil {
			return t.Format(layout), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDate, value)
}
