package field

import "reflect"

// DefaultStep is sent to the date picker when no step was configured.
const DefaultStep = "any"

// DisplayOptions are stored verbatim as given to the fluent setters. A nil
// pointer or nil interface means "not configured".
type DisplayOptions struct {
	Min      any
	Max      any
	Step     any
	Format   string
	Formats  []string
	Type     string
	Color    string
	Editable *bool
	Humanize *bool
}

// HasDisplayOptions is implemented by fields that carry picker options.
type HasDisplayOptions interface {
	DisplayOptions() DisplayOptions
}

// JSON renders the configured options in the order the date picker reads
// them. Unset options are left out; explicit zero values such as false are kept.
func (o DisplayOptions) JSON() *JSON {
	m := NewJSON()
	setOption(m, "min", dateOption(o.Min))
	setOption(m, "max", dateOption(o.Max))
	if isUnset(o.Step) {
		m.Set("step", DefaultStep)
	} else {
		m.Set("step", o.Step)
	}
	setOption(m, "format", o.Format)
	setOption(m, "formats", o.Formats)
	setOption(m, "type", o.Type)
	setOption(m, "color", o.Color)
	if o.Editable != nil {
		m.Set("editable", *o.Editable)
	}
	if o.Humanize != nil {
		m.Set("humanize", *o.Humanize)
	}
	return m
}

func setOption(m *JSON, key string, value any) {
	if isUnset(value) {
		return
	}
	m.Set(key, value)
}

// dateOption renders date-like bounds in DateLayout.
func dateOption(value any) any {
	if s, ok := formatDate(value); ok {
		return s
	}
	return value
}

func isUnset(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
