package field

import (
	"fmt"
	"maps"
	"slices"

	"github.com/blagoySimandov/novafields/internal/calendar"
	"github.com/rs/zerolog/log"
)

// PersianDateComponent is the UI component that renders the field.
const PersianDateComponent = "persian-date"

type (
	// FilterFunc applies a submitted date range to a query.
	FilterFunc func(req *Request, q Query, value RangeValue, attribute string) Query
	// DependsOnFunc adjusts a copy of the field from the current form data.
	DependsOnFunc func(field *PersianDate, req *Request, formData map[string]any)
)

type dependency struct {
	attributes []string
	fn         DependsOnFunc
}

// PersianDate is a date field rendered with a Persian (Jalali) capable date
// picker. Values travel as YYYY-MM-DD strings.
type PersianDate struct {
	Field

	options        DisplayOptions
	filterCallback FilterFunc
	dependents     []dependency
}

var (
	_ Element           = (*PersianDate)(nil)
	_ Filterable        = (*PersianDate)(nil)
	_ DependentField    = (*PersianDate)(nil)
	_ HasDisplayOptions = (*PersianDate)(nil)
)

// NewPersianDate declares a date field. Without a resolveCallback the field
// expects the data layer to hand it date values and fails with
// ErrTypeMismatch on anything else.
func NewPersianDate(name, attribute string, resolveCallback ResolveFunc) *PersianDate {
	if resolveCallback == nil {
		resolveCallback = resolveDate(attribute)
	}
	return &PersianDate{
		Field: *NewField(name, attribute, PersianDateComponent, resolveCallback),
	}
}

func resolveDate(attribute string) ResolveFunc {
	return func(value any) (any, error) {
		v, present := unwrapDate(value)
		if !present {
			return nil, nil
		}
		if s, ok := formatDate(v); ok {
			return s, nil
		}
		return nil, fmt.Errorf("%w: date field %q must be cast to a date by the data layer, got %T",
			ErrTypeMismatch, attribute, value)
	}
}

func (p *PersianDate) Min(value any) *PersianDate {
	p.options.Min = value
	return p
}

func (p *PersianDate) Max(value any) *PersianDate {
	p.options.Max = value
	return p
}

func (p *PersianDate) Step(value any) *PersianDate {
	p.options.Step = value
	return p
}

func (p *PersianDate) Format(format string) *PersianDate {
	p.options.Format = format
	return p
}

func (p *PersianDate) Formats(formats ...string) *PersianDate {
	p.options.Formats = formats
	return p
}

func (p *PersianDate) Type(kind string) *PersianDate {
	p.options.Type = kind
	return p
}

func (p *PersianDate) Color(color string) *PersianDate {
	p.options.Color = color
	return p
}

func (p *PersianDate) Editable(editable bool) *PersianDate {
	p.options.Editable = &editable
	return p
}

func (p *PersianDate) Humanize(humanize bool) *PersianDate {
	p.options.Humanize = &humanize
	return p
}

func (p *PersianDate) Placeholder(text string) *PersianDate {
	p.SetPlaceholder(text)
	return p
}

func (p *PersianDate) HelpText(text string) *PersianDate {
	p.SetHelpText(text)
	return p
}

func (p *PersianDate) Sortable() *PersianDate {
	p.SetSortable(true)
	return p
}

func (p *PersianDate) Nullable() *PersianDate {
	p.SetNullable(true)
	return p
}

func (p *PersianDate) Required() *PersianDate {
	p.SetRequired(true)
	return p
}

func (p *PersianDate) ExtraAttributes(attrs map[string]any) *PersianDate {
	p.WithExtraAttributes(attrs)
	return p
}

func (p *PersianDate) Default(value any) *PersianDate {
	p.SetDefault(value)
	return p
}

func (p *PersianDate) DefaultUsing(fn DefaultFunc) *PersianDate {
	p.SetDefaultUsing(fn)
	return p
}

// FilterableUsing replaces the default range predicate.
func (p *PersianDate) FilterableUsing(fn FilterFunc) *PersianDate {
	p.filterCallback = fn
	return p
}

func (p *PersianDate) DependsOn(attributes []string, fn DependsOnFunc) *PersianDate {
	p.dependents = append(p.dependents, dependency{attributes: attributes, fn: fn})
	p.dependsOn = append(p.dependsOn, attributes...)
	return p
}

func (p *PersianDate) DependentAttributes() []string {
	return slices.Clone(p.dependsOn)
}

// SyncDependsOn runs every dependency whose attributes appear in formData
// against a copy of the field and returns that copy.
func (p *PersianDate) SyncDependsOn(req *Request, formData map[string]any) *PersianDate {
	c := p.clone()
	for _, dep := range p.dependents {
		if !slices.ContainsFunc(dep.attributes, func(attr string) bool {
			_, ok := formData[attr]
			return ok
		}) {
			continue
		}
		dep.fn(c, req, formData)
	}
	return c
}

func (p *PersianDate) DisplayOptions() DisplayOptions {
	return p.options
}

// NormalizeInput parses a date typed into the picker, in the field's
// calendar and formats, and returns it as a Gregorian YYYY-MM-DD string.
func (p *PersianDate) NormalizeInput(value string) (string, error) {
	variant := calendar.ParseVariant(p.options.Type, p.options.Format)
	formats := p.options.Formats
	if p.options.Format != "" {
		formats = append([]string{p.options.Format}, formats...)
	}
	return calendar.Normalize(value, variant, formats)
}

func (p *PersianDate) clone() *PersianDate {
	c := *p
	c.extraAttributes = maps.Clone(p.extraAttributes)
	c.dependsOn = slices.Clip(p.dependsOn)
	c.dependents = slices.Clip(p.dependents)
	return &c
}

// Resolve returns a copy of the field holding the record's date.
func (p *PersianDate) Resolve(resource Resource) (*PersianDate, error) {
	v, err := p.resolveValue(resource)
	if err != nil {
		return nil, err
	}
	c := p.clone()
	c.value = v
	return c, nil
}

func (p *PersianDate) ResolveFor(resource Resource) (Element, error) {
	return p.Resolve(resource)
}

// ResolveDefaultValue formats date-like defaults and passes anything else
// through unchanged.
func (p *PersianDate) ResolveDefaultValue(req *Request) any {
	value := p.Field.ResolveDefaultValue(req)
	if s, ok := formatDate(value); ok {
		return s
	}
	return value
}

func (p *PersianDate) ResolveDefaultFor(req *Request) Element {
	c := p.clone()
	c.value = p.ResolveDefaultValue(req)
	return c
}

// BuildFilterPredicate is the default range predicate. Callers only submit
// ranges with at least one bound; an empty range still reaches the last
// branch and constrains against NULL.
func (p *PersianDate) BuildFilterPredicate(req *Request, q Query, value RangeValue, attribute string) Query {
	lower, upper := value.Min, value.Max

	if lower != nil && upper != nil {
		return q.WhereDate(attribute, ">=", *lower).
			WhereDate(attribute, "<=", *upper)
	} else if lower != nil {
		return q.WhereDate(attribute, ">=", *lower)
	}

	if upper == nil {
		log.Warn().
			Str("attribute", attribute).
			Str("uniqueKey", p.UniqueKey()).
			Msg("date range filter without bounds, constraining against NULL")
		return q.WhereDate(attribute, "<=", nil)
	}
	return q.WhereDate(attribute, "<=", *upper)
}

func (p *PersianDate) ApplyFilter(req *Request, q Query, value RangeValue) Query {
	fn := p.filterCallback
	if fn == nil {
		fn = p.BuildFilterPredicate
	}
	return fn(req, q, value, p.attribute)
}

func (p *PersianDate) MakeFilter(req *Request) Filter {
	return NewDateFilter(p)
}

var filterKeys = []string{
	"uniqueKey",
	"name",
	"attribute",
	"type",
	"placeholder",
	"extraAttributes",
}

// SerializeForFilter keeps only the keys the filter UI needs.
func (p *PersianDate) SerializeForFilter() *JSON {
	full := p.JSON()
	out := NewJSON()
	for _, key := range filterKeys {
		if v, ok := full.Get(key); ok {
			out.Set(key, v)
		}
	}
	return out
}

func (p *PersianDate) JSON() *JSON {
	m := p.Field.JSON()
	opts := p.options.JSON()
	for pair := opts.Oldest(); pair != nil; pair = pair.Next() {
		m.Set(pair.Key, pair.Value)
	}
	return m
}

func (p *PersianDate) MarshalJSON() ([]byte, error) {
	return p.JSON().MarshalJSON()
}
