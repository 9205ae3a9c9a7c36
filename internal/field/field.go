package field

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// JSON is the key-ordered mapping handed to the admin UI renderer.
type JSON = orderedmap.OrderedMap[string, any]

func NewJSON() *JSON {
	return orderedmap.New[string, any]()
}

type (
	// ResolveFunc converts a raw stored value into the value shown in the UI.
	ResolveFunc func(value any) (any, error)
	// AttributeFunc computes a raw value from the whole record instead of a key.
	AttributeFunc func(resource Resource) any
	// DefaultFunc computes a default value for create and attach forms.
	DefaultFunc func(req *Request) any
)

// Element is implemented by every field a resource can declare.
type Element interface {
	Name() string
	Attribute() string
	ResolveFor(resource Resource) (Element, error)
	ResolveDefaultFor(req *Request) Element
	JSON() *JSON
}

// Field is the base every concrete field builds upon. A Field value is
// configured once and then only read; resolution works on copies.
type Field struct {
	name      string
	attribute string
	component string
	uniqueKey string

	value any

	placeholder     string
	helpText        string
	textAlign       string
	nullable        bool
	readonly        bool
	required        bool
	sortable        bool
	extraAttributes map[string]any
	dependsOn       []string

	resolveCallback   ResolveFunc
	attributeCallback AttributeFunc
	defaultValue      any
	defaultCallback   DefaultFunc
}

func NewField(name, attribute, component string, resolveCallback ResolveFunc) *Field {
	return &Field{
		name:            name,
		attribute:       attribute,
		component:       component,
		textAlign:       "left",
		resolveCallback: resolveCallback,
	}
}

// NewText declares a plain text field.
func NewText(name, attribute string) *Field {
	return NewField(name, attribute, "text-field", nil)
}

func (f *Field) Name() string      { return f.name }
func (f *Field) Attribute() string { return f.attribute }
func (f *Field) Component() string { return f.component }
func (f *Field) Value() any        { return f.value }

func (f *Field) UniqueKey() string {
	if f.uniqueKey != "" {
		return f.uniqueKey
	}
	return fmt.Sprintf("%s-default-%s", f.attribute, f.component)
}

func (f *Field) SetUniqueKey(key string) *Field {
	f.uniqueKey = key
	return f
}

func (f *Field) SetPlaceholder(text string) *Field {
	f.placeholder = text
	return f
}

func (f *Field) SetHelpText(text string) *Field {
	f.helpText = text
	return f
}

func (f *Field) SetTextAlign(align string) *Field {
	f.textAlign = align
	return f
}

func (f *Field) SetNullable(nullable bool) *Field {
	f.nullable = nullable
	return f
}

func (f *Field) SetReadonly(readonly bool) *Field {
	f.readonly = readonly
	return f
}

func (f *Field) SetRequired(required bool) *Field {
	f.required = required
	return f
}

func (f *Field) SetSortable(sortable bool) *Field {
	f.sortable = sortable
	return f
}

func (f *Field) WithExtraAttributes(attrs map[string]any) *Field {
	f.extraAttributes = attrs
	return f
}

func (f *Field) ResolveUsing(fn ResolveFunc) *Field {
	f.resolveCallback = fn
	return f
}

func (f *Field) ResolveAttributeUsing(fn AttributeFunc) *Field {
	f.attributeCallback = fn
	return f
}

func (f *Field) SetDefault(value any) *Field {
	f.defaultValue = value
	return f
}

func (f *Field) SetDefaultUsing(fn DefaultFunc) *Field {
	f.defaultCallback = fn
	return f
}

func (f *Field) rawValue(resource Resource) any {
	if f.attributeCallback != nil {
		return f.attributeCallback(resource)
	}
	if resource == nil {
		return nil
	}
	v, _ := resource.Attribute(f.attribute)
	return v
}

// resolveValue reads the attribute from resource and runs the resolve callback.
func (f *Field) resolveValue(resource Resource) (any, error) {
	raw := f.rawValue(resource)
	if f.resolveCallback == nil {
		return raw, nil
	}
	v, err := f.resolveCallback(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", f.attribute, err)
	}
	return v, nil
}

// ResolveFor returns a copy of the field carrying the resolved value.
func (f *Field) ResolveFor(resource Resource) (Element, error) {
	v, err := f.resolveValue(resource)
	if err != nil {
		return nil, err
	}
	clone := *f
	clone.value = v
	return &clone, nil
}

// ResolveDefaultValue yields the declared default for create and attach
// requests and nil otherwise.
func (f *Field) ResolveDefaultValue(req *Request) any {
	if !req.IsCreateOrAttachRequest() {
		return nil
	}
	if f.value == nil && f.defaultCallback != nil {
		return f.defaultCallback(req)
	}
	return f.defaultValue
}

func (f *Field) ResolveDefaultFor(req *Request) Element {
	clone := *f
	clone.value = f.ResolveDefaultValue(req)
	return &clone
}

func (f *Field) JSON() *JSON {
	m := NewJSON()
	m.Set("component", f.component)
	m.Set("prefixComponent", true)
	m.Set("indexName", f.name)
	m.Set("name", f.name)
	m.Set("attribute", f.attribute)
	m.Set("value", f.value)
	m.Set("uniqueKey", f.UniqueKey())
	if f.placeholder != "" {
		m.Set("placeholder", f.placeholder)
	}
	if f.helpText != "" {
		m.Set("helpText", f.helpText)
	}
	m.Set("nullable", f.nullable)
	m.Set("readonly", f.readonly)
	m.Set("required", f.required)
	m.Set("sortable", f.sortable)
	m.Set("textAlign", f.textAlign)
	if len(f.extraAttributes) > 0 {
		m.Set("extraAttributes", f.extraAttributes)
	}
	if len(f.dependsOn) > 0 {
		m.Set("dependsOn", f.dependsOn)
	}
	return m
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return f.JSON().MarshalJSON()
}
