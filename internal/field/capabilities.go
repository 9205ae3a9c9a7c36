package field

// Filterable fields can be turned into filters on their resource index.
type Filterable interface {
	Element
	MakeFilter(req *Request) Filter
	ApplyFilter(req *Request, q Query, value RangeValue) Query
	SerializeForFilter() *JSON
}

// DependentField fields re-render when the listed form attributes change.
type DependentField interface {
	DependentAttributes() []string
}
