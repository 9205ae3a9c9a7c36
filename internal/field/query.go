package field

// Query is the query-builder capability date filters need. Implementations
// must support the ">=" and "<=" operators and return a chainable query.
type Query interface {
	WhereDate(attribute, operator string, value any) Query
}
