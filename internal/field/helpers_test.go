package field_test

import "github.com/blagoySimandov/novafields/internal/field"

type whereCall struct {
	attribute string
	operator  string
	value     any
}

// recordingQuery captures WhereDate calls in order.
type recordingQuery struct {
	calls []whereCall
}

func (q *recordingQuery) WhereDate(attribute, operator string, value any) field.Query {
	q.calls = append(q.calls, whereCall{attribute: attribute, operator: operator, value: value})
	return q
}

func keysOf(m *field.JSON) []string {
	var keys []string
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}
