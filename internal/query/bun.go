package query

import (
	"github.com/blagoySimandov/novafields/internal/field"
	"github.com/uptrace/bun"
)

type BunQuery struct {
	q *bun.SelectQuery
}

var _ field.Query = (*BunQuery)(nil)

func Bun(q *bun.SelectQuery) *BunQuery {
	return &BunQuery{q: q}
}

func (b *BunQuery) WhereDate(attribute, operator string, value any) field.Query {
	return Bun(b.q.Where(condition(operator), bun.Ident(attribute), value))
}

func (b *BunQuery) Unwrap() *bun.SelectQuery {
	return b.q
}
