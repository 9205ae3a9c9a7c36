package query

import (
	"github.com/blagoySimandov/novafields/internal/field"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormQuery struct {
	db *gorm.DB
}

var _ field.Query = (*GormQuery)(nil)

func Gorm(db *gorm.DB) *GormQuery {
	return &GormQuery{db: db}
}

func (g *GormQuery) WhereDate(attribute, operator string, value any) field.Query {
	return Gorm(g.db.Where(condition(operator), clause.Column{Name: attribute}, value))
}

func (g *GormQuery) Unwrap() *gorm.DB {
	return g.db
}
