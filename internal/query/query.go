// Package query adapts ORM query builders to the field.Query capability.
package query

import "fmt"

const dateCondition = "CAST(? AS DATE) %s ?"

var operators = map[string]struct{}{
	">=": {},
	"<=": {},
	"=":  {},
	"<":  {},
	">":  {},
}

// condition returns the SQL template for operator. Operators are fixed by the
// calling code, so an unknown one is a programming error.
func condition(operator string) string {
	if _, ok := operators[operator]; !ok {
		panic(fmt.Sprintf("query: unsupported date operator %q", operator))
	}
	return fmt.Sprintf(dateCondition, operator)
}
