package domain

import (
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// ProductFilter has AND semantics across fields, nil or empty fields are ignored.
// Price bounds are inclusive, a MinPrice above MaxPrice matches nothing.
type ProductFilter struct {
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

func (f ProductFilter) Match(p Product) bool {
	if f.Category != "" && !ContainsFold(p.Category, f.Category) {
		return false
	}

	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}

	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}

	return true
}

func (f ProductFilter) Apply(products []Product) []Product {
	return lo.Filter(products, func(p Product, _ int) bool {
		return f.Match(p)
	})
}

// ContainsFold reports whether substr is within s under Unicode case folding.
func ContainsFold(s, substr string) bool {
	folder := cases.Fold()
	return strings.Contains(folder.String(s), folder.String(substr))
}
