package domain

import (
	"github.com/samber/lo"
	"golang.org/x/text/cases"
)

// OrderFilter has AND semantics across fields, an empty filter matches every order.
type OrderFilter struct {
	Status *OrderStatus
	// CustomerEmail is a case-insensitive substring of the customer email.
	CustomerEmail string
}

func (f OrderFilter) Validate() error {
	if f.Status != nil {
		if _, err := ToOrderStatus(string(*f.Status)); err != nil {
			return err
		}
	}

	return nil
}

func (f OrderFilter) Match(o Order) bool {
	if f.Status != nil && o.Status != *f.Status {
		return false
	}

	if f.CustomerEmail != "" && !ContainsFold(o.CustomerEmail, f.CustomerEmail) {
		return false
	}

	return true
}

func (f OrderFilter) Apply(orders []Order) []Order {
	return lo.Filter(orders, func(o Order, _ int) bool {
		return f.Match(o)
	})
}

// EqualFold compares strings under Unicode case folding.
func EqualFold(a, b string) bool {
	folder := cases.Fold()
	return folder.String(a) == folder.String(b)
}
