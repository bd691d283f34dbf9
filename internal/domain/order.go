package domain

import (
	"time"
)

type Order struct {
	ID              int64
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	Items           []OrderItem
	Total           Money
	Status          OrderStatus
	Notes           string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem price and name are resolved from the catalog when the order is created.
type OrderItem struct {
	ProductID   int64
	ProductName string
	Quantity    int
	Price       Money
}

// Clone returns a copy that shares no slices with o.
func (o Order) Clone() Order {
	o.Items = append([]OrderItem(nil), o.Items...)
	return o
}
