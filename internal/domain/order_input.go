package domain

import (
	"errors"
	"fmt"
	"net/mail"
)

type OrderItemInput struct {
	ProductID int64
	Quantity  int
}

// CreateOrderInput carries no price or status, both are decided when the order is created.
type CreateOrderInput struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	Items           []OrderItemInput
	Notes           string
}

func (in CreateOrderInput) Validate() error {
	if in.CustomerName == "" {
		return errors.New("customerName is empty")
	}

	if in.CustomerEmail == "" {
		return errors.New("customerEmail is empty")
	}

	if _, err := mail.ParseAddress(in.CustomerEmail); err != nil {
		return fmt.Errorf("customerEmail[%s]: %w", in.CustomerEmail, err)
	}

	if in.ShippingAddress == "" {
		return errors.New("shippingAddress is empty")
	}

	if len(in.Items) == 0 {
		return ErrNoOrderItems
	}

	for i, item := range in.Items {
		if item.Quantity < 1 {
			return fmt.Errorf("items[%d]: quantity[%d] must be at least 1", i, item.Quantity)
		}
	}

	return nil
}

type UpdateOrderStatusInput struct {
	Status OrderStatus
	// Comments is informational only.
	Comments string
}

func (in UpdateOrderStatusInput) Validate() error {
	if in.Status == "" {
		return errors.New("status is empty")
	}

	if _, err := ToOrderStatus(string(in.Status)); err != nil {
		return err
	}

	return nil
}
