package domain

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Category    string
	ImageURL    string
	// IsActive defaults to true when nil.
	IsActive *bool
}

func (in CreateProductInput) Validate() error {
	if in.Name == "" {
		return errors.New("name is empty")
	}

	if in.Description == "" {
		return errors.New("description is empty")
	}

	if in.Price.IsNegative() {
		return fmt.Errorf("price[%s] is negative", in.Price)
	}

	if in.Stock < 0 {
		return fmt.Errorf("stock[%d] is negative", in.Stock)
	}

	if err := validateImageURL(in.ImageURL); err != nil {
		return err
	}

	return nil
}

// UpdateProductInput overlays only non-nil fields, a pointer to an empty string clears the field.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	Category    *string
	ImageURL    *string
	IsActive    *bool
}

func (in UpdateProductInput) Validate() error {
	if in.Name != nil && *in.Name == "" {
		return errors.New("name is empty")
	}

	if in.Price != nil && in.Price.IsNegative() {
		return fmt.Errorf("price[%s] is negative", *in.Price)
	}

	if in.Stock != nil && *in.Stock < 0 {
		return fmt.Errorf("stock[%d] is negative", *in.Stock)
	}

	if err := validateImageURL(lo.FromPtr(in.ImageURL)); err != nil {
		return err
	}

	return nil
}

// ApplyTo returns p with the provided fields overlaid.
func (in UpdateProductInput) ApplyTo(p Product) Product {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}

	return p
}

func validateImageURL(raw string) error {
	if raw == "" {
		return nil
	}

	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return fmt.Errorf("imageUrl[%s]: %w", raw, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("imageUrl[%s] is not absolute", raw)
	}

	return nil
}
