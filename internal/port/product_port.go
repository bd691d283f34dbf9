package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

type ProductRepository interface {
	Catalog

	// GetProduct returns domain.ErrProductNotFound for missing and soft-deleted products alike.
	GetProduct(ctx context.Context, productID int64) (domain.Product, error)

	ListActive(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)

	CreateProduct(ctx context.Context, input domain.CreateProductInput) (domain.Product, error)

	UpdateProduct(ctx context.Context, productID int64, input domain.UpdateProductInput) (domain.Product, error)

	SoftDeleteProduct(ctx context.Context, productID int64) error
}

// Catalog is the read-only product view used to price order items.
type Catalog interface {
	// LookupProduct resolves any product ever created, active or not.
	LookupProduct(ctx context.Context, productID int64) (domain.Product, bool)
}
