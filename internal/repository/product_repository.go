package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/samber/lo"
)

type productRepository struct {
	mu       sync.RWMutex
	products []domain.Product
	now      func() time.Time
}

// NewProduct returns an in-memory product repository holding a copy of initial.
func NewProduct(initial ...domain.Product) port.ProductRepository {
	return newProductRepository(time.Now, initial)
}

func newProductRepository(now func() time.Time, initial []domain.Product) *productRepository {
	return &productRepository{
		products: slices.Clone(initial),
		now:      now,
	}
}

func (r *productRepository) GetProduct(ctx context.Context, productID int64) (domain.Product, error) {
	product, ok := r.LookupProduct(ctx, productID)
	if !ok || !product.IsActive {
		return domain.Product{}, fmt.Errorf("productID[%d]: %w", productID, domain.ErrProductNotFound)
	}

	return product, nil
}

func (r *productRepository) LookupProduct(_ context.Context, productID int64) (domain.Product, bool) {
	return withRead(&r.mu, func() lo.Tuple2[domain.Product, bool] {
		idx := r.indexOf(productID)
		if idx < 0 {
			return lo.T2(domain.Product{}, false)
		}
		return lo.T2(r.products[idx], true)
	}).Unpack()
}

func (r *productRepository) ListActive(_ context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	return withRead(&r.mu, func() []domain.Product {
		active := lo.Filter(r.products, func(p domain.Product, _ int) bool {
			return p.IsActive
		})
		return filter.Apply(active)
	}), nil
}

func (r *productRepository) CreateProduct(_ context.Context, input domain.CreateProductInput) (domain.Product, error) {
	if err := input.Validate(); err != nil {
		return domain.Product{}, fmt.Errorf("input.Validate: %w", err)
	}

	return withWrite(&r.mu, func() (domain.Product, error) {
		now := r.now().UTC()

		product := domain.Product{
			ID:          nextID(r.products, func(p domain.Product) int64 { return p.ID }),
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Stock:       input.Stock,
			Category:    input.Category,
			ImageURL:    input.ImageURL,
			IsActive:    lo.FromPtrOr(input.IsActive, true),
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		r.products = append(r.products, product)

		return product, nil
	})
}

func (r *productRepository) UpdateProduct(_ context.Context, productID int64, input domain.UpdateProductInput) (domain.Product, error) {
	if err := input.Validate(); err != nil {
		return domain.Product{}, fmt.Errorf("input.Validate: %w", err)
	}

	return withWrite(&r.mu, func() (domain.Product, error) {
		idx := r.indexOf(productID)
		if idx < 0 {
			return domain.Product{}, fmt.Errorf("productID[%d]: %w", productID, domain.ErrProductNotFound)
		}

		updated := input.ApplyTo(r.products[idx])
		updated.UpdatedAt = r.now().UTC()
		r.products[idx] = updated

		return updated, nil
	})
}

func (r *productRepository) SoftDeleteProduct(_ context.Context, productID int64) error {
	_, err := withWrite(&r.mu, func() (struct{}, error) {
		idx := r.indexOf(productID)
		if idx < 0 {
			return struct{}{}, fmt.Errorf("productID[%d]: %w", productID, domain.ErrProductNotFound)
		}

		r.products[idx].IsActive = false
		r.products[idx].UpdatedAt = r.now().UTC()

		return struct{}{}, nil
	})

	return err
}

// indexOf must be called with r.mu held.
func (r *productRepository) indexOf(productID int64) int {
	return slices.IndexFunc(r.products, func(p domain.Product) bool {
		return p.ID == productID
	})
}
