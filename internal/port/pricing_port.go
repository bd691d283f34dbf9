package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

type OrderPricer interface {
	PriceItems(ctx context.Context, items []domain.OrderItemInput) ([]domain.OrderItem, domain.Money)
}
