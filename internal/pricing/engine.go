// Package pricing resolves order item prices against the product catalog.
package pricing

import (
	"context"
	"errors"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"golang.org/x/text/currency"
)

// UnknownProductName names items whose product is not in the catalog.
const UnknownProductName = "Product"

type Engine struct {
	catalog  port.Catalog
	currency currency.Unit
}

func NewEngine(catalog port.Catalog, unit currency.Unit) (*Engine, error) {
	if catalog == nil {
		return nil, errors.New("catalog is nil")
	}

	return &Engine{
		catalog:  catalog,
		currency: unit,
	}, nil
}

// PriceItems resolves price and name of every item and sums price x quantity.
// Items referencing an unknown product are priced at zero under UnknownProductName.
func (e *Engine) PriceItems(ctx context.Context, items []domain.OrderItemInput) ([]domain.OrderItem, domain.Money) {
	total := domain.ZeroMoney(e.currency)
	priced := make([]domain.OrderItem, 0, len(items))

	for _, item := range items {
		orderItem := e.resolve(ctx, item)
		total = total.Add(orderItem.Price.Mul(orderItem.Quantity))
		priced = append(priced, orderItem)
	}

	return priced, total
}

func (e *Engine) resolve(ctx context.Context, item domain.OrderItemInput) domain.OrderItem {
	product, ok := e.catalog.LookupProduct(ctx, item.ProductID)
	if !ok {
		return domain.OrderItem{
			ProductID:   item.ProductID,
			ProductName: UnknownProductName,
			Quantity:    item.Quantity,
			Price:       domain.ZeroMoney(e.currency),
		}
	}

	return domain.OrderItem{
		ProductID:   item.ProductID,
		ProductName: product.Name,
		Quantity:    item.Quantity,
		Price:       domain.Money{Amount: product.Price, Currency: e.currency},
	}
}
