package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/samber/lo"
)

type orderRepository struct {
	mu     sync.RWMutex
	orders []domain.Order
	pricer port.OrderPricer
	now    func() time.Time
}

// NewOrder returns an in-memory order repository holding a copy of initial.
func NewOrder(pricer port.OrderPricer, initial ...domain.Order) (port.OrderRepository, error) {
	return newOrderRepository(pricer, time.Now, initial)
}

func newOrderRepository(pricer port.OrderPricer, now func() time.Time, initial []domain.Order) (*orderRepository, error) {
	if pricer == nil {
		return nil, errors.New("pricer is nil")
	}

	return &orderRepository{
		orders: cloneOrders(initial),
		pricer: pricer,
		now:    now,
	}, nil
}

func (r *orderRepository) GetOrder(_ context.Context, orderID int64) (domain.Order, error) {
	order, ok := withRead(&r.mu, func() lo.Tuple2[domain.Order, bool] {
		idx := r.indexOf(orderID)
		if idx < 0 {
			return lo.T2(domain.Order{}, false)
		}
		return lo.T2(r.orders[idx].Clone(), true)
	}).Unpack()

	if !ok {
		return domain.Order{}, fmt.Errorf("orderID[%d]: %w", orderID, domain.ErrOrderNotFound)
	}

	return order, nil
}

func (r *orderRepository) GetOrdersByCustomerEmail(_ context.Context, email string) ([]domain.Order, error) {
	return withRead(&r.mu, func() []domain.Order {
		matched := lo.Filter(r.orders, func(o domain.Order, _ int) bool {
			return domain.EqualFold(o.CustomerEmail, email)
		})
		return cloneOrders(matched)
	}), nil
}

func (r *orderRepository) SearchOrders(_ context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	if err := filter.Validate(); err != nil {
		return nil, fmt.Errorf("filter.Validate: %w", err)
	}

	return withRead(&r.mu, func() []domain.Order {
		return cloneOrders(filter.Apply(r.orders))
	}), nil
}

func (r *orderRepository) CreateOrder(ctx context.Context, input domain.CreateOrderInput) (domain.Order, error) {
	if len(input.Items) == 0 {
		return domain.Order{}, domain.ErrNoOrderItems
	}

	// priced outside of r.mu, the catalog has its own lock
	items, total := r.pricer.PriceItems(ctx, input.Items)

	return withWrite(&r.mu, func() (domain.Order, error) {
		now := r.now().UTC()

		order := domain.Order{
			ID:              nextID(r.orders, func(o domain.Order) int64 { return o.ID }),
			CustomerName:    input.CustomerName,
			CustomerEmail:   input.CustomerEmail,
			CustomerPhone:   input.CustomerPhone,
			ShippingAddress: input.ShippingAddress,
			Items:           items,
			Total:           total,
			Status:          domain.OrderStatusPending,
			Notes:           input.Notes,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		r.orders = append(r.orders, order)

		return order.Clone(), nil
	})
}

// UpdateOrderStatus accepts any status change, lifecycle ordering is not enforced here.
func (r *orderRepository) UpdateOrderStatus(_ context.Context, orderID int64, status domain.OrderStatus) (domain.Order, error) {
	if status == "" {
		return domain.Order{}, errors.New("status is empty")
	}

	if _, err := domain.ToOrderStatus(string(status)); err != nil {
		return domain.Order{}, fmt.Errorf("domain.ToOrderStatus: %w", err)
	}

	return withWrite(&r.mu, func() (domain.Order, error) {
		idx := r.indexOf(orderID)
		if idx < 0 {
			return domain.Order{}, fmt.Errorf("orderID[%d]: %w", orderID, domain.ErrOrderNotFound)
		}

		r.orders[idx].Status = status
		r.orders[idx].UpdatedAt = r.now().UTC()

		return r.orders[idx].Clone(), nil
	})
}

// indexOf must be called with r.mu held.
func (r *orderRepository) indexOf(orderID int64) int {
	return slices.IndexFunc(r.orders, func(o domain.Order) bool {
		return o.ID == orderID
	})
}

func cloneOrders(orders []domain.Order) []domain.Order {
	return lo.Map(orders, func(o domain.Order, _ int) domain.Order {
		return o.Clone()
	})
}
