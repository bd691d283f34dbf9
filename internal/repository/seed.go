package repository

import (
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// SeedProducts returns the demo catalog the service starts with.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Name:        "Laptop Gaming Pro",
			Description: "Laptop gaming de alta gama con RTX 4080",
			Price:       decimal.RequireFromString("1299.99"),
			Stock:       50,
			Category:    "Electrónicos",
			ImageURL:    "https://example.com/laptop.jpg",
			IsActive:    true,
			CreatedAt:   seedDate(1),
			UpdatedAt:   seedDate(1),
		},
		{
			ID:          2,
			Name:        "Mouse Inalámbrico",
			Description: "Mouse gaming inalámbrico con 25K DPI",
			Price:       decimal.RequireFromString("89.99"),
			Stock:       100,
			Category:    "Accesorios",
			ImageURL:    "https://example.com/mouse.jpg",
			IsActive:    true,
			CreatedAt:   seedDate(2),
			UpdatedAt:   seedDate(2),
		},
		{
			ID:          3,
			Name:        "Teclado Mecánico",
			Description: "Teclado mecánico RGB con switches Cherry MX",
			Price:       decimal.RequireFromString("149.99"),
			Stock:       75,
			Category:    "Accesorios",
			ImageURL:    "https://example.com/keyboard.jpg",
			IsActive:    true,
			CreatedAt:   seedDate(3),
			UpdatedAt:   seedDate(3),
		},
	}
}

// SeedOrders returns the demo orders, priced against SeedProducts.
func SeedOrders(unit currency.Unit) []domain.Order {
	money := func(amount string) domain.Money {
		return domain.Money{Amount: decimal.RequireFromString(amount), Currency: unit}
	}

	return []domain.Order{
		{
			ID:              1,
			CustomerName:    "Juan Pérez",
			CustomerEmail:   "juan@example.com",
			CustomerPhone:   "+54 2284 123456",
			ShippingAddress: "Av. San Martín 123, Olavarría",
			Items: []domain.OrderItem{
				{ProductID: 1, ProductName: "Laptop Gaming Pro", Quantity: 1, Price: money("1299.99")},
				{ProductID: 2, ProductName: "Mouse Inalámbrico", Quantity: 2, Price: money("89.99")},
			},
			Total:     money("1479.97"),
			Status:    domain.OrderStatusConfirmed,
			Notes:     "Entregar por la mañana",
			CreatedAt: seedDate(1),
			UpdatedAt: seedDate(1),
		},
		{
			ID:              2,
			CustomerName:    "María García",
			CustomerEmail:   "maria@example.com",
			CustomerPhone:   "+54 2284 654321",
			ShippingAddress: "Belgrano 456, Olavarría",
			Items: []domain.OrderItem{
				{ProductID: 3, ProductName: "Teclado Mecánico", Quantity: 1, Price: money("149.99")},
			},
			Total:     money("149.99"),
			Status:    domain.OrderStatusPending,
			CreatedAt: seedDate(2),
			UpdatedAt: seedDate(2),
		},
	}
}

func seedDate(day int) time.Time {
	return time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)
}
