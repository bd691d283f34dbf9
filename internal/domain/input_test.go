package domain_test

import (
	"testing"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestCreateOrderInput_Validate(t *testing.T) {
	valid := func() domain.CreateOrderInput {
		return domain.CreateOrderInput{
			CustomerName:    "Juan Pérez",
			CustomerEmail:   "juan@example.com",
			ShippingAddress: "Av. San Martín 123",
			Items:           []domain.OrderItemInput{{ProductID: 1, Quantity: 1}},
		}
	}

	tests := []struct {
		name      string
		mutate    func(*domain.CreateOrderInput)
		wantError string
	}{
		{name: "valid: ok", mutate: func(*domain.CreateOrderInput) {}},
		{name: "no name", mutate: func(in *domain.CreateOrderInput) { in.CustomerName = "" }, wantError: "customerName is empty"},
		{name: "no email", mutate: func(in *domain.CreateOrderInput) { in.CustomerEmail = "" }, wantError: "customerEmail is empty"},
		{name: "no address", mutate: func(in *domain.CreateOrderInput) { in.ShippingAddress = "" }, wantError: "shippingAddress is empty"},
		{name: "no items", mutate: func(in *domain.CreateOrderInput) { in.Items = nil }, wantError: "no items in order"},
		{
			name:      "zero quantity",
			mutate:    func(in *domain.CreateOrderInput) { in.Items[0].Quantity = 0 },
			wantError: "items[0]: quantity[0] must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(&in)

			err := in.Validate()
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUpdateProductInput_ApplyTo(t *testing.T) {
	p := domain.Product{
		ID:       1,
		Name:     "Laptop",
		Price:    decimal.RequireFromString("10"),
		Category: "Electrónicos",
		ImageURL: "https://example.com/a.jpg",
		IsActive: true,
	}

	got := domain.UpdateProductInput{
		Price:    lo.ToPtr(decimal.RequireFromString("12.5")),
		ImageURL: lo.ToPtr(""),
	}.ApplyTo(p)

	assert.Equal(t, "Laptop", got.Name)
	assert.Equal(t, "Electrónicos", got.Category)
	assert.Equal(t, "", got.ImageURL)
	assert.True(t, decimal.RequireFromString("12.5").Equal(got.Price))
	assert.True(t, got.IsActive)
}

func TestMoney(t *testing.T) {
	price := domain.Money{Amount: decimal.RequireFromString("89.99"), Currency: currency.USD}

	total := domain.ZeroMoney(currency.USD).Add(price.Mul(2))
	assert.True(t, decimal.RequireFromString("179.98").Equal(total.Amount))

	assert.Panics(t, func() {
		price.Add(domain.ZeroMoney(currency.EUR))
	})
}

func TestFold(t *testing.T) {
	assert.True(t, domain.EqualFold("JUAN@EXAMPLE.COM", "juan@example.com"))
	assert.False(t, domain.EqualFold("juan@example.com", "juan@example.co"))
	assert.True(t, domain.ContainsFold("Electrónicos", "ELECTRÓ"))
	assert.True(t, domain.ContainsFold("anything", ""))
}
