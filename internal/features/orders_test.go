package features

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/cucumber/godog"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/pricing"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type orderTestContext struct {
	products port.ProductRepository
	orders   port.OrderRepository
	order    domain.Order
	err      error
}

func (c *orderTestContext) reset() error {
	c.products = repository.NewProduct()

	engine, err := pricing.NewEngine(c.products, currency.USD)
	if err != nil {
		return err
	}

	c.orders, err = repository.NewOrder(engine)
	if err != nil {
		return err
	}

	c.order = domain.Order{}
	c.err = nil

	return nil
}

func (c *orderTestContext) aCatalogWithProducts(ctx context.Context, table *godog.Table) error {
	for _, row := range table.Rows[1:] {
		price, err := decimal.NewFromString(row.Cells[2].Value)
		if err != nil {
			return err
		}

		created, err := c.products.CreateProduct(ctx, domain.CreateProductInput{
			Name:        row.Cells[1].Value,
			Description: row.Cells[1].Value,
			Price:       price,
		})
		if err != nil {
			return err
		}

		if want := row.Cells[0].Value; strconv.FormatInt(created.ID, 10) != want {
			return fmt.Errorf("expected product id %s, got %d", want, created.ID)
		}
	}

	return nil
}

func (c *orderTestContext) aCustomerOrders(ctx context.Context, table *godog.Table) error {
	var items []domain.OrderItemInput

	for _, row := range table.Rows[1:] {
		productID, err := strconv.ParseInt(row.Cells[0].Value, 10, 64)
		if err != nil {
			return err
		}

		quantity, err := strconv.Atoi(row.Cells[1].Value)
		if err != nil {
			return err
		}

		items = append(items, domain.OrderItemInput{ProductID: productID, Quantity: quantity})
	}

	return c.placeOrder(ctx, items)
}

func (c *orderTestContext) aCustomerOrdersNothing(ctx context.Context) error {
	return c.placeOrder(ctx, nil)
}

func (c *orderTestContext) placeOrder(ctx context.Context, items []domain.OrderItemInput) error {
	c.order, c.err = c.orders.CreateOrder(ctx, domain.CreateOrderInput{
		CustomerName:    "Juan Pérez",
		CustomerEmail:   "juan@example.com",
		ShippingAddress: "Av. San Martín 123, Olavarría",
		Items:           items,
	})
	return nil
}

func (c *orderTestContext) productIsRepricedTo(ctx context.Context, productID int64, price string) error {
	amount, err := decimal.NewFromString(price)
	if err != nil {
		return err
	}

	_, err = c.products.UpdateProduct(ctx, productID, domain.UpdateProductInput{Price: lo.ToPtr(amount)})
	return err
}

func (c *orderTestContext) theOrderStatusIsChangedTo(ctx context.Context, status string) error {
	if c.err != nil {
		return fmt.Errorf("no order was created: %w", c.err)
	}

	updated, err := c.orders.UpdateOrderStatus(ctx, c.order.ID, domain.OrderStatus(status))
	if err != nil {
		return err
	}

	c.order = updated
	return nil
}

func (c *orderTestContext) theOrderTotalIs(total string) error {
	if c.err != nil {
		return fmt.Errorf("expected order but got error: %w", c.err)
	}

	want, err := decimal.NewFromString(total)
	if err != nil {
		return err
	}

	if !c.order.Total.Amount.Equal(want) {
		return fmt.Errorf("expected total %s, got %s", want, c.order.Total.Amount)
	}
	return nil
}

func (c *orderTestContext) theOrderStatusIs(status string) error {
	if c.order.Status != domain.OrderStatus(status) {
		return fmt.Errorf("expected status %s, got %s", status, c.order.Status)
	}
	return nil
}

func (c *orderTestContext) itemIsNamedAndPriced(position int, name, price string) error {
	if position < 1 || position > len(c.order.Items) {
		return fmt.Errorf("order has %d items, no item %d", len(c.order.Items), position)
	}
	item := c.order.Items[position-1]

	if item.ProductName != name {
		return fmt.Errorf("expected name %q, got %q", name, item.ProductName)
	}

	want, err := decimal.NewFromString(price)
	if err != nil {
		return err
	}

	if !item.Price.Amount.Equal(want) {
		return fmt.Errorf("expected price %s, got %s", want, item.Price.Amount)
	}
	return nil
}

func (c *orderTestContext) theOrderIsRejectedWith(message string) error {
	if c.err == nil {
		return errors.New("expected order to be rejected but it was created")
	}
	if c.err.Error() != message {
		return fmt.Errorf("expected error %q, got %q", message, c.err.Error())
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &orderTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, tc.reset()
	})

	// Given steps
	ctx.Step(`^a catalog with products:$`, tc.aCatalogWithProducts)

	// When steps
	ctx.Step(`^a customer orders:$`, tc.aCustomerOrders)
	ctx.Step(`^a customer orders nothing$`, tc.aCustomerOrdersNothing)
	ctx.Step(`^product (\d+) is repriced to ([\d.]+)$`, tc.productIsRepricedTo)
	ctx.Step(`^the order status is changed to "([^"]*)"$`, tc.theOrderStatusIsChangedTo)

	// Then steps
	ctx.Step(`^the order total is ([\d.]+)$`, tc.theOrderTotalIs)
	ctx.Step(`^the order status is "([^"]*)"$`, tc.theOrderStatusIs)
	ctx.Step(`^item (\d+) is named "([^"]*)" and priced ([\d.]+)$`, tc.itemIsNamedAndPriced)
	ctx.Step(`^the order is rejected with "([^"]*)"$`, tc.theOrderIsRejectedWith)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"orders.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
